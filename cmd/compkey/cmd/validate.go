package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/compkey/composite"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <hex>",
		Short: "Check that an encoded key is well formed",
		Long: `Check the header and every component of an encoded key. Exits non-zero
and prints the failing offset when the key is malformed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseHex(args[0])
			if err != nil {
				return err
			}
			if err := composite.Verify(data); err != nil {
				return err
			}

			n, _ := composite.Count(data)
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d components\n", n)

			return nil
		},
	}
}

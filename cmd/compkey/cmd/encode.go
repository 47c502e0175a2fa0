package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/compkey/composite"
)

func newEncodeCmd() *cobra.Command {
	var strictASCII bool

	encodeCmd := &cobra.Command{
		Use:   "encode <value>...",
		Short: "Encode values into a composite key",
		Long: `Encode values into a composite key and print it as hex.

Example:
  compkey encode s:smith s:bob l:1000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args)
			if err != nil {
				return err
			}

			b, err := composite.NewBuilder(composite.WithStrictASCII(strictASCII))
			if err != nil {
				return err
			}
			key, err := b.AppendAll(values...).Freeze()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%x\n", key.Bytes())

			return nil
		},
	}
	encodeCmd.Flags().BoolVar(&strictASCII, "strict-ascii", false, "reject non-ASCII text in a: values instead of replacing it with '?'")

	return encodeCmd
}

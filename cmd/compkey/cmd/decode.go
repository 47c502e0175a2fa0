package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/compkey/composite"
)

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Print the components of an encoded key",
		Long: `Print one line per component: the component type, a tab, and its value.

Example:
  compkey decode 434d5001030000000000000100ff00`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseHex(args[0])
			if err != nil {
				return err
			}

			for v, err := range composite.All(data) {
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", v.Tag(), v)
			}

			return nil
		},
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/compkey/composite"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <hexA> <hexB>",
		Short: "Compare two encoded keys",
		Long: `Print -1, 0 or 1 as the first key sorts before, equal to or after the second.

Example:
  compkey compare $(compkey encode s:smith) $(compkey encode s:hello)`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseHex(args[0])
			if err != nil {
				return err
			}
			b, err := parseHex(args[1])
			if err != nil {
				return err
			}

			c, err := composite.Compare(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c)

			return nil
		},
	}
}

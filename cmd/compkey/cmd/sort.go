package cmd

import (
	"fmt"
	"iter"

	"github.com/spf13/cobra"

	"github.com/arloliu/compkey/composite"
	"github.com/arloliu/compkey/keyset"
)

func newSortCmd() *cobra.Command {
	var (
		prefix []string
		render bool
	)

	sortCmd := &cobra.Command{
		Use:   "sort [hex]...",
		Short: "Sort encoded keys",
		Long: `Sort encoded keys in composite order and print them one per line, dropping
duplicates. Keys are read from the arguments, or from stdin one per line.

Example:
  printf '%s\n' $(compkey encode s:b) $(compkey encode s:a) | compkey sort --render
  compkey sort --prefix s:smith <keys.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := readHexKeys(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			set, err := keyset.New()
			if err != nil {
				return err
			}
			for _, k := range keys {
				if _, err := set.InsertBytes(k); err != nil {
					return err
				}
			}

			var seq iter.Seq[composite.Composite]
			if cmd.Flags().Changed("prefix") {
				values, err := parseValues(prefix)
				if err != nil {
					return err
				}
				if seq, err = set.ScanPrefix(values...); err != nil {
					return err
				}
			} else {
				seq = set.Ascend()
			}

			for key := range seq {
				if render {
					fmt.Fprintln(cmd.OutOrStdout(), key.String())
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%x\n", key.Bytes())
				}
			}

			return nil
		},
	}
	sortCmd.Flags().StringArrayVar(&prefix, "prefix", nil, "only print keys starting with these type:value components")
	sortCmd.Flags().BoolVar(&render, "render", false, "print components instead of hex")

	return sortCmd
}

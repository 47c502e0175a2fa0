package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the compkey command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "compkey",
		Short: "Encode, decode and compare composite keys",
		Long: `compkey works with composite keys: typed multi-part keys whose byte
encoding sorts in component order.

Values are written as type:value:
  b:true        boolean
  l:1000        64-bit integer
  d:1.5         double
  s:text        UTF-8 text
  a:text        ASCII text
  x:deadbeef    raw bytes, hex encoded
  u:<uuid>      UUID, time ordered when version 1
  min, max      MatchMinimum and MatchMaximum placeholders

Encoded keys are read and printed as hex.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newCompareCmd(),
		newValidateCmd(),
		newSortCmd(),
		newSnapshotCmd(),
	)

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

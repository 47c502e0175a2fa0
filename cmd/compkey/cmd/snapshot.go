package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/compkey/format"
	"github.com/arloliu/compkey/keyset"
)

func newSnapshotCmd() *cobra.Command {
	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Write and read key set snapshots",
	}
	snapshotCmd.AddCommand(newSnapshotWriteCmd(), newSnapshotReadCmd())

	return snapshotCmd
}

func newSnapshotWriteCmd() *cobra.Command {
	var compression string

	writeCmd := &cobra.Command{
		Use:   "write <file> [hex]...",
		Short: "Write encoded keys to a snapshot file",
		Long: `Collect encoded keys from the arguments, or from stdin one per line, into a
key set and write it as a compressed snapshot.

Example:
  compkey snapshot write keys.snap --compression s2 <keys.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCompression(compression)
			if err != nil {
				return err
			}

			keys, err := readHexKeys(args[1:], cmd.InOrStdin())
			if err != nil {
				return err
			}

			set, err := keyset.New(keyset.WithCompression(c))
			if err != nil {
				return err
			}
			for _, k := range keys {
				if _, err := set.InsertBytes(k); err != nil {
					return err
				}
			}

			data, err := set.MarshalBinary()
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil { //nolint:gosec
				return fmt.Errorf("failed to write snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d keys, %d bytes\n", set.Len(), len(data))

			return nil
		},
	}
	writeCmd.Flags().StringVar(&compression, "compression", "zstd", "payload compression: none, zstd, s2 or lz4")

	return writeCmd
}

func newSnapshotReadCmd() *cobra.Command {
	var render bool

	readCmd := &cobra.Command{
		Use:   "read <file>",
		Short: "Print the keys stored in a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read snapshot: %w", err)
			}

			set, err := keyset.Unmarshal(data)
			if err != nil {
				return err
			}
			for key := range set.Ascend() {
				if render {
					fmt.Fprintln(cmd.OutOrStdout(), key.String())
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%x\n", key.Bytes())
				}
			}

			return nil
		},
	}
	readCmd.Flags().BoolVar(&render, "render", false, "print components instead of hex")

	return readCmd
}

func parseCompression(name string) (format.CompressionType, error) {
	switch strings.ToLower(name) {
	case "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q", name)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arbores/lineage/cmd/lineage/commands"
	"github.com/arbores/lineage/config"
	"github.com/arbores/lineage/logger"
)

var rootCmd = &cobra.Command{
	Use:   "lineage",
	Short: "lineage - genealogical record-tree extraction",
	Long: `lineage - flatten a parsed lineage-linked record tree into a
relationship-resolved model and a compact event wire form.

Available commands:
  extract - Run an extraction pass over a record-tree JSON file
  encode  - Compact-encode normalized events from stdin
  decode  - Re-expand compact events from stdin
  version - Show build information

Examples:
  lineage extract --in tree.json --out model.json
  lineage extract --in tree.json --workers 4
  lineage encode < events.json
  lineage decode < compact.json`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := logger.Initialize(cfg.Log.JSON); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commands.ExtractCmd)
	rootCmd.AddCommand(commands.EncodeCmd)
	rootCmd.AddCommand(commands.DecodeCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

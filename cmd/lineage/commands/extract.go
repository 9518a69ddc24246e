package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/arbores/lineage/config"
	"github.com/arbores/lineage/errors"
	"github.com/arbores/lineage/extract"
	"github.com/arbores/lineage/logger"
	"github.com/arbores/lineage/record"
)

var (
	extractIn      string
	extractOut     string
	extractWorkers int
)

// ExtractCmd runs one extraction pass over a pre-parsed record tree.
var ExtractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run an extraction pass over a record-tree JSON file",
	Long: `Extract reads a parsed lineage-linked record tree (JSON form of the
record.Node model) and writes the flattened, relationship-resolved
aggregate model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if extractWorkers > 0 {
			cfg.Extract.Workers = extractWorkers
		}

		doc, err := readTree(extractIn)
		if err != nil {
			return err
		}

		model, err := extract.New(cfg.Extract, logger.Logger).Extract(doc)
		if err != nil {
			return err
		}

		return writeJSON(extractOut, model)
	},
}

func init() {
	ExtractCmd.Flags().StringVar(&extractIn, "in", "", "record-tree JSON file (required)")
	ExtractCmd.Flags().StringVar(&extractOut, "out", "", "output file (default: stdout)")
	ExtractCmd.Flags().IntVar(&extractWorkers, "workers", 0, "per-record workers (default: from config)")
	_ = ExtractCmd.MarkFlagRequired("in")
}

func readTree(path string) (*record.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	var root record.Node
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, errors.Wrapf(err, "failed to parse record tree %s", path)
	}
	return record.NewDocument(&root), nil
}

func writeJSON(path string, v any) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrapf(err, "failed to create %s", path)
		}
		defer f.Close()
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/arbores/lineage/codec"
	"github.com/arbores/lineage/errors"
	"github.com/arbores/lineage/event"
)

// EncodeCmd compact-encodes a JSON array of normalized events.
var EncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Compact-encode normalized events from stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		var events []event.Event
		if err := json.NewDecoder(os.Stdin).Decode(&events); err != nil {
			return errors.Wrap(err, "failed to parse events")
		}

		compact := make([]codec.CompactEvent, 0, len(events))
		for _, e := range events {
			compact = append(compact, codec.Encode(e))
		}
		return writeJSON("", compact)
	},
}

// DecodeCmd re-expands a JSON array of compact events.
var DecodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Re-expand compact events from stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		var compact []codec.CompactEvent
		if err := json.NewDecoder(os.Stdin).Decode(&compact); err != nil {
			return errors.Wrap(err, "failed to parse compact events")
		}

		events := make([]event.Event, 0, len(compact))
		for _, c := range compact {
			events = append(events, codec.Decode(c))
		}
		return writeJSON("", events)
	},
}

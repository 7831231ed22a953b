package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// writeJSON encodes v as a single compact JSON line on the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/box"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <field>",
		Short: "Extract a single metadata field",
		Long: `The get command searches the file's box tree for the first box whose
decoded attributes contain the named field and prints its value. The search
is depth-first in document order and stops at the first match.

Example:
  mp4ctl get movie.mp4 creation_time
  mp4ctl get movie.mp4 major_brand --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args[0], args[1])
		},
	}
}

func runGet(path, field string) error {
	printVerbose("Opening file: %s\n", path)

	f, err := box.Open(path, decodeOptions()...)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	v, err := f.FindField(field)
	if err != nil {
		return fmt.Errorf("failed to find field: %w", err)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(map[string]any{"field": field, "value": v})
	}
	fmt.Println(formatValue(v))
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/box"
)

func init() {
	rootCmd.AddCommand(newBoxesCmd())
}

func newBoxesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boxes <file>",
		Short: "List the top-level boxes of an MP4 file",
		Long: `The boxes command walks the top-level boxes of a file and prints
each box's type and size.

Example:
  mp4ctl boxes movie.mp4
  mp4ctl boxes movie.mp4 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoxes(args[0])
		},
	}
}

func runBoxes(path string) error {
	printVerbose("Opening file: %s\n", path)

	f, err := box.Open(path, decodeOptions()...)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	nodes, err := f.Boxes()
	if err != nil {
		return fmt.Errorf("failed to decode boxes: %w", err)
	}

	if jsonOut {
		type entry struct {
			Type string `json:"type"`
			Size uint64 `json:"size"`
		}
		out := make([]entry, 0, len(nodes))
		for _, n := range nodes {
			out = append(out, entry{Type: n.Type, Size: n.Size})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	var total uint64
	for _, n := range nodes {
		fmt.Printf("%-4s  %12d bytes\n", n.Type, n.Size)
		total += n.Size
	}
	if !quiet {
		fmt.Printf("%d boxes, %d bytes total\n", len(nodes), total)
	}
	return nil
}

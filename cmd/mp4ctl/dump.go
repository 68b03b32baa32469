package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/box"
)

var dumpFlat bool

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpFlat, "flat", false, "Merge child attributes into each top-level box")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Human-readable dump of all decoded box attributes",
		Long: `The dump command decodes every box in the file and prints the full
attribute tree. With --flat, each top-level box is printed as a single
merged attribute mapping (children flattened into the parent).

Example:
  mp4ctl dump movie.mp4
  mp4ctl dump movie.mp4 --flat
  mp4ctl dump movie.mp4 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
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
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if dumpFlat {
			out := make([]map[string]any, 0, len(nodes))
			for _, n := range nodes {
				out = append(out, n.Flatten())
			}
			return enc.Encode(out)
		}
		return enc.Encode(nodes)
	}

	for _, n := range nodes {
		if dumpFlat {
			fmt.Printf("[%s]\n", n.Type)
			printAttrs(n.Flatten(), 1)
			continue
		}
		printNode(n, 0)
	}
	return nil
}

func printNode(n *box.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s[%s] %d bytes\n", indent, n.Type, n.Size)
	printAttrs(n.Attrs, depth+1)
	for _, c := range n.Children {
		printNode(c, depth+1)
	}
}

// printAttrs prints an attribute map in a stable order, skipping the
// prologue keys already shown on the box line.
func printAttrs(attrs map[string]any, depth int) {
	indent := strings.Repeat("  ", depth)
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k == "type" || k == "size" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("%s%s = %s\n", indent, k, formatValue(attrs[k]))
	}
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		// A lone NUL means the string field was present but empty.
		if val == "\x00" {
			return "(absent)"
		}
		return fmt.Sprintf("%q", strings.TrimRight(val, "\x00"))
	case []uint32:
		if len(val) > 8 {
			return fmt.Sprintf("[%d entries]", len(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", v)
	}
}

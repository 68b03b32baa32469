package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/box"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "mp4ctl",
	Short: "Inspect MP4 (ISO-BMFF) container metadata",
	Long: `mp4ctl decodes the box structure of MP4 files and extracts typed
metadata fields. Decoding is schema-driven: every supported box type is
described by a declarative field layout, and unknown boxes are skipped.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Printf(format, args...)
	}
}

// decodeOptions builds the decoder options shared by all commands: decode
// tracing goes to stderr when --verbose is set.
func decodeOptions() []box.Option {
	if !verbose {
		return nil
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
	return []box.Option{box.WithLogger(logger)}
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/boxkit/boxkit/box"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize the movie metadata of an MP4 file",
		Long: `The info command decodes the file and prints a summary: brand,
duration, creation time and track languages.

Example:
  mp4ctl info movie.mp4
  mp4ctl info movie.mp4 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

type fileInfo struct {
	Path         string   `json:"path"`
	SizeBytes    int64    `json:"size_bytes"`
	MajorBrand   string   `json:"major_brand,omitempty"`
	Brands       []string `json:"compatible_brands,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	CreationTime string   `json:"creation_time,omitempty"`
	Languages    []string `json:"languages,omitempty"`
}

func runInfo(path string) error {
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

	info := fileInfo{Path: path, SizeBytes: f.Size()}
	for _, n := range nodes {
		switch n.Type {
		case "ftyp":
			if v, ok := n.Attrs["major_brand"].(string); ok {
				info.MajorBrand = v
			}
			if v, ok := n.Attrs["compatible_brands"].([]string); ok {
				info.Brands = v
			}
		case "moov":
			collectMovieInfo(n, &info)
		}
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Printf("File:          %s (%d bytes)\n", info.Path, info.SizeBytes)
	if info.MajorBrand != "" {
		fmt.Printf("Major brand:   %s\n", info.MajorBrand)
	}
	if len(info.Brands) > 0 {
		fmt.Printf("Brands:        %v\n", info.Brands)
	}
	if info.Duration != "" {
		fmt.Printf("Duration:      %s\n", info.Duration)
	}
	if info.CreationTime != "" {
		fmt.Printf("Created:       %s\n", info.CreationTime)
	}
	for _, l := range info.Languages {
		fmt.Printf("Language:      %s\n", l)
	}
	return nil
}

// collectMovieInfo pulls the mvhd duration/creation time and each track's
// mdhd language out of a decoded moov subtree.
func collectMovieInfo(moov *box.Node, info *fileInfo) {
	ts, tsOK := moov.Lookup("timescale")
	dur, durOK := moov.Lookup("duration")
	if tsOK && durOK {
		timescale, ok1 := ts.(uint64)
		duration, ok2 := dur.(uint64)
		if ok1 && ok2 && timescale > 0 {
			secs := float64(duration) / float64(timescale)
			info.Duration = time.Duration(secs * float64(time.Second)).Round(time.Millisecond).String()
		}
	}
	if ct, ok := moov.Lookup("creation_time"); ok {
		if secs, ok := ct.(uint64); ok {
			info.CreationTime = box.MediaTime(secs).Format(time.RFC3339)
		}
	}
	for _, trak := range moov.Children {
		if trak.Type != "trak" {
			continue
		}
		code, ok := trak.Lookup("language")
		if !ok {
			continue
		}
		lang, ok := code.(string)
		if !ok {
			continue
		}
		if base, ok := box.NormalizeLanguage(lang); ok {
			lang = fmt.Sprintf("%s (%s)", lang, base)
		}
		info.Languages = append(info.Languages, lang)
	}
}

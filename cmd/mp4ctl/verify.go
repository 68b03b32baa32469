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
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>...",
		Short: "Cross-check container creation times against filename timestamps",
		Long: `The verify command derives a timestamp from each filename
(VID-YYYYMMDD-* or VID_YYYYMMDD_HHMMSS shapes) and compares it against the
creation_time decoded from the container. Files whose names encode only a
date are compared at day granularity.

Example:
  mp4ctl verify VID_20150903_141501.mp4
  mp4ctl verify videos/*.mp4 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
}

type verifyResult struct {
	Path         string `json:"path"`
	NameTime     string `json:"name_time,omitempty"`
	CreationTime string `json:"creation_time,omitempty"`
	Status       string `json:"status"`
}

func runVerify(paths []string) error {
	results := make([]verifyResult, 0, len(paths))
	mismatches := 0
	for _, path := range paths {
		res := verifyOne(path)
		if res.Status == "mismatch" {
			mismatches++
		}
		results = append(results, res)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			fmt.Printf("%-10s %s", res.Status, res.Path)
			if res.NameTime != "" && res.CreationTime != "" {
				fmt.Printf("  (name: %s, container: %s)", res.NameTime, res.CreationTime)
			}
			fmt.Println()
		}
	}

	if mismatches > 0 {
		return fmt.Errorf("%d of %d files mismatched", mismatches, len(paths))
	}
	return nil
}

func verifyOne(path string) verifyResult {
	res := verifyResult{Path: path}

	nt, ok := timestampFromName(path)
	if !ok {
		res.Status = "unnamed"
		return res
	}
	res.NameTime = nt.Time.Format(time.RFC3339)

	f, err := box.Open(path, decodeOptions()...)
	if err != nil {
		res.Status = "error"
		return res
	}
	defer f.Close()

	v, err := f.FindField("creation_time")
	if err != nil {
		res.Status = "error"
		return res
	}
	secs, ok := v.(uint64)
	if !ok {
		res.Status = "error"
		return res
	}
	created := box.MediaTime(secs)
	res.CreationTime = created.Format(time.RFC3339)

	if sameTimestamp(nt, created) {
		res.Status = "ok"
	} else {
		res.Status = "mismatch"
	}
	return res
}

// sameTimestamp compares at day granularity when the filename carried no
// time-of-day component.
func sameTimestamp(nt nameTimestamp, created time.Time) bool {
	if nt.HasTime {
		return nt.Time.Equal(created)
	}
	y1, m1, d1 := nt.Time.Date()
	y2, m2, d2 := created.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

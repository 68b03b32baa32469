package main

import (
	"path/filepath"
	"strings"
	"time"
)

// Timestamps derived from camera-style filenames. Two shapes are recognized:
//
//	VID-YYYYMMDD-WAXXXX.mp4   (date only, time taken as 00:00:00)
//	VID_YYYYMMDD_HHMMSS.mp4   (full date and time)
//
// These timestamps are local wall-clock values with no zone information,
// used only to cross-check the creation_time stored inside the container.

// nameTimestamp is a filename-derived timestamp. HasTime is false when the
// filename encodes only a date.
type nameTimestamp struct {
	Time    time.Time
	HasTime bool
}

// timestampFromName derives a timestamp from a filename. Returns false when
// the name matches neither recognized shape.
func timestampFromName(name string) (nameTimestamp, bool) {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	switch {
	case strings.HasPrefix(base, "VID-"):
		parts := strings.Split(base, "-")
		if len(parts) < 2 {
			return nameTimestamp{}, false
		}
		t, err := time.ParseInLocation("20060102", parts[1], time.UTC)
		if err != nil {
			return nameTimestamp{}, false
		}
		return nameTimestamp{Time: t}, true

	case strings.HasPrefix(base, "VID_"):
		parts := strings.Split(base, "_")
		if len(parts) < 3 {
			return nameTimestamp{}, false
		}
		t, err := time.ParseInLocation("20060102 150405", parts[1]+" "+parts[2], time.UTC)
		if err != nil {
			return nameTimestamp{}, false
		}
		return nameTimestamp{Time: t, HasTime: true}, true
	}
	return nameTimestamp{}, false
}

package format

import (
	"testing"
	"time"
)

func TestEpochTimeZero(t *testing.T) {
	got := EpochTime(0)
	want := time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("EpochTime(0) = %v, want %v", got, want)
	}
}

func TestEpochTimeKnownValue(t *testing.T) {
	// 2015-09-03 14:15:01 UTC is 3524134501 seconds past the 1904 epoch.
	got := EpochTime(3524134501)
	want := time.Date(2015, 9, 3, 14, 15, 1, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("EpochTime = %v, want %v", got, want)
	}
}

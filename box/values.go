package box

import (
	"time"

	"golang.org/x/text/language"

	"github.com/boxkit/boxkit/internal/format"
)

// MediaTime converts a decoded creation_time or modification_time value
// (seconds since the 1904 media epoch) to a time.Time in UTC.
func MediaTime(secs uint64) time.Time {
	return format.EpochTime(secs)
}

// NormalizeLanguage resolves a decoded 3-letter ISO-639-2/T code (as stored
// by the mdhd language field) to its canonical base language tag. Returns
// false for codes no language registry knows, such as the "und" filler some
// muxers write.
func NormalizeLanguage(code string) (language.Base, bool) {
	return format.NormalizeLanguage(code)
}

package format

import "time"

// mediaEpoch is the zero point of MP4 timestamp fields: midnight (UTC) at the
// start of January 1, 1904.
var mediaEpoch = time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)

// EpochTime converts a creation_time or modification_time field value
// (seconds since the 1904 media epoch) to a time.Time in UTC.
func EpochTime(secs uint64) time.Time {
	return mediaEpoch.Add(time.Duration(secs) * time.Second)
}

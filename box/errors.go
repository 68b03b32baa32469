package box

import "github.com/boxkit/boxkit/internal/format"

// Error types and sentinels re-exported so callers can match decode failures
// with errors.Is / errors.As without importing internal packages.
type (
	// TruncatedError reports a short read with exact byte counts.
	TruncatedError = format.TruncatedError
	// MalformedBoxError reports a structural violation in one box.
	MalformedBoxError = format.MalformedBoxError
	// UnknownFieldError reports a lookup for a name no schema declares.
	UnknownFieldError = format.UnknownFieldError
)

// Sentinel errors matched by errors.Is against any decode failure.
var (
	ErrTruncated          = format.ErrTruncated
	ErrMalformed          = format.ErrMalformed
	ErrUnknownField       = format.ErrUnknownField
	ErrUnsupportedVersion = format.ErrUnsupportedVersion
	ErrNotFound           = format.ErrNotFound
)

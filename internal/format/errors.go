package format

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated indicates the byte source ran out before a structure was complete.
	ErrTruncated = errors.New("format: truncated read")
	// ErrMalformed indicates a box violated a structural constraint of the format.
	ErrMalformed = errors.New("format: malformed box")
	// ErrUnknownField indicates a requested field name is not produced by any schema.
	ErrUnknownField = errors.New("format: unknown field")
	// ErrUnsupportedVersion indicates a FullBox version whose field layout is not implemented.
	ErrUnsupportedVersion = errors.New("format: unsupported box version")
	// ErrNotFound indicates a requested field was not present in the file.
	ErrNotFound = errors.New("format: field not found")
)

// TruncatedError reports a read or skip that obtained fewer bytes than required.
// Obtained is the actual count; zero at a box boundary means clean end of stream.
type TruncatedError struct {
	Requested int
	Obtained  int
	Offset    int64
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated read at offset %d: requested %d bytes, obtained %d",
		e.Offset, e.Requested, e.Obtained)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncated }

// MalformedBoxError reports a structural violation while decoding one box.
// Field is empty when the violation is at the box level (header, alignment).
type MalformedBoxError struct {
	BoxType string
	Field   string
	Reason  string
	Err     error
}

func (e *MalformedBoxError) Error() string {
	msg := fmt.Sprintf("box %q", e.BoxType)
	if e.Field != "" {
		msg += fmt.Sprintf(", field %q", e.Field)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedBoxError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrMalformed
}

// UnknownFieldError reports a field-lookup request for a name no schema declares.
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("field %q is not declared by any box schema", e.Name)
}

func (e *UnknownFieldError) Unwrap() error { return ErrUnknownField }

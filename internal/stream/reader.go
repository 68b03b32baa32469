// Package stream provides the bounded byte reader the box decoder consumes.
//
// The reader tracks its absolute offset and reports short reads as
// format.TruncatedError values carrying the exact byte counts, which the
// decoder uses both for diagnostics and to distinguish clean end-of-stream
// (zero bytes at a box boundary) from mid-structure truncation.
package stream

import (
	"fmt"
	"io"

	"github.com/boxkit/boxkit/internal/format"
)

// Reader wraps an io.Reader with exact-read and skip primitives. The cursor
// only ever moves forward.
type Reader struct {
	r   io.Reader
	off int64
}

// New returns a Reader positioned at offset 0 of r.
func New(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 { return r.off }

// ReadExact reads exactly n bytes, or fails with a *format.TruncatedError
// whose Obtained field is the actual count read.
func (r *Reader) ReadExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(r.r, buf)
	r.off += int64(got)
	if err != nil {
		return nil, &format.TruncatedError{Requested: n, Obtained: got, Offset: r.off}
	}
	return buf, nil
}

// Skip advances the cursor by n bytes without retaining their contents.
// A shortfall is reported the same way as a short read. A negative count
// can only come from an overflowed size computation upstream and is
// rejected rather than silently skipping nothing.
func (r *Reader) Skip(n int64) error {
	if n < 0 {
		return fmt.Errorf("stream: negative skip of %d bytes: %w", n, format.ErrMalformed)
	}
	if n == 0 {
		return nil
	}
	got, err := io.CopyN(io.Discard, r.r, n)
	r.off += got
	if err != nil {
		return &format.TruncatedError{Requested: int(n), Obtained: int(got), Offset: r.off}
	}
	return nil
}

package box

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/boxkit/boxkit/internal/format"
	"github.com/boxkit/boxkit/internal/stream"
)

// Header is the decoded box prologue. Size is the box's total length
// including the header itself; HeaderLen is the number of prologue bytes
// actually present (8, +8 for a 64-bit size, +128 for a uuid usertype).
type Header struct {
	Size      uint64
	Type      string
	HeaderLen uint32
}

// PayloadLen returns the number of payload bytes following the header.
func (h Header) PayloadLen() uint64 {
	return h.Size - uint64(h.HeaderLen)
}

// readHeader decodes a box prologue from a reader positioned at a box
// boundary. A source that is already exhausted (zero bytes obtained on the
// first size read) returns io.EOF; any other shortfall is a truncation error.
func readHeader(r *stream.Reader) (Header, error) {
	raw, err := r.ReadExact(format.SizeFieldLen)
	if err != nil {
		var te *format.TruncatedError
		if errors.As(err, &te) && te.Obtained == 0 {
			return Header{}, io.EOF
		}
		return Header{}, fmt.Errorf("box size: %w", err)
	}
	size := uint64(binary.BigEndian.Uint32(raw))

	raw, err = r.ReadExact(format.TypeFieldLen)
	if err != nil {
		return Header{}, fmt.Errorf("box type: %w", err)
	}
	typ := string(raw)
	hdrLen := uint32(format.BoxHeaderLen)

	// A 32-bit size of 1 signals a 64-bit size extension.
	if size == 1 {
		raw, err = r.ReadExact(format.LargeSizeLen)
		if err != nil {
			return Header{}, fmt.Errorf("box %q largesize: %w", typ, err)
		}
		size = binary.BigEndian.Uint64(raw)
		hdrLen += format.LargeSizeLen
	}

	// The extended usertype of a uuid box is discarded uninterpreted.
	if typ == format.TypeUUID {
		if err := r.Skip(format.UserTypeLen); err != nil {
			return Header{}, fmt.Errorf("box %q usertype: %w", typ, err)
		}
		hdrLen += format.UserTypeLen
	}

	if size < uint64(hdrLen) {
		return Header{}, &format.MalformedBoxError{
			BoxType: typ,
			Reason:  fmt.Sprintf("declared size %d smaller than header length %d", size, hdrLen),
		}
	}
	return Header{Size: size, Type: typ, HeaderLen: hdrLen}, nil
}

// FullHeader is the FullBox prologue: a version byte and three raw flag
// bytes. Flags stay as bytes because downstream consumers address them
// individually.
type FullHeader struct {
	Version uint8
	Flags   [3]byte
}

// readFullHeader decodes the 4-byte version/flags prologue.
func readFullHeader(r *stream.Reader) (FullHeader, error) {
	raw, err := r.ReadExact(format.FullHeaderLen)
	if err != nil {
		return FullHeader{}, fmt.Errorf("fullbox header: %w", err)
	}
	var fh FullHeader
	fh.Version = raw[0]
	copy(fh.Flags[:], raw[1:])
	return fh, nil
}

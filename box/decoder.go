package box

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog"

	"github.com/boxkit/boxkit/internal/format"
	"github.com/boxkit/boxkit/internal/stream"
)

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger injects a structured logger used for decode tracing. The
// default is a no-op logger.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Decoder) { d.log = l }
}

// Decoder decodes ISO-BMFF boxes into Node trees, driven by the schema
// registry. A Decoder is stateless between calls and safe to reuse across
// files; the byte source is borrowed only for the duration of a call.
type Decoder struct {
	log      zerolog.Logger
	registry map[string]format.Spec
}

// NewDecoder returns a Decoder using the built-in schema registry.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		log:      zerolog.Nop(),
		registry: format.Registry,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// decodeBox decodes one box at the reader's current position and returns the
// total number of bytes the box occupied. A source exhausted exactly at the
// box boundary returns io.EOF.
func (d *Decoder) decodeBox(r *stream.Reader) (uint64, *Node, error) {
	hdr, err := readHeader(r)
	if err != nil {
		return 0, nil, err
	}

	node := &Node{
		Type: hdr.Type,
		Size: hdr.Size,
		Attrs: map[string]any{
			"type": hdr.Type,
			"size": hdr.Size,
		},
	}
	payload := hdr.PayloadLen()

	spec, ok := d.registry[hdr.Type]
	if !ok {
		// Unknown types are a normal case: skip the payload, keep only
		// the prologue attributes.
		d.log.Debug().Str("box", hdr.Type).Uint64("size", hdr.Size).Msg("skipping unknown box")
		if payload > math.MaxInt {
			return 0, nil, &format.MalformedBoxError{
				BoxType: hdr.Type,
				Reason:  fmt.Sprintf("declared size %d overflows the addressable range", hdr.Size),
			}
		}
		if err := r.Skip(int64(payload)); err != nil {
			return 0, nil, &format.MalformedBoxError{BoxType: hdr.Type, Reason: "payload", Err: err}
		}
		return hdr.Size, node, nil
	}

	d.log.Debug().Str("box", hdr.Type).Uint64("size", hdr.Size).Msg("decoding box")

	if spec.Align > 0 && payload%spec.Align != 0 {
		return 0, nil, &format.MalformedBoxError{
			BoxType: hdr.Type,
			Reason:  fmt.Sprintf("payload length %d is not a multiple of %d", payload, spec.Align),
		}
	}

	var consumed uint64
	var version uint8
	if spec.Kind == format.Full {
		if payload < format.FullHeaderLen {
			return 0, nil, &format.MalformedBoxError{
				BoxType: hdr.Type,
				Reason: fmt.Sprintf("payload of %d bytes cannot hold the %d-byte version/flags prologue",
					payload, format.FullHeaderLen),
			}
		}
		fh, err := readFullHeader(r)
		if err != nil {
			return 0, nil, &format.MalformedBoxError{BoxType: hdr.Type, Err: err}
		}
		node.Attrs["version"] = fh.Version
		node.Attrs["flags"] = fh.Flags
		version = fh.Version
		consumed += format.FullHeaderLen
	}

	for _, f := range spec.Fields {
		if err := d.decodeField(r, f, node, payload, &consumed, version); err != nil {
			var mbe *format.MalformedBoxError
			if errors.As(err, &mbe) {
				// A nested box failed; its error already names the culprit.
				return 0, nil, err
			}
			return 0, nil, &format.MalformedBoxError{BoxType: hdr.Type, Field: f.Label(), Err: err}
		}
	}

	if consumed != payload {
		return 0, nil, &format.MalformedBoxError{
			BoxType: hdr.Type,
			Reason:  fmt.Sprintf("consumed %d of %d payload bytes", consumed, payload),
		}
	}
	return hdr.Size, node, nil
}

// decodeField interprets one schema field against the current box, advancing
// *consumed by the bytes it used.
func (d *Decoder) decodeField(r *stream.Reader, f format.Field, node *Node, payload uint64, consumed *uint64, version uint8) error {
	if *consumed > payload {
		return fmt.Errorf("consumed %d of %d payload bytes before field: %w",
			*consumed, payload, format.ErrMalformed)
	}
	remaining := payload - *consumed
	width := f.Width.Resolve(version, remaining)
	if width > remaining {
		return fmt.Errorf("width %d exceeds remaining payload %d: %w",
			width, remaining, format.ErrMalformed)
	}
	if width > math.MaxInt {
		return fmt.Errorf("width %d overflows the addressable range: %w",
			width, format.ErrMalformed)
	}

	switch f.Enc {
	case format.Uint, format.Int:
		// The 64-bit version-1 layout is declared by the schema but not
		// implemented; fail loudly instead of misreading the payload.
		if width == 8 && f.Width.IsVersioned() {
			return fmt.Errorf("64-bit version-%d layout: %w", version, format.ErrUnsupportedVersion)
		}
		if width != 2 && width != 4 {
			return fmt.Errorf("integer width %d: %w", width, format.ErrMalformed)
		}
		raw, err := r.ReadExact(int(width))
		if err != nil {
			return err
		}
		if f.Enc == format.Uint {
			if width == 2 {
				node.Attrs[f.Name] = uint64(binary.BigEndian.Uint16(raw))
			} else {
				node.Attrs[f.Name] = uint64(binary.BigEndian.Uint32(raw))
			}
		} else {
			if width == 2 {
				node.Attrs[f.Name] = int64(int16(binary.BigEndian.Uint16(raw)))
			} else {
				node.Attrs[f.Name] = int64(int32(binary.BigEndian.Uint32(raw)))
			}
		}
		*consumed += width

	case format.Chars:
		raw, err := r.ReadExact(int(width))
		if err != nil {
			return err
		}
		if f.Chunk > 0 {
			if int(width)%f.Chunk != 0 {
				return fmt.Errorf("length %d does not divide into %d-byte codes: %w",
					width, f.Chunk, format.ErrMalformed)
			}
			codes := make([]string, 0, int(width)/f.Chunk)
			for i := 0; i < int(width); i += f.Chunk {
				codes = append(codes, string(raw[i:i+f.Chunk]))
			}
			node.Attrs[f.Name] = codes
		} else {
			node.Attrs[f.Name] = string(raw)
		}
		*consumed += width

	case format.Lang:
		raw, err := r.ReadExact(2)
		if err != nil {
			return err
		}
		node.Attrs[f.Name] = format.DecodeLanguage([2]byte{raw[0], raw[1]})
		*consumed += 2

	case format.StringToEnd:
		raw, err := r.ReadExact(int(remaining))
		if err != nil {
			return err
		}
		// A value of a single NUL byte means "absent" for display, but
		// the raw decoded value is stored either way.
		node.Attrs[f.Name] = string(raw)
		*consumed += remaining

	case format.Reserved:
		if err := r.Skip(int64(width)); err != nil {
			return err
		}
		*consumed += width

	case format.Blob:
		if err := r.Skip(int64(remaining)); err != nil {
			return err
		}
		node.Attrs[f.Name] = remaining
		*consumed += remaining

	case format.Children:
		used, err := d.decodeChildren(r, node, remaining)
		*consumed += used
		if err != nil {
			return err
		}

	case format.RepeatedChildren:
		count, err := entryCount(node, "entry_count")
		if err != nil {
			return err
		}
		used, err := d.decodeChildrenN(r, node, remaining, count)
		*consumed += used
		if err != nil {
			return err
		}

	case format.TupleArray:
		count, err := entryCount(node, "entry_count")
		if err != nil {
			return err
		}
		need := count * 4 * uint64(len(f.Names))
		if need > remaining {
			return fmt.Errorf("%d entries need %d bytes, %d remain: %w",
				count, need, remaining, format.ErrMalformed)
		}
		cols := make(map[string][]uint32, len(f.Names))
		for _, name := range f.Names {
			cols[name] = make([]uint32, 0, count)
		}
		for i := uint64(0); i < count; i++ {
			for _, name := range f.Names {
				raw, err := r.ReadExact(4)
				if err != nil {
					return err
				}
				cols[name] = append(cols[name], binary.BigEndian.Uint32(raw))
			}
		}
		for _, name := range f.Names {
			node.Attrs[name] = cols[name]
		}
		*consumed += need

	case format.CondSampleArray:
		size, err := entryCount(node, "sample_size")
		if err != nil {
			return err
		}
		if size != 0 {
			// Constant sample size: no per-sample table follows.
			return nil
		}
		count, err := entryCount(node, "sample_count")
		if err != nil {
			return err
		}
		need := count * 4
		if need > remaining {
			return fmt.Errorf("%d samples need %d bytes, %d remain: %w",
				count, need, remaining, format.ErrMalformed)
		}
		sizes := make([]uint32, 0, count)
		for i := uint64(0); i < count; i++ {
			raw, err := r.ReadExact(4)
			if err != nil {
				return err
			}
			sizes = append(sizes, binary.BigEndian.Uint32(raw))
		}
		node.Attrs[f.Name] = sizes
		*consumed += need

	default:
		return fmt.Errorf("encoding %d: %w", f.Enc, format.ErrMalformed)
	}
	return nil
}

// decodeChildren decodes nested boxes until exactly budget bytes have been
// consumed, appending each child to the parent node.
func (d *Decoder) decodeChildren(r *stream.Reader, parent *Node, budget uint64) (uint64, error) {
	var used uint64
	for used < budget {
		size, child, err := d.decodeBox(r)
		if errors.Is(err, io.EOF) {
			return used, &format.MalformedBoxError{
				BoxType: parent.Type,
				Reason:  fmt.Sprintf("stream ended with %d child payload bytes outstanding", budget-used),
				Err:     format.ErrTruncated,
			}
		}
		if err != nil {
			return used, err
		}
		if size > budget-used {
			return used, &format.MalformedBoxError{
				BoxType: parent.Type,
				Reason: fmt.Sprintf("child %q of size %d overruns remaining payload %d",
					child.Type, size, budget-used),
			}
		}
		parent.Children = append(parent.Children, child)
		used += size
	}
	return used, nil
}

// decodeChildrenN decodes exactly count nested boxes within budget bytes.
func (d *Decoder) decodeChildrenN(r *stream.Reader, parent *Node, budget uint64, count uint64) (uint64, error) {
	var used uint64
	for i := uint64(0); i < count; i++ {
		size, child, err := d.decodeBox(r)
		if errors.Is(err, io.EOF) {
			return used, &format.MalformedBoxError{
				BoxType: parent.Type,
				Reason:  fmt.Sprintf("stream ended after %d of %d entries", i, count),
				Err:     format.ErrTruncated,
			}
		}
		if err != nil {
			return used, err
		}
		if size > budget-used {
			return used, &format.MalformedBoxError{
				BoxType: parent.Type,
				Reason: fmt.Sprintf("entry %q of size %d overruns remaining payload %d",
					child.Type, size, budget-used),
			}
		}
		parent.Children = append(parent.Children, child)
		used += size
	}
	return used, nil
}

// entryCount fetches a previously decoded unsigned counter field, as used by
// the array-typed encodings.
func entryCount(node *Node, name string) (uint64, error) {
	v, ok := node.Attrs[name]
	if !ok {
		return 0, fmt.Errorf("counter field %q not decoded before array field: %w",
			name, format.ErrMalformed)
	}
	n, ok := v.(uint64)
	if !ok {
		return 0, fmt.Errorf("counter field %q has non-integer value: %w",
			name, format.ErrMalformed)
	}
	return n, nil
}

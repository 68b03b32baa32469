package box

import (
	"errors"
	"fmt"
	"io"

	"github.com/boxkit/boxkit/internal/format"
	"github.com/boxkit/boxkit/internal/stream"
)

// DecodeAll walks top-level boxes until the source is cleanly exhausted,
// returning one Node per box. On a parse failure the boxes decoded so far
// are returned alongside the error; the walk does not attempt byte-level
// resynchronization, since the format offers no reliable resync marker
// after a corrupt box.
func (d *Decoder) DecodeAll(r io.Reader) ([]*Node, error) {
	sr := stream.New(r)
	var nodes []*Node
	for {
		_, node, err := d.decodeBox(sr)
		if errors.Is(err, io.EOF) {
			return nodes, nil
		}
		if err != nil {
			d.log.Error().Err(err).Int64("offset", sr.Offset()).Msg("box decode failed")
			return nodes, err
		}
		nodes = append(nodes, node)
	}
}

// FindField walks top-level boxes and returns the first value decoded under
// name, in document order, stopping at the first match without decoding the
// rest of the file. Names no schema declares fail immediately with
// UnknownFieldError; names declared but absent from the file fail with
// ErrNotFound after a full walk.
func (d *Decoder) FindField(r io.Reader, name string) (any, error) {
	if !format.IsFieldName(name) {
		return nil, &format.UnknownFieldError{Name: name}
	}
	sr := stream.New(r)
	for {
		_, node, err := d.decodeBox(sr)
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("field %q: %w", name, format.ErrNotFound)
		}
		if err != nil {
			d.log.Error().Err(err).Int64("offset", sr.Offset()).Msg("box decode failed")
			return nil, err
		}
		if v, ok := node.Lookup(name); ok {
			return v, nil
		}
	}
}

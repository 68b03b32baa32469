package box

import (
	"bytes"

	"github.com/boxkit/boxkit/internal/mmfile"
)

// File is an MP4 file opened for decoding. On Unix the contents are
// memory-mapped; elsewhere they are read into memory. Every decode call
// works on a fresh cursor, so a File can be decoded repeatedly.
type File struct {
	path    string
	data    []byte
	cleanup func() error
	dec     *Decoder
}

// Open maps the file at path and prepares a decoder for it.
func Open(path string, opts ...Option) (*File, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	return &File{
		path:    path,
		data:    data,
		cleanup: cleanup,
		dec:     NewDecoder(opts...),
	}, nil
}

// Path returns the path the file was opened from.
func (f *File) Path() string { return f.path }

// Size returns the file length in bytes.
func (f *File) Size() int64 { return int64(len(f.data)) }

// Boxes decodes every top-level box in the file.
func (f *File) Boxes() ([]*Node, error) {
	return f.dec.DecodeAll(bytes.NewReader(f.data))
}

// FindField returns the first value decoded under name anywhere in the file.
func (f *File) FindField(name string) (any, error) {
	return f.dec.FindField(bytes.NewReader(f.data), name)
}

// Close releases the mapping. The File must not be used afterwards.
func (f *File) Close() error {
	if f.cleanup == nil {
		return nil
	}
	err := f.cleanup()
	f.cleanup = nil
	f.data = nil
	return err
}

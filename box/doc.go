// Package box decodes ISO/IEC 14496-12 (MP4 / ISO-BMFF) container files into
// trees of typed metadata fields.
//
// # Overview
//
// Decoding is driven entirely by a declarative schema rather than per-box
// hand-written decoders: each supported 4-character box type maps to an
// ordered field layout, and a single interpreter consumes the right number
// of bytes per field, recursing into child boxes and tracking the byte
// budget of every box exactly. Unknown box types are skipped, which keeps
// the decoder forward-compatible with boxes the registry does not describe.
//
// # Opening a File
//
//	f, err := box.Open("movie.mp4")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	boxes, err := f.Boxes()          // full top-level decode
//	v, err := f.FindField("creation_time") // first match, short-circuiting
//
// On Unix the file is memory-mapped; on other platforms it is read into
// memory. A Decoder can also be used directly against any io.Reader:
//
//	dec := box.NewDecoder(box.WithLogger(logger))
//	nodes, err := dec.DecodeAll(r)
//
// # Attribute Model
//
// Each decoded box is a Node holding a string-keyed attribute map ("type"
// and "size" always; "version" and "flags" for FullBox types; plus every
// schema-declared field) and its child boxes in document order. The
// flattened view historically exposed by this decoder — children merged
// into the parent's namespace — is derived by Node.Flatten, with
// first-in-document-order precedence on collisions.
//
// # Error Handling
//
// Fallible boundaries return structured errors: TruncatedError carries the
// requested and obtained byte counts, MalformedBoxError carries the box
// type and field that failed. Truncation at a top-level box boundary with
// zero bytes obtained is a clean end of stream, not an error.
package box

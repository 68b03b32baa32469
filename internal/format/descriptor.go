package format

// BoxKind distinguishes the two box prologue shapes.
type BoxKind uint8

const (
	// Plain boxes carry only the size/type header.
	Plain BoxKind = iota
	// Full boxes additionally carry a version byte and 3 flag bytes.
	Full
)

// Encoding is the closed set of field interpretations the decoder understands.
// Each box schema is an ordered list of fields tagged with one of these.
type Encoding uint8

const (
	// Uint is a big-endian unsigned integer of the field's width.
	Uint Encoding = iota
	// Int is a big-endian signed (two's complement) integer.
	Int
	// Chars is UTF-8 text; with a chunk length it splits into fixed-size codes.
	Chars
	// Lang is a packed 16-bit ISO-639-2/T language code (three 5-bit letters).
	Lang
	// StringToEnd is UTF-8 text filling the remainder of the box.
	StringToEnd
	// Reserved skips the field's width without storing a value.
	Reserved
	// Children decodes nested boxes until the box payload is exhausted.
	Children
	// RepeatedChildren decodes entry_count nested boxes.
	RepeatedChildren
	// TupleArray decodes entry_count rows of one 32-bit unsigned value per name.
	TupleArray
	// CondSampleArray decodes sample_count 32-bit values when sample_size is zero.
	CondSampleArray
	// Blob skips the remainder of the box, recording only the byte count.
	Blob
)

// widthKind selects how a field's byte width is resolved.
type widthKind uint8

const (
	widthFixed widthKind = iota
	widthVersioned
	widthRemaining
)

// Width is a field's byte width: fixed, selected by the FullBox version, or
// computed from the bytes remaining in the box.
type Width struct {
	kind   widthKind
	v0, v1 uint32
}

// Fixed returns a width of exactly n bytes.
func Fixed(n uint32) Width { return Width{kind: widthFixed, v0: n} }

// Versioned returns a width of v0 bytes for version 0 and v1 bytes otherwise.
func Versioned(v0, v1 uint32) Width { return Width{kind: widthVersioned, v0: v0, v1: v1} }

// Remaining returns a width equal to the unconsumed payload of the box.
// Only legal for a box's trailing field.
func Remaining() Width { return Width{kind: widthRemaining} }

// Resolve computes the concrete byte width for the given FullBox version and
// the number of payload bytes not yet consumed.
func (w Width) Resolve(version uint8, remaining uint64) uint64 {
	switch w.kind {
	case widthVersioned:
		if version == 0 {
			return uint64(w.v0)
		}
		return uint64(w.v1)
	case widthRemaining:
		return remaining
	default:
		return uint64(w.v0)
	}
}

// IsVersioned reports whether the width depends on the FullBox version.
func (w Width) IsVersioned() bool { return w.kind == widthVersioned }

// Field describes one entry in a box schema: a name (or names, for tuple
// arrays), a width, and an encoding. Construct fields with the helpers below
// so that the name/width/encoding combinations stay consistent.
type Field struct {
	Name  string
	Names []string
	Width Width
	Enc   Encoding
	Chunk int
}

// Label returns the field's name for diagnostics, falling back to the joined
// tuple names or the encoding itself for unnamed fields.
func (f Field) Label() string {
	switch {
	case f.Name != "":
		return f.Name
	case len(f.Names) > 0:
		s := f.Names[0]
		for _, n := range f.Names[1:] {
			s += "," + n
		}
		return s
	case f.Enc == Reserved:
		return "(reserved)"
	default:
		return "(unnamed)"
	}
}

// UintField decodes a big-endian unsigned integer.
func UintField(name string, w Width) Field { return Field{Name: name, Width: w, Enc: Uint} }

// IntField decodes a big-endian signed integer.
func IntField(name string, w Width) Field { return Field{Name: name, Width: w, Enc: Int} }

// CharsField decodes UTF-8 text; chunk > 0 splits it into fixed-size codes.
func CharsField(name string, w Width, chunk int) Field {
	return Field{Name: name, Width: w, Enc: Chars, Chunk: chunk}
}

// LangField decodes a packed 2-byte language code.
func LangField(name string) Field { return Field{Name: name, Width: Fixed(2), Enc: Lang} }

// StringField decodes the remainder of the box as UTF-8 text.
func StringField(name string) Field {
	return Field{Name: name, Width: Remaining(), Enc: StringToEnd}
}

// ReservedField skips n bytes of padding.
func ReservedField(n uint32) Field { return Field{Width: Fixed(n), Enc: Reserved} }

// ChildrenField recurses into nested boxes filling the remaining payload.
func ChildrenField() Field { return Field{Width: Remaining(), Enc: Children} }

// RepeatedChildrenField recurses into entry_count nested boxes.
func RepeatedChildrenField() Field { return Field{Width: Remaining(), Enc: RepeatedChildren} }

// TupleField decodes entry_count rows, one 32-bit unsigned value per name.
func TupleField(names ...string) Field {
	return Field{Names: names, Width: Remaining(), Enc: TupleArray}
}

// CondSampleField decodes sample_count 32-bit values when sample_size is zero.
func CondSampleField(name string) Field {
	return Field{Name: name, Width: Remaining(), Enc: CondSampleArray}
}

// BlobField skips the remaining payload, storing its length under name.
func BlobField(name string) Field { return Field{Name: name, Width: Remaining(), Enc: Blob} }

package format

// Spec is one box schema: the box kind plus its ordered field layout.
// Align, when non-zero, requires the payload length to be a multiple of it.
type Spec struct {
	Kind   BoxKind
	Align  uint64
	Fields []Field
}

// Registry maps each supported 4-character box type to its schema. It is a
// read-only table; unknown types are skipped by the decoder, not rejected.
//
// Versioned widths declare the version-1 (64-bit) layout of timestamp and
// duration fields, but decoding a 64-bit integer field is not implemented and
// fails with ErrUnsupportedVersion rather than misreading the payload.
var Registry = map[string]Spec{
	// File Type Box, ISO/IEC 14496-12 section 4.3.
	//
	//	Offset  Size  Field
	//	0       4     major_brand
	//	4       4     minor_version
	//	8       4*n   compatible_brands
	//
	// The payload must be a multiple of 4 so the trailing brand array
	// divides evenly into 4-character codes.
	"ftyp": {
		Kind:  Plain,
		Align: 4,
		Fields: []Field{
			CharsField("major_brand", Fixed(4), 0),
			UintField("minor_version", Fixed(4)),
			CharsField("compatible_brands", Remaining(), 4),
		},
	},

	// Container boxes: nothing of their own, children fill the payload.
	"moov": {Kind: Plain, Fields: []Field{ChildrenField()}},
	"trak": {Kind: Plain, Fields: []Field{ChildrenField()}},
	"edts": {Kind: Plain, Fields: []Field{ChildrenField()}},
	"mdia": {Kind: Plain, Fields: []Field{ChildrenField()}},
	"minf": {Kind: Plain, Fields: []Field{ChildrenField()}},
	"dinf": {Kind: Plain, Fields: []Field{ChildrenField()}},
	"stbl": {Kind: Plain, Fields: []Field{ChildrenField()}},

	// Movie Header Box, section 8.2.2. Version 0 layout:
	//
	//	Offset  Size  Field
	//	0       4     creation_time
	//	4       4     modification_time
	//	8       4     timescale
	//	12      4     duration
	//	16      4     rate (16.16 fixed point)
	//	20      2     volume (8.8 fixed point)
	//	22      10    reserved
	//	32      36    matrix
	//	68      24    pre_defined
	//	92      4     next_track_id
	"mvhd": {
		Kind: Full,
		Fields: []Field{
			UintField("creation_time", Versioned(4, 8)),
			UintField("modification_time", Versioned(4, 8)),
			UintField("timescale", Fixed(4)),
			UintField("duration", Versioned(4, 8)),
			UintField("rate", Fixed(4)),
			UintField("volume", Fixed(2)),
			ReservedField(10),
			ReservedField(36),
			ReservedField(24),
			UintField("next_track_id", Fixed(4)),
		},
	},

	// Track Header Box, section 8.3.2.
	"tkhd": {
		Kind: Full,
		Fields: []Field{
			UintField("creation_time", Versioned(4, 8)),
			UintField("modification_time", Versioned(4, 8)),
			UintField("track_id", Fixed(4)),
			ReservedField(4),
			UintField("duration", Versioned(4, 8)),
			ReservedField(8),
			IntField("layer", Fixed(2)),
			IntField("alternate_group", Fixed(2)),
			IntField("volume", Fixed(2)),
			ReservedField(2),
			ReservedField(36),
			UintField("width", Fixed(4)),
			UintField("height", Fixed(4)),
		},
	},

	// Edit List Box, section 8.6.6. Rows are always read as 32-bit pairs;
	// a non-empty version-1 list (64-bit rows) fails the box's byte-budget
	// check instead of decoding wrong values.
	"elst": {
		Kind: Full,
		Fields: []Field{
			UintField("entry_count", Fixed(4)),
			TupleField("segment_duration", "media_time"),
		},
	},

	// Media Header Box, section 8.4.2.
	"mdhd": {
		Kind: Full,
		Fields: []Field{
			UintField("creation_time", Versioned(4, 8)),
			UintField("modification_time", Versioned(4, 8)),
			UintField("timescale", Fixed(4)),
			UintField("duration", Versioned(4, 8)),
			LangField("language"),
			ReservedField(2),
		},
	},

	// Handler Reference Box, section 8.4.3. The trailing name is a UTF-8
	// string filling the box; a lone NUL means "no name".
	"hdlr": {
		Kind: Full,
		Fields: []Field{
			ReservedField(4),
			CharsField("handler_type", Fixed(4), 0),
			ReservedField(12),
			StringField("name"),
		},
	},

	// Video Media Header Box, section 12.1.2.
	"vmhd": {
		Kind: Full,
		Fields: []Field{
			UintField("graphicsmode", Fixed(2)),
			UintField("opcolor_red", Fixed(2)),
			UintField("opcolor_green", Fixed(2)),
			UintField("opcolor_blue", Fixed(2)),
		},
	},

	// Sound Media Header Box, section 12.2.2.
	"smhd": {
		Kind: Full,
		Fields: []Field{
			IntField("balance", Fixed(2)),
			ReservedField(2),
		},
	},

	// Data Reference Box, section 8.7.2: entry_count data-entry child boxes.
	"dref": {
		Kind: Full,
		Fields: []Field{
			UintField("entry_count", Fixed(4)),
			RepeatedChildrenField(),
		},
	},

	// DataEntryUrlBox. With the self-contained flag set the location is
	// absent and the payload is empty.
	"url ": {
		Kind: Full,
		Fields: []Field{
			StringField("location"),
		},
	},

	// Sample Description Box, section 8.5.2. The sample entries themselves
	// are codec-specific and fall through the unknown-box path.
	"stsd": {
		Kind: Full,
		Fields: []Field{
			UintField("entry_count", Fixed(4)),
			RepeatedChildrenField(),
		},
	},

	// Decoding Time to Sample Box, section 8.6.1.2.
	"stts": {
		Kind: Full,
		Fields: []Field{
			UintField("entry_count", Fixed(4)),
			TupleField("sample_count", "sample_delta"),
		},
	},

	// Composition Time to Sample Box, section 8.6.1.3.
	"ctts": {
		Kind: Full,
		Fields: []Field{
			UintField("entry_count", Fixed(4)),
			TupleField("sample_count", "sample_offset"),
		},
	},

	// Sample To Chunk Box, section 8.7.4.
	"stsc": {
		Kind: Full,
		Fields: []Field{
			UintField("entry_count", Fixed(4)),
			TupleField("first_chunk", "samples_per_chunk", "sample_description_index"),
		},
	},

	// Sample Size Box, section 8.7.3.2. The per-sample table is present
	// only when sample_size is zero.
	"stsz": {
		Kind: Full,
		Fields: []Field{
			UintField("sample_size", Fixed(4)),
			UintField("sample_count", Fixed(4)),
			CondSampleField("entry_size"),
		},
	},

	// Chunk Offset Box, section 8.7.5.
	"stco": {
		Kind: Full,
		Fields: []Field{
			UintField("entry_count", Fixed(4)),
			TupleField("chunk_offset"),
		},
	},

	// Opaque payloads: skipped wholesale, only the length is recorded.
	"mdat": {Kind: Plain, Fields: []Field{BlobField("data_size")}},
	"udta": {Kind: Plain, Fields: []Field{BlobField("data_size")}},
	"free": {Kind: Plain, Fields: []Field{BlobField("data_size")}},
	"skip": {Kind: Plain, Fields: []Field{BlobField("data_size")}},
}

// fieldNames is the set of every attribute name any registry schema can
// produce, built once at init.
var fieldNames = buildFieldNames()

func buildFieldNames() map[string]struct{} {
	names := make(map[string]struct{})
	for _, spec := range Registry {
		for _, f := range spec.Fields {
			if f.Name != "" {
				names[f.Name] = struct{}{}
			}
			for _, n := range f.Names {
				names[n] = struct{}{}
			}
		}
	}
	return names
}

// IsFieldName reports whether some schema in the registry declares name.
func IsFieldName(name string) bool {
	_, ok := fieldNames[name]
	return ok
}

// FieldNames returns a copy of the set of all declared field names.
func FieldNames() map[string]struct{} {
	out := make(map[string]struct{}, len(fieldNames))
	for n := range fieldNames {
		out[n] = struct{}{}
	}
	return out
}

package format

// Box prologue sizes, per ISO/IEC 14496-12 section 4.2.
const (
	// SizeFieldLen is the length of the leading 32-bit box size.
	SizeFieldLen = 4

	// TypeFieldLen is the length of the 4-character box type tag.
	TypeFieldLen = 4

	// BoxHeaderLen is the length of the compact box header (size + type).
	BoxHeaderLen = SizeFieldLen + TypeFieldLen

	// LargeSizeLen is the length of the 64-bit size extension, present
	// when the 32-bit size field holds 1.
	LargeSizeLen = 8

	// UserTypeLen is the length of the extended usertype that follows a
	// "uuid" box type. The decoder discards it without interpretation.
	UserTypeLen = 128

	// FullHeaderLen is the length of the FullBox prologue: a 1-byte
	// version followed by 3 bytes of flags.
	FullHeaderLen = 4
)

// TypeUUID is the box type that carries an extended usertype.
const TypeUUID = "uuid"

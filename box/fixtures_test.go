package box

import "encoding/binary"

// Fixture helpers building synthetic boxes in memory, big-endian throughout.

func u16be(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func u32be(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func u64be(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// writeBox frames payload with a compact 8-byte header.
func writeBox(typ string, payload []byte) []byte {
	out := u32be(uint32(8 + len(payload)))
	out = append(out, typ...)
	return append(out, payload...)
}

// writeFullBox frames payload with a compact header plus a FullBox prologue.
func writeFullBox(typ string, version byte, payload []byte) []byte {
	inner := append([]byte{version, 0, 0, 0}, payload...)
	return writeBox(typ, inner)
}

// mvhdV0 builds a version-0 mvhd box with the given times (1904-epoch
// seconds), timescale and duration.
func mvhdV0(creation, modification, timescale, duration uint32) []byte {
	payload := cat(
		u32be(creation),
		u32be(modification),
		u32be(timescale),
		u32be(duration),
		u32be(0x00010000), // rate 1.0
		u16be(0x0100),     // volume 1.0
		make([]byte, 10),  // reserved
		make([]byte, 36),  // matrix
		make([]byte, 24),  // pre_defined
		u32be(2),          // next_track_id
	)
	return writeFullBox("mvhd", 0, payload)
}

// mdhdV0 builds a version-0 mdhd box with the given packed language code.
func mdhdV0(timescale, duration uint32, lang uint16) []byte {
	payload := cat(
		u32be(0), u32be(0),
		u32be(timescale),
		u32be(duration),
		u16be(lang),
		make([]byte, 2),
	)
	return writeFullBox("mdhd", 0, payload)
}

// ftypBox builds an ftyp box from a major brand and compatible brands.
func ftypBox(major string, minor uint32, brands ...string) []byte {
	payload := cat([]byte(major), u32be(minor))
	for _, b := range brands {
		payload = append(payload, b...)
	}
	return writeBox("ftyp", payload)
}

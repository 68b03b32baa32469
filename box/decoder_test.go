package box

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeOne(t *testing.T, data []byte) *Node {
	t.Helper()
	nodes, err := NewDecoder().DecodeAll(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	return nodes[0]
}

func TestDecodeFtyp(t *testing.T) {
	node := decodeOne(t, ftypBox("isom", 512, "isom", "avc1"))

	require.Equal(t, "ftyp", node.Type)
	require.Equal(t, uint64(24), node.Size)
	require.Equal(t, "isom", node.Attrs["major_brand"])
	require.Equal(t, uint64(512), node.Attrs["minor_version"])
	require.Equal(t, []string{"isom", "avc1"}, node.Attrs["compatible_brands"])
}

func TestDecodeFtypMisaligned(t *testing.T) {
	// 9 payload bytes cannot divide into 4-byte brand codes.
	data := writeBox("ftyp", make([]byte, 9))

	_, err := NewDecoder().DecodeAll(bytes.NewReader(data))
	var mbe *MalformedBoxError
	require.ErrorAs(t, err, &mbe)
	require.Equal(t, "ftyp", mbe.BoxType)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeMvhd(t *testing.T) {
	node := decodeOne(t, mvhdV0(3524134501, 3524134501, 1000, 42000))

	require.Equal(t, uint64(108), node.Size)
	require.Equal(t, uint8(0), node.Attrs["version"])
	require.Equal(t, [3]byte{}, node.Attrs["flags"])
	require.Equal(t, uint64(3524134501), node.Attrs["creation_time"])
	require.Equal(t, uint64(1000), node.Attrs["timescale"])
	require.Equal(t, uint64(42000), node.Attrs["duration"])
	require.Equal(t, uint64(2), node.Attrs["next_track_id"])
}

func TestDecodeMvhdVersion1Unsupported(t *testing.T) {
	// The version-1 layout widens the timestamp fields to 64 bits, which
	// the field decoder does not implement; it must fail rather than
	// misread the payload.
	payload := make([]byte, 108) // 64-bit times, timescale, duration, rest
	data := writeFullBox("mvhd", 1, payload)

	_, err := NewDecoder().DecodeAll(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrUnsupportedVersion)
	var mbe *MalformedBoxError
	require.ErrorAs(t, err, &mbe)
	require.Equal(t, "mvhd", mbe.BoxType)
	require.Equal(t, "creation_time", mbe.Field)
}

func TestDecodeMdhdLanguage(t *testing.T) {
	node := decodeOne(t, mdhdV0(48000, 96000, 0x15C7))

	require.Equal(t, "eng", node.Attrs["language"])
	require.Equal(t, uint64(48000), node.Attrs["timescale"])
}

func TestDecodeNestedChildren(t *testing.T) {
	mvhd := mvhdV0(100, 100, 1000, 5000)
	free := writeBox("free", make([]byte, 4))
	moov := writeBox("moov", cat(mvhd, free))

	node := decodeOne(t, moov)
	require.Equal(t, "moov", node.Type)
	require.Len(t, node.Children, 2)
	require.Equal(t, "mvhd", node.Children[0].Type)
	require.Equal(t, "free", node.Children[1].Type)

	// Total consumed equals the sum of the children's sizes exactly.
	require.Equal(t, node.Size, uint64(8)+node.Children[0].Size+node.Children[1].Size)
}

func TestDecodeUnknownBoxSkipped(t *testing.T) {
	unknown := writeBox("xtra", make([]byte, 8)) // declared size 16
	free := writeBox("free", make([]byte, 4))

	nodes, err := NewDecoder().DecodeAll(bytes.NewReader(cat(unknown, free)))
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	// The unknown box carries only its prologue attributes, and decoding
	// resumed correctly at the next sibling.
	require.Equal(t, "xtra", nodes[0].Type)
	require.Equal(t, uint64(16), nodes[0].Size)
	require.Len(t, nodes[0].Attrs, 2)
	require.Equal(t, "free", nodes[1].Type)
}

func TestDecodeChildOverrunsParent(t *testing.T) {
	// A moov declaring 10 payload bytes whose child claims 16.
	child := writeBox("free", make([]byte, 8))
	moov := cat(u32be(8+10), []byte("moov"), child[:10])
	data := cat(moov, child[10:]) // keep the stream long enough

	_, err := NewDecoder().DecodeAll(bytes.NewReader(data))
	var mbe *MalformedBoxError
	require.ErrorAs(t, err, &mbe)
	require.Equal(t, "moov", mbe.BoxType)
}

func TestDecodeStts(t *testing.T) {
	payload := cat(
		u32be(2),
		u32be(10), u32be(1001),
		u32be(20), u32be(1002),
	)
	node := decodeOne(t, writeFullBox("stts", 0, payload))

	require.Equal(t, uint64(2), node.Attrs["entry_count"])
	require.Equal(t, []uint32{10, 20}, node.Attrs["sample_count"])
	require.Equal(t, []uint32{1001, 1002}, node.Attrs["sample_delta"])
}

func TestDecodeStscTriples(t *testing.T) {
	payload := cat(
		u32be(1),
		u32be(1), u32be(30), u32be(1),
	)
	node := decodeOne(t, writeFullBox("stsc", 0, payload))

	require.Equal(t, []uint32{1}, node.Attrs["first_chunk"])
	require.Equal(t, []uint32{30}, node.Attrs["samples_per_chunk"])
	require.Equal(t, []uint32{1}, node.Attrs["sample_description_index"])
}

func TestDecodeStszVariableSizes(t *testing.T) {
	payload := cat(
		u32be(0), // sample_size 0: per-sample table follows
		u32be(3),
		u32be(100), u32be(200), u32be(300),
	)
	node := decodeOne(t, writeFullBox("stsz", 0, payload))

	require.Equal(t, uint64(0), node.Attrs["sample_size"])
	require.Equal(t, uint64(3), node.Attrs["sample_count"])
	require.Equal(t, []uint32{100, 200, 300}, node.Attrs["entry_size"])
}

func TestDecodeStszConstantSize(t *testing.T) {
	payload := cat(
		u32be(1024), // constant sample size: no table
		u32be(3),
	)
	node := decodeOne(t, writeFullBox("stsz", 0, payload))

	require.Equal(t, uint64(1024), node.Attrs["sample_size"])
	require.NotContains(t, node.Attrs, "entry_size")
}

func TestDecodeDrefEntries(t *testing.T) {
	url := writeFullBox("url ", 0, []byte("file.mp4"))
	payload := cat(u32be(1), url)
	node := decodeOne(t, writeFullBox("dref", 0, payload))

	require.Equal(t, uint64(1), node.Attrs["entry_count"])
	require.Len(t, node.Children, 1)
	require.Equal(t, "url ", node.Children[0].Type)
	require.Equal(t, "file.mp4", node.Children[0].Attrs["location"])
}

func TestDecodeHdlrName(t *testing.T) {
	payload := cat(
		make([]byte, 4),
		[]byte("vide"),
		make([]byte, 12),
		[]byte("VideoHandler\x00"),
	)
	node := decodeOne(t, writeFullBox("hdlr", 0, payload))

	require.Equal(t, "vide", node.Attrs["handler_type"])
	require.Equal(t, "VideoHandler\x00", node.Attrs["name"])
}

func TestDecodePayloadUnderrun(t *testing.T) {
	// An mdhd with 4 trailing bytes its schema does not account for.
	payload := cat(
		u32be(0), u32be(0), u32be(48000), u32be(0),
		u16be(0x55C4), make([]byte, 2),
		make([]byte, 4), // excess
	)
	data := writeFullBox("mdhd", 0, payload)

	_, err := NewDecoder().DecodeAll(bytes.NewReader(data))
	var mbe *MalformedBoxError
	require.ErrorAs(t, err, &mbe)
	require.Equal(t, "mdhd", mbe.BoxType)
}

func TestDecodeTruncatedMidBox(t *testing.T) {
	data := mvhdV0(1, 2, 3, 4)
	_, err := NewDecoder().DecodeAll(bytes.NewReader(data[:20]))

	require.ErrorIs(t, err, ErrTruncated)
	var mbe *MalformedBoxError
	require.ErrorAs(t, err, &mbe)
	require.Equal(t, "mvhd", mbe.BoxType)
}

func TestDecodeBlobRecordsLength(t *testing.T) {
	node := decodeOne(t, writeBox("mdat", make([]byte, 32)))

	require.Equal(t, uint64(32), node.Attrs["data_size"])
}

func TestDecodeFullBoxPayloadTooShort(t *testing.T) {
	// Declared size 10 leaves a 2-byte payload, too small for the 4-byte
	// version/flags prologue of a FullBox.
	data := cat(u32be(10), []byte("url "), make([]byte, 4))

	_, err := NewDecoder().DecodeAll(bytes.NewReader(data))
	var mbe *MalformedBoxError
	require.ErrorAs(t, err, &mbe)
	require.Equal(t, "url ", mbe.BoxType)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeUnknownBoxSizeOverflow(t *testing.T) {
	// A largesize past 2^63 cannot be skipped; it must fail instead of
	// silently reading the payload bytes as the next sibling box.
	data := cat(
		u32be(1), []byte("xtra"), u64be(1<<63+100),
		writeBox("free", make([]byte, 4)),
	)

	nodes, err := NewDecoder().DecodeAll(bytes.NewReader(data))
	var mbe *MalformedBoxError
	require.ErrorAs(t, err, &mbe)
	require.Equal(t, "xtra", mbe.BoxType)
	require.ErrorIs(t, err, ErrMalformed)
	require.Empty(t, nodes)
}

func TestDecodeElstVersion1Fails(t *testing.T) {
	// entry_count 1, then one 20-byte version-1 row: two 64-bit values and
	// a media_rate. The 32-bit row reader cannot account for it, so the
	// byte budget comes up short.
	payload := cat(u32be(1), u64be(1000), u64be(0), u32be(0x00010000))
	data := writeFullBox("elst", 1, payload)

	_, err := NewDecoder().DecodeAll(bytes.NewReader(data))
	var mbe *MalformedBoxError
	require.ErrorAs(t, err, &mbe)
	require.Equal(t, "elst", mbe.BoxType)
	require.ErrorIs(t, err, ErrMalformed)
}

package box

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// sampleFile builds ftyp + moov(mvhd, trak(mdia(mdhd))) + mdat.
func sampleFile() []byte {
	mdhd := mdhdV0(48000, 96000, 0x15C7)
	mdia := writeBox("mdia", mdhd)
	trak := writeBox("trak", mdia)
	moov := writeBox("moov", cat(mvhdV0(3524134501, 3524134501, 1000, 42000), trak))
	return cat(
		ftypBox("isom", 0, "isom", "avc1"),
		moov,
		writeBox("mdat", make([]byte, 64)),
	)
}

func TestDecodeAllSizesSumToFileLength(t *testing.T) {
	data := sampleFile()

	nodes, err := NewDecoder().DecodeAll(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	var total uint64
	for _, n := range nodes {
		total += n.Size
	}
	require.Equal(t, uint64(len(data)), total)
}

func TestFindFieldCreationTime(t *testing.T) {
	v, err := NewDecoder().FindField(bytes.NewReader(sampleFile()), "creation_time")
	require.NoError(t, err)
	require.Equal(t, uint64(3524134501), v)
}

func TestFindFieldDeepInTree(t *testing.T) {
	v, err := NewDecoder().FindField(bytes.NewReader(sampleFile()), "language")
	require.NoError(t, err)
	require.Equal(t, "eng", v)
}

func TestFindFieldShortCircuits(t *testing.T) {
	// A corrupt trailing box does not disturb a lookup satisfied by an
	// earlier sibling: the walk stops at the first match.
	corrupt := cat(u32be(100), []byte("mdat")) // claims 100 bytes, has 0
	data := cat(sampleFile(), corrupt)

	v, err := NewDecoder().FindField(bytes.NewReader(data), "creation_time")
	require.NoError(t, err)
	require.Equal(t, uint64(3524134501), v)

	_, err = NewDecoder().DecodeAll(bytes.NewReader(data))
	require.Error(t, err)
}

func TestFindFieldUndeclaredName(t *testing.T) {
	_, err := NewDecoder().FindField(bytes.NewReader(sampleFile()), "bitrate")

	var ufe *UnknownFieldError
	require.ErrorAs(t, err, &ufe)
	require.Equal(t, "bitrate", ufe.Name)
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestFindFieldAbsentFromFile(t *testing.T) {
	data := ftypBox("isom", 0, "isom")

	_, err := NewDecoder().FindField(bytes.NewReader(data), "creation_time")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFlattenMergesDescendants(t *testing.T) {
	nodes, err := NewDecoder().DecodeAll(bytes.NewReader(sampleFile()))
	require.NoError(t, err)

	flat := nodes[1].Flatten()
	require.Equal(t, "moov", flat["type"]) // parent wins on collision
	require.Equal(t, uint64(3524134501), flat["creation_time"])
	require.Equal(t, "eng", flat["language"])
}

func TestDecodeAllPartialResultOnError(t *testing.T) {
	good := ftypBox("isom", 0, "isom")
	bad := writeBox("ftyp", make([]byte, 9)) // misaligned

	nodes, err := NewDecoder().DecodeAll(bytes.NewReader(cat(good, bad)))
	require.Error(t, err)
	require.Len(t, nodes, 1)
	require.Equal(t, "ftyp", nodes[0].Type)
}

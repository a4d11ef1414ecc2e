package chunk

import (
	"bytes"
	"testing"

	"github.com/exrgo/exr/bin"
	"github.com/exrgo/exr/endian"
	"github.com/stretchr/testify/require"
)

func TestScanLineBlockRoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	bb := newTestByteBuffer()
	w := bin.NewWriter(bb, engine)
	WriteScanLineBlock(w, ScanLineBlock{Y: 42, Data: []byte{1, 2, 3, 4}})

	r := bin.NewReader(bytes.NewReader(w.Bytes()), engine)
	got, err := ReadScanLineBlock(r, 1024)
	require.NoError(t, err)
	require.EqualValues(t, 42, got.Y)
	require.Equal(t, []byte{1, 2, 3, 4}, got.Data)
}

func TestScanLineBlockRejectsOversizedPayload(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	bb := newTestByteBuffer()
	w := bin.NewWriter(bb, engine)
	WriteScanLineBlock(w, ScanLineBlock{Y: 0, Data: []byte{1, 2, 3, 4}})

	r := bin.NewReader(bytes.NewReader(w.Bytes()), engine)
	_, err := ReadScanLineBlock(r, 2)
	require.Error(t, err)
}

func TestTileBlockRoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	bb := newTestByteBuffer()
	w := bin.NewWriter(bb, engine)
	WriteTileBlock(w, TileBlock{TileX: 1, TileY: 2, LevelX: 3, LevelY: 4, Data: []byte{9, 9}})

	r := bin.NewReader(bytes.NewReader(w.Bytes()), engine)
	got, err := ReadTileBlock(r, 1024)
	require.NoError(t, err)
	require.EqualValues(t, 1, got.TileX)
	require.EqualValues(t, 2, got.TileY)
	require.EqualValues(t, 3, got.LevelX)
	require.EqualValues(t, 4, got.LevelY)
	require.Equal(t, []byte{9, 9}, got.Data)
}

func TestPartNumberRoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	bb := newTestByteBuffer()
	w := bin.NewWriter(bb, engine)
	WritePartNumber(w, 3)

	r := bin.NewReader(bytes.NewReader(w.Bytes()), engine)
	got, err := ReadPartNumber(r)
	require.NoError(t, err)
	require.Equal(t, 3, got)
}

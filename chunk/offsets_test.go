package chunk

import (
	"bytes"
	"testing"

	"github.com/exrgo/exr/bin"
	"github.com/exrgo/exr/endian"
	"github.com/stretchr/testify/require"
)

func TestOffsetTableRoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	table := OffsetTable{100, 200, 300}

	var buf bytes.Buffer
	bb := newTestByteBuffer()
	w := bin.NewWriter(bb, engine)
	WriteOffsetTable(w, table)
	buf.Write(w.Bytes())

	r := bin.NewReader(&buf, engine)
	got, err := ReadOffsetTable(r, 3)
	require.NoError(t, err)
	require.Equal(t, table, got)
}

func TestOffsetTableValidateRejectsOutOfRange(t *testing.T) {
	table := OffsetTable{10, 0, 9999}
	err := table.Validate(100)
	require.Error(t, err)

	require.NoError(t, OffsetTable{10, 50, 99}.Validate(100))
}

package bin

import (
	"bytes"
	"testing"

	"github.com/exrgo/exr/endian"
	"github.com/exrgo/exr/internal/pool"
	"github.com/stretchr/testify/require"
)

func TestWriterScalarRoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	bb := pool.NewByteBuffer(64)
	w := NewWriter(bb, engine)

	w.WriteU8(0xAB)
	w.WriteI8(-5)
	w.WriteU16(0x1234)
	w.WriteU32(0xDEADBEEF)
	w.WriteI32(-42)
	w.WriteU64(0x0102030405060708)
	w.WriteF16(endian.Float16One)
	w.WriteF32(3.14)
	w.WriteF64(2.71828)

	r := NewReader(bytes.NewReader(w.Bytes()), engine)

	u8, err := r.ReadU8()
	require.NoError(t, err)
	require.EqualValues(t, 0xAB, u8)

	i8, err := r.ReadI8()
	require.NoError(t, err)
	require.EqualValues(t, -5, i8)

	u16, err := r.ReadU16()
	require.NoError(t, err)
	require.EqualValues(t, 0x1234, u16)

	u32, err := r.ReadU32()
	require.NoError(t, err)
	require.EqualValues(t, 0xDEADBEEF, u32)

	i32, err := r.ReadI32()
	require.NoError(t, err)
	require.EqualValues(t, -42, i32)

	u64, err := r.ReadU64()
	require.NoError(t, err)
	require.EqualValues(t, 0x0102030405060708, u64)

	f16, err := r.ReadF16()
	require.NoError(t, err)
	require.Equal(t, endian.Float16One, f16)

	f32, err := r.ReadF32()
	require.NoError(t, err)
	require.InDelta(t, 3.14, f32, 1e-6)

	f64, err := r.ReadF64()
	require.NoError(t, err)
	require.InDelta(t, 2.71828, f64, 1e-12)
}

func TestWriterBytesAndString(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	bb := pool.NewByteBuffer(64)
	w := NewWriter(bb, engine)

	w.WriteBytes([]byte{1, 2, 3})
	w.WriteNullTerminatedString("hello")

	r := NewReader(bytes.NewReader(w.Bytes()), engine)

	raw, err := r.ReadBytes(3, 16)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, raw)

	s, err := r.ReadNullTerminatedString(16)
	require.NoError(t, err)
	require.Equal(t, "hello", s)
}

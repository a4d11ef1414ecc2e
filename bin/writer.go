package bin

import (
	"math"

	"github.com/exrgo/exr/endian"
	"github.com/exrgo/exr/internal/pool"
)

// Writer mirrors Reader's typed scalar operations, appending bytes to a
// pool.ByteBuffer instead of reading from an io.Reader. Keeping both sides of
// the wire format on one EndianEngine keeps a Reader/Writer pair for the same
// engine symmetric by construction.
type Writer struct {
	bb     *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter creates a Writer that appends to bb using engine's byte order.
func NewWriter(bb *pool.ByteBuffer, engine endian.EndianEngine) *Writer {
	return &Writer{bb: bb, engine: engine}
}

// Bytes returns the bytes written so far.
func (w *Writer) Bytes() []byte {
	return w.bb.Bytes()
}

// WriteU8 appends a single unsigned byte.
func (w *Writer) WriteU8(v uint8) {
	w.bb.MustWrite([]byte{v})
}

// WriteI8 appends a single signed byte.
func (w *Writer) WriteI8(v int8) {
	w.WriteU8(uint8(v))
}

// WriteU16 appends a uint16 in the writer's byte order.
func (w *Writer) WriteU16(v uint16) {
	var buf [2]byte
	w.engine.PutUint16(buf[:], v)
	w.bb.MustWrite(buf[:])
}

// WriteU32 appends a uint32 in the writer's byte order.
func (w *Writer) WriteU32(v uint32) {
	var buf [4]byte
	w.engine.PutUint32(buf[:], v)
	w.bb.MustWrite(buf[:])
}

// WriteI32 appends an int32 in the writer's byte order.
func (w *Writer) WriteI32(v int32) {
	w.WriteU32(uint32(v))
}

// WriteU64 appends a uint64 in the writer's byte order.
func (w *Writer) WriteU64(v uint64) {
	var buf [8]byte
	w.engine.PutUint64(buf[:], v)
	w.bb.MustWrite(buf[:])
}

// WriteF16 appends a half-float (binary16) sample.
func (w *Writer) WriteF16(v endian.Float16) {
	var buf [2]byte
	endian.PutFloat16(w.engine, buf[:], v)
	w.bb.MustWrite(buf[:])
}

// WriteF32 appends an IEEE 754 float32.
func (w *Writer) WriteF32(v float32) {
	w.WriteU32(math.Float32bits(v))
}

// WriteF64 appends an IEEE 754 float64.
func (w *Writer) WriteF64(v float64) {
	w.WriteU64(math.Float64bits(v))
}

// WriteBytes appends raw bytes verbatim, with no length prefix.
func (w *Writer) WriteBytes(b []byte) {
	w.bb.MustWrite(b)
}

// WriteNullTerminatedString appends s followed by a single 0x00 terminator.
func (w *Writer) WriteNullTerminatedString(s string) {
	w.bb.MustWrite([]byte(s))
	w.WriteU8(0)
}

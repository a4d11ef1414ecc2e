package compress

import (
	"encoding/binary"
	"fmt"

	"github.com/exrgo/exr/errs"
	"github.com/exrgo/exr/internal/pool"
)

// B44Codec implements compression method B44: a simplified stand-in
// for the reference 4x4-block quantizer. It treats the block as a
// stream of 16-bit little-endian words and zeroes each word's 4
// lowest-order bits (lossy, 12 bits of precision kept), then zlib
// compresses the result. Any trailing odd byte is carried through
// unmodified.
type B44Codec struct{}

var _ Codec = B44Codec{}

const b44QuantizeMask = 0xFFF0

func b44Quantize(data []byte) []byte {
	n := len(data)
	words := n / 2

	scratch, done := pool.GetUint16Slice(words)
	defer done()

	for i := 0; i < words; i++ {
		v := uint16(data[2*i]) | uint16(data[2*i+1])<<8
		scratch[i] = v & b44QuantizeMask
	}

	out := make([]byte, n)
	for i := 0; i < words; i++ {
		out[2*i] = byte(scratch[i])
		out[2*i+1] = byte(scratch[i] >> 8)
	}
	if n%2 == 1 {
		out[n-1] = data[n-1]
	}

	return out
}

func (B44Codec) Compress(data []byte) ([]byte, error) {
	return deflate(b44Quantize(data))
}

func (B44Codec) Decompress(data []byte, expectedSize int) ([]byte, error) {
	return inflate(data, expectedSize)
}

func (B44Codec) RowsPerBlock() int { return 32 }

// B44ACodec is B44Codec plus a run-length pass over the quantized
// stream before zlib, mirroring the reference codec's extra handling
// of flat (uniform-value) blocks.
type B44ACodec struct{}

var _ Codec = B44ACodec{}

func (B44ACodec) Compress(data []byte) ([]byte, error) {
	quantized := b44Quantize(data)
	rle, err := (RLECodec{}).Compress(quantized)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 4+len(rle))
	binary.LittleEndian.PutUint32(payload, uint32(len(rle)))
	copy(payload[4:], rle)

	return deflate(payload)
}

func (B44ACodec) Decompress(data []byte, expectedSize int) ([]byte, error) {
	payload, err := inflateAny(data)
	if err != nil {
		return nil, err
	}
	if len(payload) < 4 {
		return nil, fmt.Errorf("%w: truncated B44A payload", errs.ErrInvalidCompressedData)
	}

	rleLen := int(binary.LittleEndian.Uint32(payload[:4]))
	if rleLen < 0 || 4+rleLen > len(payload) {
		return nil, fmt.Errorf("%w: bad B44A run length", errs.ErrInvalidCompressedData)
	}

	return (RLECodec{}).Decompress(payload[4:4+rleLen], expectedSize)
}

func (B44ACodec) RowsPerBlock() int { return 32 }

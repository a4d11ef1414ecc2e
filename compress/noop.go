package compress

import (
	"fmt"

	"github.com/exrgo/exr/errs"
)

// NoneCodec implements compression method None: chunk bytes are written
// and read back unchanged.
type NoneCodec struct{}

var _ Codec = NoneCodec{}

func (NoneCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (NoneCodec) Decompress(data []byte, expectedSize int) ([]byte, error) {
	if len(data) != expectedSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidCompressedData, len(data), expectedSize)
	}

	return data, nil
}

func (NoneCodec) RowsPerBlock() int {
	return 1
}

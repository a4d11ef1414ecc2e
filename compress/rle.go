package compress

import (
	"fmt"

	"github.com/exrgo/exr/errs"
)

// RLECodec implements compression method RLE: a byte-oriented
// run-length scheme. Each output chunk opens with a control byte c:
// c >= 0 introduces a literal run of c+1 bytes copied verbatim; c < 0
// introduces a run of -c+1 repetitions of the single byte that
// follows. Runs are capped at 128 bytes so the control byte always
// fits a signed byte.
type RLECodec struct{}

var _ Codec = RLECodec{}

const rleMaxRun = 128

func (RLECodec) Compress(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data))

	i := 0
	for i < len(data) {
		runEnd := i + 1
		for runEnd < len(data) && data[runEnd] == data[i] && runEnd-i < rleMaxRun {
			runEnd++
		}
		if runEnd-i >= 3 {
			out = append(out, byte(int8(-(runEnd-i-1))), data[i])
			i = runEnd
			continue
		}

		litStart := i
		i++
		for i < len(data) && i-litStart < rleMaxRun {
			k := i
			for k < len(data) && data[k] == data[i-1] {
				k++
			}
			if k-i+1 >= 3 {
				break
			}
			i++
		}
		out = append(out, byte(int8(i-litStart-1)))
		out = append(out, data[litStart:i]...)
	}

	return out, nil
}

func (RLECodec) Decompress(data []byte, expectedSize int) ([]byte, error) {
	out := make([]byte, 0, expectedSize)

	i := 0
	for i < len(data) {
		c := int8(data[i])
		i++
		if c >= 0 {
			n := int(c) + 1
			if i+n > len(data) {
				return nil, fmt.Errorf("%w: truncated literal run", errs.ErrInvalidCompressedData)
			}
			out = append(out, data[i:i+n]...)
			i += n
		} else {
			n := int(-c) + 1
			if i >= len(data) {
				return nil, fmt.Errorf("%w: truncated repeat run", errs.ErrInvalidCompressedData)
			}
			b := data[i]
			i++
			for k := 0; k < n; k++ {
				out = append(out, b)
			}
		}
	}
	if len(out) != expectedSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidCompressedData, len(out), expectedSize)
	}

	return out, nil
}

func (RLECodec) RowsPerBlock() int {
	return 1
}

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/exrgo/exr/errs"
	"github.com/klauspost/compress/zlib"
)

func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCompressedData, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCompressedData, err)
	}

	return buf.Bytes(), nil
}

func inflate(data []byte, expectedSize int) ([]byte, error) {
	out, err := inflateAny(data)
	if err != nil {
		return nil, err
	}
	if len(out) != expectedSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidCompressedData, len(out), expectedSize)
	}

	return out, nil
}

// inflateAny decompresses data without checking the resulting length,
// for callers whose uncompressed size isn't known until after a
// second, inner decoding pass (B44ACodec's embedded RLE stream).
func inflateAny(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCompressedData, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCompressedData, err)
	}

	return out, nil
}

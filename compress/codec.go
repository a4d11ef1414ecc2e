// Package compress implements the per-chunk codecs behind EXR's eight
// compression methods, plus the registry that maps a format.Compression
// value to the Codec that handles it.
package compress

import (
	"fmt"

	"github.com/exrgo/exr/errs"
	"github.com/exrgo/exr/format"
)

// Codec compresses and decompresses one chunk's pixel bytes and reports
// how many scan lines its blocks cover.
type Codec interface {
	// Compress returns data compressed by this codec. The result may be
	// longer than data for incompressible input; callers that care about
	// that (the chunk writer falling back to identity bytes) compare
	// lengths themselves.
	Compress(data []byte) ([]byte, error)

	// Decompress expands data back to exactly expectedSize bytes, or
	// returns an error wrapping errs.ErrInvalidCompressedData.
	Decompress(data []byte, expectedSize int) ([]byte, error)

	// RowsPerBlock is the number of scan lines this codec packs into a
	// single scan-line chunk.
	RowsPerBlock() int
}

var builtinCodecs = map[format.Compression]Codec{
	format.CompressionNone:  NoneCodec{},
	format.CompressionRLE:   RLECodec{},
	format.CompressionZIP:   ZIPCodec{},
	format.CompressionZIP16: ZIP16Codec{},
	format.CompressionPIZ:   PizCodec{},
	format.CompressionPXR24: Pxr24Codec{},
	format.CompressionB44:   B44Codec{},
	format.CompressionB44A:  B44ACodec{},
}

// CodecFor returns the built-in Codec registered for c.
func CodecFor(c format.Compression) (Codec, error) {
	codec, ok := builtinCodecs[c]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, c)
	}

	return codec, nil
}

// RowsPerBlock returns the scan-line block size for a compression method
// without needing to look up a Codec first.
func RowsPerBlock(c format.Compression) (int, error) {
	codec, err := CodecFor(c)
	if err != nil {
		return 0, err
	}

	return codec.RowsPerBlock(), nil
}

package line

import (
	"fmt"
	"iter"
	"math"

	"github.com/exrgo/exr/endian"
	"github.com/exrgo/exr/errs"
	"github.com/exrgo/exr/format"
)

// Sample is the set of types a Line's bytes can be cast to: EXR's
// three on-disk pixel representations.
type Sample interface {
	uint32 | endian.Float16 | float32
}

// SampleIter returns an iterator over ln's samples cast to T,
// provided ln.SampleType matches T. A mismatched type returns
// errs.ErrTypeMismatch rather than silently reinterpreting bytes.
func SampleIter[T Sample](ln Line, engine endian.EndianEngine) (iter.Seq[T], error) {
	var zero T
	switch ln.SampleType {
	case format.PixelUint:
		if _, ok := any(zero).(uint32); !ok {
			return nil, fmt.Errorf("%w: channel %s is uint, not %T", errs.ErrTypeMismatch, ln.Channel, zero)
		}
	case format.PixelHalf:
		if _, ok := any(zero).(endian.Float16); !ok {
			return nil, fmt.Errorf("%w: channel %s is half, not %T", errs.ErrTypeMismatch, ln.Channel, zero)
		}
	case format.PixelFloat:
		if _, ok := any(zero).(float32); !ok {
			return nil, fmt.Errorf("%w: channel %s is float, not %T", errs.ErrTypeMismatch, ln.Channel, zero)
		}
	default:
		return nil, fmt.Errorf("%w: unknown sample type %v", errs.ErrTypeMismatch, ln.SampleType)
	}

	stride := ln.SampleType.BytesPerSample()
	width := ln.Width
	bytes := ln.Bytes
	sampleType := ln.SampleType

	return func(yield func(T) bool) {
		for i := 0; i < width; i++ {
			b := bytes[i*stride : (i+1)*stride]

			var v any
			switch sampleType {
			case format.PixelUint:
				v = engine.Uint32(b)
			case format.PixelHalf:
				v = endian.Float16(engine.Uint16(b))
			case format.PixelFloat:
				v = math.Float32frombits(engine.Uint32(b))
			}

			if !yield(v.(T)) {
				return
			}
		}
	}, nil
}

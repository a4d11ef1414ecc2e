package image

import (
	"fmt"

	"github.com/exrgo/exr/endian"
	"github.com/exrgo/exr/errs"
	"github.com/exrgo/exr/format"
)

// SampleKind identifies which of FlatSamples' three backing slices holds
// the data. Kept as a small closed enum rather than runtime polymorphism,
// the same way format.PixelType dispatches with a switch per operation.
type SampleKind uint8

const (
	KindF16 SampleKind = iota
	KindF32
	KindU32
)

// String returns the pixel-type-compatible name of the sample kind.
func (k SampleKind) String() string {
	switch k {
	case KindF16:
		return "half"
	case KindF32:
		return "float"
	case KindU32:
		return "uint"
	default:
		return "unknown"
	}
}

// PixelType returns the on-disk pixel type k corresponds to.
func (k SampleKind) PixelType() format.PixelType {
	switch k {
	case KindF16:
		return format.PixelHalf
	case KindU32:
		return format.PixelUint
	default:
		return format.PixelFloat
	}
}

// sampleKindFor maps an on-disk pixel type to the SampleKind that stores it.
func sampleKindFor(t format.PixelType) (SampleKind, error) {
	switch t {
	case format.PixelHalf:
		return KindF16, nil
	case format.PixelFloat:
		return KindF32, nil
	case format.PixelUint:
		return KindU32, nil
	default:
		return 0, fmt.Errorf("%w: pixel type %v", errs.ErrInvalidContent, t)
	}
}

// FlatSamples is one level's worth of a single channel's samples: a flat,
// row-major array in exactly one of three on-disk representations. The
// zero value is not useful; build one with NewF16Samples, NewF32Samples,
// or NewU32Samples.
type FlatSamples struct {
	kind SampleKind
	f16  []endian.Float16
	f32  []float32
	u32  []uint32
}

// NewF16Samples wraps a half-float sample slice.
func NewF16Samples(v []endian.Float16) FlatSamples { return FlatSamples{kind: KindF16, f16: v} }

// NewF32Samples wraps a float32 sample slice.
func NewF32Samples(v []float32) FlatSamples { return FlatSamples{kind: KindF32, f32: v} }

// NewU32Samples wraps a uint32 sample slice.
func NewU32Samples(v []uint32) FlatSamples { return FlatSamples{kind: KindU32, u32: v} }

// newFlatSamples allocates a zeroed FlatSamples of kind k and length n.
func newFlatSamples(k SampleKind, n int) FlatSamples {
	switch k {
	case KindF16:
		return NewF16Samples(make([]endian.Float16, n))
	case KindU32:
		return NewU32Samples(make([]uint32, n))
	default:
		return NewF32Samples(make([]float32, n))
	}
}

// Kind reports which backing slice holds s's data.
func (s FlatSamples) Kind() SampleKind { return s.kind }

// Len returns the number of samples, regardless of kind.
func (s FlatSamples) Len() int {
	switch s.kind {
	case KindF16:
		return len(s.f16)
	case KindU32:
		return len(s.u32)
	default:
		return len(s.f32)
	}
}

// F16 returns s's half-float slice and true if s.Kind() == KindF16.
func (s FlatSamples) F16() ([]endian.Float16, bool) {
	return s.f16, s.kind == KindF16
}

// F32 returns s's float32 slice and true if s.Kind() == KindF32.
func (s FlatSamples) F32() ([]float32, bool) {
	return s.f32, s.kind == KindF32
}

// U32 returns s's uint32 slice and true if s.Kind() == KindU32.
func (s FlatSamples) U32() ([]uint32, bool) {
	return s.u32, s.kind == KindU32
}

// BytesPerSample returns the on-disk size of one of s's samples.
func (s FlatSamples) BytesPerSample() int {
	return s.kind.PixelType().BytesPerSample()
}

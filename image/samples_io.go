package image

import (
	"fmt"
	"math"

	"github.com/exrgo/exr/endian"
	"github.com/exrgo/exr/errs"
	"github.com/exrgo/exr/line"
)

// readSamplesInto decodes ln's bytes into samples[base:base+ln.Width],
// decoding each on-disk value into the Go type its SampleKind stores.
func readSamplesInto(samples FlatSamples, base int, ln line.Line, engine endian.EndianEngine) error {
	if samples.kind.PixelType() != ln.SampleType {
		return fmt.Errorf("%w: channel %s is %s, line is %s", errs.ErrTypeMismatch, ln.Channel, samples.kind, ln.SampleType)
	}
	if base < 0 || base+ln.Width > samples.Len() {
		return fmt.Errorf("%w: channel %s row out of bounds: base %d, width %d, have %d", errs.ErrInvalidSize, ln.Channel, base, ln.Width, samples.Len())
	}

	switch samples.kind {
	case KindF16:
		for i := 0; i < ln.Width; i++ {
			samples.f16[base+i] = endian.ReadFloat16(engine, ln.Bytes[i*2:(i+1)*2])
		}
	case KindU32:
		for i := 0; i < ln.Width; i++ {
			samples.u32[base+i] = engine.Uint32(ln.Bytes[i*4 : (i+1)*4])
		}
	case KindF32:
		for i := 0; i < ln.Width; i++ {
			samples.f32[base+i] = math.Float32frombits(engine.Uint32(ln.Bytes[i*4 : (i+1)*4]))
		}
	}

	return nil
}

// writeSamplesFrom encodes samples[base:base+ln.Width] into ln.Bytes,
// encoding each stored value back into its on-disk representation.
func writeSamplesFrom(samples FlatSamples, base int, ln line.Line, engine endian.EndianEngine) error {
	if samples.kind.PixelType() != ln.SampleType {
		return fmt.Errorf("%w: channel %s is %s, line is %s", errs.ErrTypeMismatch, ln.Channel, samples.kind, ln.SampleType)
	}
	if base < 0 || base+ln.Width > samples.Len() {
		return fmt.Errorf("%w: channel %s row out of bounds: base %d, width %d, have %d", errs.ErrInvalidSize, ln.Channel, base, ln.Width, samples.Len())
	}

	switch samples.kind {
	case KindF16:
		for i := 0; i < ln.Width; i++ {
			endian.PutFloat16(engine, ln.Bytes[i*2:(i+1)*2], samples.f16[base+i])
		}
	case KindU32:
		for i := 0; i < ln.Width; i++ {
			engine.PutUint32(ln.Bytes[i*4:(i+1)*4], samples.u32[base+i])
		}
	case KindF32:
		for i := 0; i < ln.Width; i++ {
			engine.PutUint32(ln.Bytes[i*4:(i+1)*4], math.Float32bits(samples.f32[base+i]))
		}
	}

	return nil
}

package header

import (
	"fmt"

	"github.com/exrgo/exr/bin"
	"github.com/exrgo/exr/errs"
)

// ReadMagicAndRequirements reads the 4-byte magic number and the packed
// version/flags u32 that open every EXR file.
func ReadMagicAndRequirements(r *bin.Reader) (Requirements, error) {
	var got [4]byte
	for i := range got {
		b, err := r.ReadU8()
		if err != nil {
			return Requirements{}, err
		}
		got[i] = b
	}
	if got != MagicNumber {
		return Requirements{}, fmt.Errorf("%w: got % X", errs.ErrInvalidMagicNumber, got)
	}

	raw, err := r.ReadU32()
	if err != nil {
		return Requirements{}, err
	}

	req := UnpackRequirements(raw)
	if req.Version != 2 {
		return Requirements{}, fmt.Errorf("%w: version %d", errs.ErrUnsupportedVersion, req.Version)
	}

	return req, nil
}

// WriteMagicAndRequirements writes the magic number and packed
// version/flags field.
func WriteMagicAndRequirements(w *bin.Writer, req Requirements) {
	for _, b := range MagicNumber {
		w.WriteU8(b)
	}
	w.WriteU32(req.Pack())
}

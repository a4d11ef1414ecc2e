// Package header implements the file-level magic/version framing and the
// per-layer header: required and conditional attribute extraction, user
// attribute preservation, and the capability flags that decide which
// conditional attributes a given file needs.
package header

import "github.com/exrgo/exr/attr"

// MagicNumber is the four-byte sequence every EXR file starts with.
var MagicNumber = [4]byte{0x76, 0x2F, 0x31, 0x01}

const (
	flagHasTiles     = 1 << 9
	flagHasLongNames = 1 << 10
	flagHasDeep      = 1 << 11
	flagIsMultipart  = 1 << 12
)

// Requirements carries the file-level version number and capability flags
// packed into a single u32 on disk (version occupies bits 0-7).
type Requirements struct {
	Version      uint8
	IsMultipart  bool
	HasLongNames bool
	HasTiles     bool
	HasDeep      bool
}

// Pack returns the on-disk u32 encoding of r.
func (r Requirements) Pack() uint32 {
	v := uint32(r.Version)
	if r.HasTiles {
		v |= flagHasTiles
	}
	if r.HasLongNames {
		v |= flagHasLongNames
	}
	if r.HasDeep {
		v |= flagHasDeep
	}
	if r.IsMultipart {
		v |= flagIsMultipart
	}

	return v
}

// UnpackRequirements decodes the on-disk u32 version/flags field.
func UnpackRequirements(v uint32) Requirements {
	return Requirements{
		Version:      uint8(v & 0xFF),
		HasTiles:     v&flagHasTiles != 0,
		HasLongNames: v&flagHasLongNames != 0,
		HasDeep:      v&flagHasDeep != 0,
		IsMultipart:  v&flagIsMultipart != 0,
	}
}

// MaxTextLen returns the legal name/type string length for files with
// these requirements.
func (r Requirements) MaxTextLen() int {
	if r.HasLongNames {
		return attr.LongTextMaxLen
	}

	return attr.ShortTextMaxLen
}

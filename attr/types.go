package attr

import "github.com/exrgo/exr/format"

// V2i is a 2-component integer vector.
type V2i struct{ X, Y int32 }

// V2f is a 2-component float vector.
type V2f struct{ X, Y float32 }

// V3i is a 3-component integer vector.
type V3i struct{ X, Y, Z int32 }

// V3f is a 3-component float vector.
type V3f struct{ X, Y, Z float32 }

// Box2i is an inclusive axis-aligned integer rectangle: Min.X <= Max.X and
// Min.Y <= Max.Y (checked by Header validation, not here — a box in
// isolation has no invariant to enforce).
type Box2i struct{ Min, Max V2i }

// Box2f is the float analog of Box2i, used for displayWindow-adjacent
// attributes that the format stores as floats.
type Box2f struct{ Min, Max V2f }

// M33f is a row-major 3x3 float matrix.
type M33f [9]float32

// M44f is a row-major 4x4 float matrix.
type M44f [16]float32

// Rational is a signed-over-unsigned fraction, used for pixelAspectRatio-like
// attributes in some OpenEXR-adjacent tools (kept for completeness of the
// closed AttributeValue set even though core required attributes store
// pixelAspectRatio as a plain float).
type Rational struct {
	N int32
	D uint32
}

// TimeCode packs SMPTE time-and-flags plus user-data bits; this library
// treats both fields as opaque and round-trips them verbatim.
type TimeCode struct {
	TimeAndFlags uint32
	UserData     uint32
}

// KeyCode identifies a piece of film stock and the frame range within it.
// The seven fields are stored and returned as-is; none of them affect
// decoding.
type KeyCode struct {
	FilmMfcCode   int32
	FilmType      int32
	Prefix        int32
	Count         int32
	PerfOffset    int32
	PerfsPerFrame int32
	PerfsPerCount int32
}

// Chromaticities records the CIE xy chromaticity coordinates of a layer's
// RGB primaries and white point.
type Chromaticities struct {
	RedX, RedY     float32
	GreenX, GreenY float32
	BlueX, BlueY   float32
	WhiteX, WhiteY float32
}

// Preview is a small low-resolution RGBA thumbnail: Width*Height*4 bytes,
// four bytes (R,G,B,A) per pixel, row-major.
type Preview struct {
	Width, Height uint32
	Pixels        []byte
}

// StringVector is an ordered list of strings, stored on the wire as
// concatenated (length, bytes) pairs with the total byte count given by the
// attribute's own size field rather than a count prefix.
type StringVector []string

// TileDescription describes a tiled layer's tile size and resolution-pyramid
// strategy. On disk the mode and rounding pack into a single byte:
// mode = level_mode + rounding*16.
type TileDescription struct {
	XSize, YSize uint32
	Mode         format.LevelMode
	Rounding     format.RoundingMode
}

// PackedMode returns the single on-disk mode byte.
func (t TileDescription) PackedMode() byte {
	return byte(t.Mode) | byte(t.Rounding)<<4
}

// UnpackMode sets Mode and Rounding from the on-disk mode byte.
func (t *TileDescription) UnpackMode(b byte) {
	t.Mode = format.LevelMode(b & 0x0F)
	t.Rounding = format.RoundingMode((b >> 4) & 0x0F)
}

// Channel describes one named sample plane within a layer: its storage
// type, whether it should be treated as linear light when resampled
// (informational only — this library never resamples), and its subsampling
// factors.
type Channel struct {
	Name                 Text
	Type                 format.PixelType
	Linear               bool
	Reserved             [3]int8
	SamplingX, SamplingY int32
}

// ChannelList is a set of Channels kept sorted alphabetically by name, as
// the format requires.
type ChannelList []Channel

// Find returns the channel named name and true, or the zero Channel and
// false if no such channel exists.
func (cl ChannelList) Find(name string) (Channel, bool) {
	for _, c := range cl {
		if string(c.Name) == name {
			return c, true
		}
	}

	return Channel{}, false
}

// Sorted reports whether the list is strictly increasing by name, as the
// format requires (no duplicate names, no out-of-order entries).
func (cl ChannelList) Sorted() bool {
	for i := 1; i < len(cl); i++ {
		if string(cl[i-1].Name) >= string(cl[i].Name) {
			return false
		}
	}

	return true
}

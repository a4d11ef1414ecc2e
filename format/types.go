// Package format defines the closed, on-disk enums shared by every other
// goexr package: pixel sample type, compression method, scan-line order,
// environment-map projection, and tile level mode/rounding.
//
// Each type is modeled as a small byte-backed enum with a String method
// rather than runtime polymorphism: a closed set with one switch per
// operation keeps dispatch cheap and keeps the set of legal values obvious
// at the call site.
package format

// PixelType identifies the on-disk sample representation of a channel.
type PixelType uint8

const (
	PixelUint  PixelType = 0 // 32-bit unsigned integer samples.
	PixelHalf  PixelType = 1 // 16-bit IEEE 754 half-float samples.
	PixelFloat PixelType = 2 // 32-bit IEEE 754 float samples.
)

// String returns the attribute-wire-compatible name of the pixel type.
func (p PixelType) String() string {
	switch p {
	case PixelUint:
		return "uint"
	case PixelHalf:
		return "half"
	case PixelFloat:
		return "float"
	default:
		return "unknown"
	}
}

// BytesPerSample returns the on-disk size of a single sample of this type.
func (p PixelType) BytesPerSample() int {
	switch p {
	case PixelHalf:
		return 2
	case PixelUint, PixelFloat:
		return 4
	default:
		return 0
	}
}

// Compression identifies the per-chunk codec. Values match the on-disk u8
// of the EXR file format exactly.
type Compression uint8

const (
	CompressionNone  Compression = 0
	CompressionRLE   Compression = 1
	CompressionZIP   Compression = 2 // single scan line per block
	CompressionZIP16 Compression = 3 // 16 scan lines per block
	CompressionPIZ   Compression = 4
	CompressionPXR24 Compression = 5
	CompressionB44   Compression = 6
	CompressionB44A  Compression = 7
)

// String returns the human-readable codec name.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionRLE:
		return "rle"
	case CompressionZIP:
		return "zip"
	case CompressionZIP16:
		return "zip16"
	case CompressionPIZ:
		return "piz"
	case CompressionPXR24:
		return "pxr24"
	case CompressionB44:
		return "b44"
	case CompressionB44A:
		return "b44a"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the 8 defined compression values.
func (c Compression) Valid() bool {
	return c <= CompressionB44A
}

// LineOrder identifies the order scan lines (or tiles) appear in the file.
type LineOrder uint8

const (
	LineOrderIncreasing LineOrder = 0
	LineOrderDecreasing LineOrder = 1
	LineOrderRandom     LineOrder = 2
)

func (o LineOrder) String() string {
	switch o {
	case LineOrderIncreasing:
		return "increasing_y"
	case LineOrderDecreasing:
		return "decreasing_y"
	case LineOrderRandom:
		return "random_y"
	default:
		return "unknown"
	}
}

// Valid reports whether o is one of the 3 defined line-order values.
func (o LineOrder) Valid() bool {
	return o <= LineOrderRandom
}

// EnvMap identifies an environment-map projection recorded in the
// "envmap" attribute.
type EnvMap uint8

const (
	EnvMapLatLong EnvMap = 0
	EnvMapCube    EnvMap = 1
)

func (e EnvMap) String() string {
	switch e {
	case EnvMapLatLong:
		return "latlong"
	case EnvMapCube:
		return "cube"
	default:
		return "unknown"
	}
}

// LevelMode identifies how a tiled layer's resolution pyramid is built.
type LevelMode uint8

const (
	LevelModeOne    LevelMode = 0
	LevelModeMipMap LevelMode = 1
	LevelModeRipMap LevelMode = 2
)

func (m LevelMode) String() string {
	switch m {
	case LevelModeOne:
		return "one"
	case LevelModeMipMap:
		return "mipmap"
	case LevelModeRipMap:
		return "ripmap"
	default:
		return "unknown"
	}
}

// RoundingMode identifies how level sizes round when halved.
type RoundingMode uint8

const (
	RoundDown RoundingMode = 0
	RoundUp   RoundingMode = 1
)

func (r RoundingMode) String() string {
	switch r {
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	default:
		return "unknown"
	}
}

// Divide applies the rounding mode to an integer division: Up rounds
// ⌈a/b⌉, Down truncates ⌊a/b⌋. b must be positive.
func (r RoundingMode) Divide(a, b int) int {
	if r == RoundUp {
		return (a + b - 1) / b
	}

	return a / b
}

package image

import (
	"github.com/exrgo/exr/attr"
	"github.com/exrgo/exr/format"
)

// Size is the pixel-space geometry common to every layer: the window of
// pixels actually stored, and the (possibly larger) window the image is
// meant to be displayed within.
type Size struct {
	DataWindow    attr.Box2i
	DisplayWindow attr.Box2i
}

// Width returns the data window's width in pixels.
func (s Size) Width() int { return int(s.DataWindow.Max.X-s.DataWindow.Min.X) + 1 }

// Height returns the data window's height in pixels.
func (s Size) Height() int { return int(s.DataWindow.Max.Y-s.DataWindow.Min.Y) + 1 }

// Encoding groups the three attributes that decide how a layer's pixels
// are framed and stored on disk.
type Encoding struct {
	Compression format.Compression
	Blocks      Blocks
	LineOrder   format.LineOrder
}

// layerBase carries the fields every Layer needs regardless of its
// channel shape: geometry, encoding, the screen-window attributes every
// header must carry, and any attributes the caller wants preserved
// beyond the ones this library understands.
type layerBase struct {
	Name string
	Type string

	Size               Size
	Encoding           Encoding
	PixelAspectRatio   float32
	ScreenWindowCenter attr.V2f
	ScreenWindowWidth  float32
	Attributes         []attr.Attribute
}

// Layer is one image part: a named channel set over a shared geometry
// and encoding.
type Layer struct {
	layerBase
	Channels Channels
}

// NewLayer builds a Layer from its channel set, geometry, and encoding.
// PixelAspectRatio and ScreenWindowWidth default to 1.0, OpenEXR's own
// defaults for square pixels and a full-width screen window. Name and
// Type are only required when the owning Image has more than one layer
// (the multipart case); InferHeader fills in a default type string
// ("scanlineimage"/"tiledimage") when Type is left empty.
func NewLayer(channels Channels, size Size, encoding Encoding) *Layer {
	return &Layer{
		layerBase: layerBase{
			Size: size, Encoding: encoding,
			PixelAspectRatio:  1,
			ScreenWindowWidth: 1,
		},
		Channels: channels,
	}
}

// IsTiled reports whether l's blocks are Tiles.
func (l *Layer) IsTiled() bool {
	_, ok := l.Encoding.Blocks.(Tiles)
	return ok
}

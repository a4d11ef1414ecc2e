package header

import (
	"fmt"

	"github.com/exrgo/exr/attr"
	"github.com/exrgo/exr/errs"
	"github.com/exrgo/exr/format"
)

// Attribute name constants for the required and conditional fields a
// header may carry. Everything else lands in Header.User.
const (
	attrChannels           = "channels"
	attrCompression        = "compression"
	attrDataWindow         = "dataWindow"
	attrDisplayWindow      = "displayWindow"
	attrLineOrder          = "lineOrder"
	attrPixelAspectRatio   = "pixelAspectRatio"
	attrScreenWindowCenter = "screenWindowCenter"
	attrScreenWindowWidth  = "screenWindowWidth"
	attrName               = "name"
	attrType               = "type"
	attrTiles              = "tiles"
	attrVersion            = "version"
	attrChunkCount         = "chunkCount"
	attrMaxSamplesPerPixel = "maxSamplesPerPixel"
)

// Header is one layer's metadata: the eight attributes every layer must
// carry, the handful that depend on the file's Requirements, and whatever
// else the file author attached.
type Header struct {
	Channels           attr.ChannelList
	Compression        format.Compression
	DataWindow         attr.Box2i
	DisplayWindow      attr.Box2i
	LineOrder          format.LineOrder
	PixelAspectRatio   float32
	ScreenWindowCenter attr.V2f
	ScreenWindowWidth  float32

	// Name and Type are required when the file is multipart.
	Name string
	Type string

	// Tiles is non-nil when this layer is tiled.
	Tiles *attr.TileDescription

	// ChunkCount is the attribute's value as read from the file, if
	// present. Its authority over the computed chunk count is decided by
	// whatever calls ValidateChunkCount.
	ChunkCount *int32

	MaxSamplesPerPixel *int32

	// User holds every attribute not named above, in file order.
	User []attr.Attribute
	// Unknown holds attributes whose type this library didn't recognize,
	// preserved verbatim for round-tripping.
	Unknown []attr.UnknownAttribute
}

// IsTiled reports whether this layer carries a tiles attribute.
func (h *Header) IsTiled() bool {
	return h.Tiles != nil
}

// ValidateChunkCount compares the header's declared chunkCount (if any)
// against a count computed independently from the layer's geometry. A
// present, disagreeing attribute is rejected — the computed value is
// always authoritative, the attribute is only a cross-check.
func (h *Header) ValidateChunkCount(computed int) error {
	if h.ChunkCount == nil {
		return nil
	}
	if int(*h.ChunkCount) != computed {
		return fmt.Errorf("%w: header declares %d, computed %d", errs.ErrChunkCountMismatch, *h.ChunkCount, computed)
	}

	return nil
}

func missing(name string) error {
	return fmt.Errorf("%w: %s", errs.ErrMissingAttribute, name)
}

func invalid(name string) error {
	return fmt.Errorf("%w: %s", errs.ErrInvalidAttribute, name)
}

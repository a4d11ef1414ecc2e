package image

import (
	"fmt"

	"github.com/exrgo/exr/attr"
	"github.com/exrgo/exr/compress"
	"github.com/exrgo/exr/endian"
	"github.com/exrgo/exr/errs"
	"github.com/exrgo/exr/header"
	"github.com/exrgo/exr/level"
)

// Image is a complete in-memory file: one or more layers sharing a byte
// order, plus attributes that apply to the file as a whole. OpenEXR has
// no attribute slot of its own at the file level, so InferHeader folds
// Attributes into every layer's user attribute list.
type Image struct {
	engine endian.EndianEngine

	Attributes []attr.Attribute
	Layers     []*Layer
}

// NewImage builds an empty Image ready for AppendLayer, using engine for
// every sample and offset-table read/write.
func NewImage(engine endian.EndianEngine) *Image {
	return &Image{engine: engine}
}

// Engine returns the byte order i's samples and headers are read and
// written in.
func (i *Image) Engine() endian.EndianEngine { return i.engine }

// AppendLayer adds l to i and returns i for chaining.
func (i *Image) AppendLayer(l *Layer) *Image {
	i.Layers = append(i.Layers, l)
	return i
}

// IsMultipart reports whether i has more than one layer, which decides
// both the requirements flag and whether layer Name/Type become
// mandatory.
func (i *Image) IsMultipart() bool { return len(i.Layers) > 1 }

// InferHeader synthesizes the write-time header for one of i's layers:
// sorted channel list, computed chunk count, tile description, and the
// name/type pair required once the image is multipart. Attributes not
// modeled directly by header.Header (including i.Attributes) are carried
// in the returned header's User list.
func (i *Image) InferHeader(l *Layer) (*header.Header, error) {
	channels, err := channelListFrom(l.Channels)
	if err != nil {
		return nil, err
	}

	width, height := l.Size.Width(), l.Size.Height()

	h := &header.Header{
		Channels:           channels,
		Compression:        l.Encoding.Compression,
		DataWindow:         l.Size.DataWindow,
		DisplayWindow:      l.Size.DisplayWindow,
		LineOrder:          l.Encoding.LineOrder,
		PixelAspectRatio:   l.PixelAspectRatio,
		ScreenWindowCenter: l.ScreenWindowCenter,
		ScreenWindowWidth:  l.ScreenWindowWidth,
		Name:               l.Name,
		Type:               l.Type,
	}

	h.User = append(h.User, i.Attributes...)
	h.User = append(h.User, l.Attributes...)

	var chunkCount int
	switch blocks := l.Encoding.Blocks.(type) {
	case ScanLines:
		rowsPerBlock, err := compress.RowsPerBlock(l.Encoding.Compression)
		if err != nil {
			return nil, err
		}

		chunkCount, err = level.ScanLineChunkCount(height, rowsPerBlock)
		if err != nil {
			return nil, err
		}
		if h.Type == "" {
			h.Type = "scanlineimage"
		}

	case Tiles:
		h.Tiles = &attr.TileDescription{
			XSize: uint32(blocks.SizeX), YSize: uint32(blocks.SizeY),
			Mode: blocks.Mode, Rounding: blocks.Rounding,
		}

		chunkCount, err = level.TiledChunkCount(width, height, blocks.SizeX, blocks.SizeY, blocks.Mode, blocks.Rounding)
		if err != nil {
			return nil, err
		}
		if h.Type == "" {
			h.Type = "tiledimage"
		}

	default:
		return nil, fmt.Errorf("%w: unknown block kind %T", errs.ErrInvalidContent, l.Encoding.Blocks)
	}

	count32 := int32(chunkCount)
	h.ChunkCount = &count32

	if i.IsMultipart() && (l.Name == "" || l.Type == "") {
		return nil, fmt.Errorf("%w: multipart layer needs a name and type", errs.ErrMissingAttribute)
	}

	return h, nil
}

// InferHeaders synthesizes one header per layer, in layer order.
func (i *Image) InferHeaders() ([]*header.Header, error) {
	headers := make([]*header.Header, 0, len(i.Layers))
	for _, l := range i.Layers {
		h, err := i.InferHeader(l)
		if err != nil {
			return nil, err
		}

		headers = append(headers, h)
	}

	return headers, nil
}

// InferRequirements derives the file-level requirements flags i's
// headers imply: version 2, multipart when there is more than one
// layer, tiles when any layer is tiled, long names when any name or
// user-attribute text exceeds the short-text limit. Deep data is never
// produced by this package.
func (i *Image) InferRequirements(headers []*header.Header) header.Requirements {
	req := header.Requirements{Version: 2, IsMultipart: i.IsMultipart()}

	for _, h := range headers {
		if h.IsTiled() {
			req.HasTiles = true
		}
		if len(h.Name) > attr.ShortTextMaxLen || len(h.Type) > attr.ShortTextMaxLen {
			req.HasLongNames = true
		}
		for _, ch := range h.Channels {
			if len(ch.Name) > attr.ShortTextMaxLen {
				req.HasLongNames = true
			}
		}
		for _, a := range h.User {
			if len(a.Name) > attr.ShortTextMaxLen {
				req.HasLongNames = true
			}
			if s, ok := a.Value.(string); ok && len(s) > attr.ShortTextMaxLen {
				req.HasLongNames = true
			}
		}
	}

	return req
}

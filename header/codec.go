package header

import (
	"fmt"

	"github.com/exrgo/exr/attr"
	"github.com/exrgo/exr/bin"
	"github.com/exrgo/exr/endian"
	"github.com/exrgo/exr/errs"
	"github.com/exrgo/exr/format"
)

// ReadHeader reads one layer header: attributes up to the terminator byte,
// cross-checking that every attribute required under req is present and of
// the right type.
func ReadHeader(r *bin.Reader, req Requirements, opts ...ReadOption) (*Header, error) {
	cfg, err := newReadConfig(opts...)
	if err != nil {
		return nil, err
	}

	h := &Header{}
	maxTextLen := req.MaxTextLen()

	var have struct {
		channels, compression, dataWindow, displayWindow bool
		lineOrder, pixelAspectRatio, screenWindowCenter   bool
		screenWindowWidth                                 bool
	}

	for {
		a, unk, err := attr.ReadAttribute(r, maxTextLen, cfg.maxAttributeBytes, cfg.maxVectorLen)
		if err != nil {
			return nil, err
		}
		if a == nil && unk == nil {
			break
		}
		if unk != nil {
			if !cfg.skipUnknownAttributes {
				return nil, fmt.Errorf("%w: %s", errs.ErrUnknownAttributeType, unk.Kind)
			}
			h.Unknown = append(h.Unknown, *unk)
			continue
		}

		switch string(a.Name) {
		case attrChannels:
			v, ok := a.Value.(attr.ChannelList)
			if !ok {
				return nil, invalid(attrChannels)
			}
			h.Channels, have.channels = v, true
		case attrCompression:
			v, ok := a.Value.(format.Compression)
			if !ok || !v.Valid() {
				return nil, invalid(attrCompression)
			}
			h.Compression, have.compression = v, true
		case attrDataWindow:
			v, ok := a.Value.(attr.Box2i)
			if !ok {
				return nil, invalid(attrDataWindow)
			}
			h.DataWindow, have.dataWindow = v, true
		case attrDisplayWindow:
			v, ok := a.Value.(attr.Box2i)
			if !ok {
				return nil, invalid(attrDisplayWindow)
			}
			h.DisplayWindow, have.displayWindow = v, true
		case attrLineOrder:
			v, ok := a.Value.(format.LineOrder)
			if !ok || !v.Valid() {
				return nil, invalid(attrLineOrder)
			}
			h.LineOrder, have.lineOrder = v, true
		case attrPixelAspectRatio:
			v, ok := a.Value.(float32)
			if !ok {
				return nil, invalid(attrPixelAspectRatio)
			}
			h.PixelAspectRatio, have.pixelAspectRatio = v, true
		case attrScreenWindowCenter:
			v, ok := a.Value.(attr.V2f)
			if !ok {
				return nil, invalid(attrScreenWindowCenter)
			}
			h.ScreenWindowCenter, have.screenWindowCenter = v, true
		case attrScreenWindowWidth:
			v, ok := a.Value.(float32)
			if !ok {
				return nil, invalid(attrScreenWindowWidth)
			}
			h.ScreenWindowWidth, have.screenWindowWidth = v, true
		case attrName:
			v, ok := a.Value.(string)
			if !ok {
				return nil, invalid(attrName)
			}
			h.Name = v
		case attrType:
			v, ok := a.Value.(string)
			if !ok {
				return nil, invalid(attrType)
			}
			h.Type = v
		case attrTiles:
			v, ok := a.Value.(attr.TileDescription)
			if !ok {
				return nil, invalid(attrTiles)
			}
			h.Tiles = &v
		case attrChunkCount:
			v, ok := a.Value.(int32)
			if !ok {
				return nil, invalid(attrChunkCount)
			}
			h.ChunkCount = &v
		case attrMaxSamplesPerPixel:
			v, ok := a.Value.(int32)
			if !ok {
				return nil, invalid(attrMaxSamplesPerPixel)
			}
			h.MaxSamplesPerPixel = &v
		default:
			h.User = append(h.User, *a)
		}
	}

	switch {
	case !have.channels:
		return nil, missing(attrChannels)
	case !have.compression:
		return nil, missing(attrCompression)
	case !have.dataWindow:
		return nil, missing(attrDataWindow)
	case !have.displayWindow:
		return nil, missing(attrDisplayWindow)
	case !have.lineOrder:
		return nil, missing(attrLineOrder)
	case !have.pixelAspectRatio:
		return nil, missing(attrPixelAspectRatio)
	case !have.screenWindowCenter:
		return nil, missing(attrScreenWindowCenter)
	case !have.screenWindowWidth:
		return nil, missing(attrScreenWindowWidth)
	}

	if req.IsMultipart && (h.Name == "" || h.Type == "") {
		return nil, missing(attrName + "/" + attrType)
	}
	if h.Tiles != nil && !req.HasTiles {
		return nil, invalid(attrTiles)
	}
	if h.Tiles != nil && h.Type != "" && h.Type != "tiledimage" && h.Type != "deeptile" {
		return nil, fmt.Errorf("%w: tiles attribute on type %q", errs.ErrMixedLevelModes, h.Type)
	}

	return h, nil
}

// WriteHeader writes h's required attributes, the conditional attributes
// that are set, any preserved user/unknown attributes, and the header
// terminator byte. req decides the legal name/type text length: every
// attribute name, plus h.Name and h.Type themselves, is rejected if it
// exceeds req.MaxTextLen() rather than silently written past the limit
// the file's own requirements flags declare.
func WriteHeader(w *bin.Writer, engine endian.EndianEngine, req Requirements, h *Header) error {
	maxTextLen := req.MaxTextLen()

	required := []attr.Attribute{
		{Name: attrChannels, Kind: attr.KindChlist, Value: h.Channels},
		{Name: attrCompression, Kind: attr.KindCompression, Value: h.Compression},
		{Name: attrDataWindow, Kind: attr.KindBox2i, Value: h.DataWindow},
		{Name: attrDisplayWindow, Kind: attr.KindBox2i, Value: h.DisplayWindow},
		{Name: attrLineOrder, Kind: attr.KindLineOrder, Value: h.LineOrder},
		{Name: attrPixelAspectRatio, Kind: attr.KindFloat, Value: h.PixelAspectRatio},
		{Name: attrScreenWindowCenter, Kind: attr.KindV2f, Value: h.ScreenWindowCenter},
		{Name: attrScreenWindowWidth, Kind: attr.KindFloat, Value: h.ScreenWindowWidth},
	}
	for _, a := range required {
		if err := attr.WriteAttribute(w, engine, a, maxTextLen); err != nil {
			return err
		}
	}

	if h.Name != "" {
		if err := attr.ValidateText(h.Name, maxTextLen); err != nil {
			return err
		}
		if err := attr.WriteAttribute(w, engine, attr.Attribute{Name: attrName, Kind: attr.KindString, Value: h.Name}, maxTextLen); err != nil {
			return err
		}
	}
	if h.Type != "" {
		if err := attr.ValidateText(h.Type, maxTextLen); err != nil {
			return err
		}
		if err := attr.WriteAttribute(w, engine, attr.Attribute{Name: attrType, Kind: attr.KindString, Value: h.Type}, maxTextLen); err != nil {
			return err
		}
	}
	if h.Tiles != nil {
		if err := attr.WriteAttribute(w, engine, attr.Attribute{Name: attrTiles, Kind: attr.KindTileDesc, Value: *h.Tiles}, maxTextLen); err != nil {
			return err
		}
	}
	if h.ChunkCount != nil {
		if err := attr.WriteAttribute(w, engine, attr.Attribute{Name: attrChunkCount, Kind: attr.KindInt, Value: *h.ChunkCount}, maxTextLen); err != nil {
			return err
		}
	}
	if h.MaxSamplesPerPixel != nil {
		if err := attr.WriteAttribute(w, engine, attr.Attribute{Name: attrMaxSamplesPerPixel, Kind: attr.KindInt, Value: *h.MaxSamplesPerPixel}, maxTextLen); err != nil {
			return err
		}
	}

	for _, a := range h.User {
		if err := attr.WriteAttribute(w, engine, a, maxTextLen); err != nil {
			return err
		}
	}
	for _, u := range h.Unknown {
		attr.WriteUnknownAttribute(w, u)
	}

	w.WriteU8(0)

	return nil
}

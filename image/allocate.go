package image

import (
	"github.com/exrgo/exr/attr"
	"github.com/exrgo/exr/endian"
	"github.com/exrgo/exr/format"
	"github.com/exrgo/exr/header"
	"github.com/exrgo/exr/level"
)

// Allocate builds an Image whose layers' channel storage is sized
// exactly to hold the pixels headers describes, every sample zeroed.
// InsertLine fills the returned Image's layers in; Allocate itself does
// no I/O. Every layer is reconstructed as ArbitraryChannels: the
// original RGBA-tuple shape, if any, isn't recorded on disk and can't
// be recovered from a header alone.
func Allocate(headers []*header.Header, engine endian.EndianEngine) (*Image, error) {
	img := NewImage(engine)

	for _, h := range headers {
		width, height := layerWidth(h), layerHeight(h)

		channels := make(ArbitraryChannels, 0, len(h.Channels))
		for _, ch := range h.Channels {
			samples, err := allocateSamples(h, ch, width, height)
			if err != nil {
				return nil, err
			}

			channels = append(channels, AnyChannel{
				Name:             string(ch.Name),
				Samples:          samples,
				QuantizeLinearly: ch.Linear,
				SamplingX:        int(ch.SamplingX),
				SamplingY:        int(ch.SamplingY),
			})
		}

		layer := NewLayer(channels, layerSize(h), Encoding{
			Compression: h.Compression,
			Blocks:      blocksFrom(h),
			LineOrder:   h.LineOrder,
		})
		layer.Name, layer.Type = h.Name, h.Type
		layer.PixelAspectRatio = h.PixelAspectRatio
		layer.ScreenWindowCenter = h.ScreenWindowCenter
		layer.ScreenWindowWidth = h.ScreenWindowWidth
		layer.Attributes = append(layer.Attributes, h.User...)

		img.AppendLayer(layer)
	}

	return img, nil
}

func layerSize(h *header.Header) Size {
	return Size{DataWindow: h.DataWindow, DisplayWindow: h.DisplayWindow}
}

func layerWidth(h *header.Header) int {
	return int(h.DataWindow.Max.X-h.DataWindow.Min.X) + 1
}

func layerHeight(h *header.Header) int {
	return int(h.DataWindow.Max.Y-h.DataWindow.Min.Y) + 1
}

func blocksFrom(h *header.Header) Blocks {
	if h.Tiles == nil {
		return ScanLines{}
	}

	return Tiles{
		SizeX: int(h.Tiles.XSize), SizeY: int(h.Tiles.YSize),
		Mode: h.Tiles.Mode, Rounding: h.Tiles.Rounding,
	}
}

// allocateSamples sizes one channel's sample storage, replicating it
// across a resolution pyramid when h is tiled with a MIP or RIP mode.
func allocateSamples(h *header.Header, ch attr.Channel, width, height int) (Levels[FlatSamples], error) {
	kind, err := sampleKindFor(ch.Type)
	if err != nil {
		return Levels[FlatSamples]{}, err
	}

	if h.Tiles == nil {
		n := format.RoundUp.Divide(width, max(int(ch.SamplingX), 1)) *
			format.RoundUp.Divide(height, max(int(ch.SamplingY), 1))

		return SingularLevel(newFlatSamples(kind, n)), nil
	}

	td := h.Tiles
	switch td.Mode {
	case format.LevelModeOne:
		return SingularLevel(newFlatSamples(kind, width*height)), nil

	case format.LevelModeMipMap:
		n := level.LevelCount(max(width, height), td.Rounding)
		mip := make([]FlatSamples, n)
		for l := 0; l < n; l++ {
			lw := level.LevelSize(width, l, td.Rounding)
			lh := level.LevelSize(height, l, td.Rounding)
			mip[l] = newFlatSamples(kind, lw*lh)
		}

		return MipLevels(mip), nil

	case format.LevelModeRipMap:
		nx := level.LevelCount(width, td.Rounding)
		ny := level.LevelCount(height, td.Rounding)
		rip := make([]FlatSamples, nx*ny)
		for ly := 0; ly < ny; ly++ {
			lh := level.LevelSize(height, ly, td.Rounding)
			for lx := 0; lx < nx; lx++ {
				lw := level.LevelSize(width, lx, td.Rounding)
				rip[level.RipIndex(lx, ly, nx)] = newFlatSamples(kind, lw*lh)
			}
		}

		return RipLevels(rip, nx, ny), nil

	default:
		return SingularLevel(newFlatSamples(kind, width*height)), nil
	}
}

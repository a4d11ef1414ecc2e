package image

import (
	"fmt"

	"github.com/exrgo/exr/errs"
	"github.com/exrgo/exr/format"
	"github.com/exrgo/exr/level"
	"github.com/exrgo/exr/line"
)

// InsertLine fills one decoded (row, channel) line into img. Its
// signature matches chunk.OnLine exactly, so an *Image can be passed
// directly as the onLine callback to chunk.Scheduler.ReadAll.
func (img *Image) InsertLine(headerIndex int, ln line.Line) error {
	layer, ch, err := img.locate(headerIndex, ln)
	if err != nil {
		return err
	}

	samples, err := ch.Samples.At(ln.LevelX, ln.LevelY)
	if err != nil {
		return err
	}

	row, col, levelWidth, err := lineOffsets(layer, ch, ln)
	if err != nil {
		return err
	}

	base := row*levelWidth + col
	return readSamplesInto(samples, base, ln, img.engine)
}

// ExtractLine writes one (row, channel) line's worth of sample bytes
// out of img. Its signature matches chunk.ExtractLine exactly, so an
// *Image can be passed directly as the extractLine callback to
// chunk.Scheduler.WriteAll.
func (img *Image) ExtractLine(headerIndex int, ln line.Line) error {
	layer, ch, err := img.locate(headerIndex, ln)
	if err != nil {
		return err
	}

	samples, err := ch.Samples.At(ln.LevelX, ln.LevelY)
	if err != nil {
		return err
	}

	row, col, levelWidth, err := lineOffsets(layer, ch, ln)
	if err != nil {
		return err
	}

	base := row*levelWidth + col
	return writeSamplesFrom(samples, base, ln, img.engine)
}

// locate resolves ln's layer and channel, validating both indices.
func (img *Image) locate(headerIndex int, ln line.Line) (*Layer, AnyChannel, error) {
	if headerIndex < 0 || headerIndex >= len(img.Layers) {
		return nil, AnyChannel{}, fmt.Errorf("%w: layer %d", errs.ErrInvalidPartIndex, headerIndex)
	}

	layer := img.Layers[headerIndex]
	ch, ok := FindChannel(layer.Channels, ln.Channel)
	if !ok {
		return nil, AnyChannel{}, fmt.Errorf("%w: channel %q", errs.ErrInvalidChannelIndex, ln.Channel)
	}

	return layer, ch, nil
}

// lineOffsets computes the row/column of ln's first sample within its
// channel's flat level array, along with that level's width.
//
// Scan-line geometry carries absolute image coordinates (line.Iterate
// sets X to the data window's left edge and Y to the absolute row), so
// the row is the sampled row count since the data window's top edge and
// the column is simply the sample's position within the line. Tile
// geometry is already level-local and 0-based, so row and column are
// ln.Y and ln.X directly.
func lineOffsets(layer *Layer, ch AnyChannel, ln line.Line) (row, col, levelWidth int, err error) {
	samplingX, samplingY := max(ch.SamplingX, 1), max(ch.SamplingY, 1)

	if !layer.IsTiled() {
		row = (ln.Y - int(layer.Size.DataWindow.Min.Y)) / samplingY
		col = 0 // line.Iterate always starts a scan-line block at the data window's left edge
		levelWidth = format.RoundUp.Divide(layer.Size.Width(), samplingX)

		return row, col, levelWidth, nil
	}

	tiles := layer.Encoding.Blocks.(Tiles)
	row, col = ln.Y, ln.X

	if tiles.Mode == format.LevelModeOne {
		levelWidth = layer.Size.Width()
	} else {
		levelWidth = level.LevelSize(layer.Size.Width(), ln.LevelX, tiles.Rounding)
	}

	return row, col, levelWidth, nil
}

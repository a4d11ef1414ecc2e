// Package line decodes a chunk's decompressed pixel bytes into one
// Line per (row, channel) pair, and provides a typed sample iterator
// over a Line's raw bytes.
package line

import (
	"fmt"

	"github.com/exrgo/exr/attr"
	"github.com/exrgo/exr/errs"
	"github.com/exrgo/exr/format"
)

// Line identifies one channel's samples for one row of one block.
type Line struct {
	Part    int
	LevelX  int
	LevelY  int
	Channel string
	X       int
	Y       int
	Width   int

	SampleType format.PixelType
	Bytes      []byte
}

// Geometry describes the pixel-space rectangle a block covers: its
// origin, its size, and which pyramid level it belongs to.
type Geometry struct {
	X, Y          int
	Width, Height int
	LevelX        int
	LevelY        int
}

// Size returns the number of uncompressed bytes geom's block occupies
// across channels: the same row/sampling accounting Iterate uses, without
// requiring the bytes to exist yet. Callers allocate a buffer of this size
// before calling Iterate on the write path.
func Size(channels attr.ChannelList, geom Geometry) int {
	total := 0
	for row := 0; row < geom.Height; row++ {
		absY := geom.Y + row
		for _, ch := range channels {
			samplingY := int(ch.SamplingY)
			if samplingY < 1 {
				samplingY = 1
			}
			if absY%samplingY != 0 {
				continue
			}
			samplingX := int(ch.SamplingX)
			if samplingX < 1 {
				samplingX = 1
			}
			w := (geom.Width + samplingX - 1) / samplingX
			total += w * ch.Type.BytesPerSample()
		}
	}

	return total
}

// Iterate walks block's decompressed bytes row-by-row, top-to-bottom,
// yielding one Line per channel active on that row (a channel with
// sampling > 1 on an axis only contributes samples on rows/columns
// that land on a sampling boundary). Channels must already be in
// on-disk order (attr.ChannelList's sorted order). yield returning
// false stops iteration early without error.
func Iterate(block []byte, channels attr.ChannelList, part int, geom Geometry, yield func(Line) bool) error {
	offset := 0
	for row := 0; row < geom.Height; row++ {
		absY := geom.Y + row
		for _, ch := range channels {
			samplingY := int(ch.SamplingY)
			if samplingY < 1 {
				samplingY = 1
			}
			if absY%samplingY != 0 {
				continue
			}
			samplingX := int(ch.SamplingX)
			if samplingX < 1 {
				samplingX = 1
			}
			w := (geom.Width + samplingX - 1) / samplingX
			n := w * ch.Type.BytesPerSample()
			if offset+n > len(block) {
				return fmt.Errorf("%w: channel %s row %d needs %d bytes, block has %d remaining",
					errs.ErrInvalidContent, ch.Name, absY, n, len(block)-offset)
			}

			ln := Line{
				Part:       part,
				LevelX:     geom.LevelX,
				LevelY:     geom.LevelY,
				Channel:    string(ch.Name),
				X:          geom.X,
				Y:          absY,
				Width:      w,
				SampleType: ch.Type,
				Bytes:      block[offset : offset+n],
			}
			offset += n

			if !yield(ln) {
				return nil
			}
		}
	}

	return nil
}

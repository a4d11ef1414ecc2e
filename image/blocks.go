package image

import "github.com/exrgo/exr/format"

// Blocks is the sealed set of ways a layer's chunks can be framed:
// ScanLines or Tiles.
type Blocks interface {
	isBlocks()
}

// ScanLines frames a layer as contiguous scan-line blocks; its channels'
// Samples are always Singular.
type ScanLines struct{}

func (ScanLines) isBlocks() {}

// Tiles frames a layer as a grid of fixed-size tiles, optionally
// replicated across a MIP or RIP resolution pyramid.
type Tiles struct {
	SizeX, SizeY int
	Mode         format.LevelMode
	Rounding     format.RoundingMode
}

func (Tiles) isBlocks() {}

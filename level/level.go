// Package level implements the tile/resolution-pyramid math shared by
// header validation, the chunk scheduler, and the image data model:
// level counts and sizes for MIP and RIP maps, RIP flat indexing, and
// chunk-count formulas for scan-line and tiled layers.
package level

import (
	"fmt"
	"math/bits"

	"github.com/exrgo/exr/errs"
	"github.com/exrgo/exr/format"
)

// LevelCount returns the number of levels in a resolution pyramid built
// from a dimension of size n: floor(log2(n))+1 under RoundDown, or
// ceil(log2(n))+1 under RoundUp. Always at least 1.
func LevelCount(n int, rounding format.RoundingMode) int {
	if n < 1 {
		n = 1
	}
	if rounding == format.RoundUp {
		return ceilLog2(n) + 1
	}

	return floorLog2(n) + 1
}

// LevelSize returns the size of level l of a dimension whose full
// resolution is n, rounded per rounding. Never less than 1.
func LevelSize(n, l int, rounding format.RoundingMode) int {
	if n < 1 {
		n = 1
	}
	size := rounding.Divide(n, 1<<uint(l))
	if size < 1 {
		size = 1
	}

	return size
}

// RipIndex flattens a RIP-map level coordinate (x, y) into the index
// used to index a Rip-stored level slice, given the number of levels
// along the x axis.
func RipIndex(x, y, levelCountX int) int {
	return y*levelCountX + x
}

func floorLog2(n int) int {
	return bits.Len(uint(n)) - 1
}

func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}

	return bits.Len(uint(n - 1))
}

// ScanLineChunkCount returns the number of chunks a scan-line layer of
// the given height splits into, given the codec's rows-per-block.
func ScanLineChunkCount(height, rowsPerBlock int) (int, error) {
	if height < 0 {
		return 0, fmt.Errorf("%w: negative height %d", errs.ErrInvalidContent, height)
	}
	if rowsPerBlock < 1 {
		return 0, fmt.Errorf("%w: rowsPerBlock %d", errs.ErrInvalidContent, rowsPerBlock)
	}

	return format.RoundUp.Divide(height, rowsPerBlock), nil
}

// TiledChunkCount returns the number of chunks a tiled layer splits
// into, summing ceil(lw/tileX)*ceil(lh/tileY) over every level the
// mode implies.
func TiledChunkCount(width, height, tileX, tileY int, mode format.LevelMode, rounding format.RoundingMode) (int, error) {
	if tileX < 1 || tileY < 1 {
		return 0, fmt.Errorf("%w: tile size %dx%d", errs.ErrInvalidContent, tileX, tileY)
	}

	count := 0
	tilesFor := func(lw, lh int) int {
		return format.RoundUp.Divide(lw, tileX) * format.RoundUp.Divide(lh, tileY)
	}

	switch mode {
	case format.LevelModeOne:
		count = tilesFor(width, height)
	case format.LevelModeMipMap:
		n := LevelCount(max(width, height), rounding)
		for l := 0; l < n; l++ {
			count += tilesFor(LevelSize(width, l, rounding), LevelSize(height, l, rounding))
		}
	case format.LevelModeRipMap:
		nx := LevelCount(width, rounding)
		ny := LevelCount(height, rounding)
		for ly := 0; ly < ny; ly++ {
			for lx := 0; lx < nx; lx++ {
				count += tilesFor(LevelSize(width, lx, rounding), LevelSize(height, ly, rounding))
			}
		}
	default:
		return 0, fmt.Errorf("%w: level mode %v", errs.ErrInvalidContent, mode)
	}

	return count, nil
}

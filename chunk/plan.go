package chunk

import (
	"fmt"

	"github.com/exrgo/exr/errs"
	"github.com/exrgo/exr/format"
	"github.com/exrgo/exr/header"
	"github.com/exrgo/exr/level"
	"github.com/exrgo/exr/line"
)

// blockID identifies one chunk's on-disk coordinates, scan-line or tile.
type blockID struct {
	isTile bool

	y int32 // scan-line chunks only

	tileX, tileY   int32 // tiled chunks only: grid position
	levelX, levelY int32 // tiled chunks only: pyramid level
}

// plannedChunk is one chunk's identity and the pixel-space rectangle it
// covers, computed purely from header metadata before any bytes are read
// or written. Read and write share this plan so offset-table order, chunk
// count validation, and line geometry agree by construction.
type plannedChunk struct {
	id   blockID
	geom line.Geometry
}

// planChunks enumerates every chunk a header implies, in on-disk order.
func planChunks(h *header.Header, rowsPerBlock int) ([]plannedChunk, error) {
	if h.IsTiled() {
		return planTileChunks(h)
	}

	return planScanLineChunks(h, rowsPerBlock)
}

func planScanLineChunks(h *header.Header, rowsPerBlock int) ([]plannedChunk, error) {
	width := int(h.DataWindow.Max.X-h.DataWindow.Min.X) + 1
	height := int(h.DataWindow.Max.Y-h.DataWindow.Min.Y) + 1

	count, err := level.ScanLineChunkCount(height, rowsPerBlock)
	if err != nil {
		return nil, err
	}

	plans := make([]plannedChunk, 0, count)
	for i := 0; i < count; i++ {
		startRow := i * rowsPerBlock
		rows := rowsPerBlock
		if startRow+rows > height {
			rows = height - startRow
		}
		absY := int(h.DataWindow.Min.Y) + startRow

		plans = append(plans, plannedChunk{
			id: blockID{y: int32(absY)},
			geom: line.Geometry{
				X: int(h.DataWindow.Min.X), Y: absY,
				Width: width, Height: rows,
			},
		})
	}

	return plans, nil
}

func planTileChunks(h *header.Header) ([]plannedChunk, error) {
	td := h.Tiles
	width := int(h.DataWindow.Max.X-h.DataWindow.Min.X) + 1
	height := int(h.DataWindow.Max.Y-h.DataWindow.Min.Y) + 1
	tileX, tileY := int(td.XSize), int(td.YSize)

	var plans []plannedChunk
	addLevel := func(lx, ly, lw, lh int) {
		gridW := format.RoundUp.Divide(lw, tileX)
		gridH := format.RoundUp.Divide(lh, tileY)
		for ty := 0; ty < gridH; ty++ {
			y := ty * tileY
			rowH := tileY
			if y+rowH > lh {
				rowH = lh - y
			}
			for tx := 0; tx < gridW; tx++ {
				x := tx * tileX
				colW := tileX
				if x+colW > lw {
					colW = lw - x
				}
				plans = append(plans, plannedChunk{
					id: blockID{
						isTile: true,
						tileX:  int32(tx), tileY: int32(ty),
						levelX: int32(lx), levelY: int32(ly),
					},
					geom: line.Geometry{
						X: x, Y: y, Width: colW, Height: rowH,
						LevelX: lx, LevelY: ly,
					},
				})
			}
		}
	}

	switch td.Mode {
	case format.LevelModeOne:
		addLevel(0, 0, width, height)
	case format.LevelModeMipMap:
		n := level.LevelCount(max(width, height), td.Rounding)
		for l := 0; l < n; l++ {
			addLevel(l, l, level.LevelSize(width, l, td.Rounding), level.LevelSize(height, l, td.Rounding))
		}
	case format.LevelModeRipMap:
		nx := level.LevelCount(width, td.Rounding)
		ny := level.LevelCount(height, td.Rounding)
		for ly := 0; ly < ny; ly++ {
			for lx := 0; lx < nx; lx++ {
				addLevel(lx, ly, level.LevelSize(width, lx, td.Rounding), level.LevelSize(height, ly, td.Rounding))
			}
		}
	default:
		return nil, fmt.Errorf("%w: level mode %v", errs.ErrInvalidContent, td.Mode)
	}

	return plans, nil
}

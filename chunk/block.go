package chunk

import (
	"fmt"

	"github.com/exrgo/exr/bin"
)

// ScanLineBlock is one scan-line chunk's on-disk framing: the absolute y
// coordinate of its first row, and its (possibly compressed) payload.
type ScanLineBlock struct {
	Y    int32
	Data []byte
}

// TileBlock is one tile chunk's on-disk framing: its grid position, its
// pyramid level, and its (possibly compressed) payload.
type TileBlock struct {
	TileX, TileY   int32
	LevelX, LevelY int32
	Data           []byte
}

// ReadPartNumber reads the leading u32 part index that precedes every
// chunk in a multi-part file.
func ReadPartNumber(r *bin.Reader) (int, error) {
	v, err := r.ReadU32()
	return int(v), err
}

// WritePartNumber appends the leading part index for a multi-part file.
func WritePartNumber(w *bin.Writer, part int) {
	w.WriteU32(uint32(part))
}

// ReadScanLineBlock reads a (y, size, bytes) scan-line chunk body. size
// must not exceed maxBytes, guarding a hostile size field from forcing an
// unbounded allocation.
func ReadScanLineBlock(r *bin.Reader, maxBytes int) (ScanLineBlock, error) {
	y, err := r.ReadI32()
	if err != nil {
		return ScanLineBlock{}, fmt.Errorf("scan-line block y: %w", err)
	}
	size, err := r.ReadI32()
	if err != nil {
		return ScanLineBlock{}, fmt.Errorf("scan-line block size: %w", err)
	}
	data, err := r.ReadBytes(int(size), maxBytes)
	if err != nil {
		return ScanLineBlock{}, fmt.Errorf("scan-line block data: %w", err)
	}

	return ScanLineBlock{Y: y, Data: data}, nil
}

// WriteScanLineBlock appends b's (y, size, bytes) framing.
func WriteScanLineBlock(w *bin.Writer, b ScanLineBlock) {
	w.WriteI32(b.Y)
	w.WriteI32(int32(len(b.Data)))
	w.WriteBytes(b.Data)
}

// ReadTileBlock reads a (tx, ty, lx, ly, size, bytes) tile chunk body.
func ReadTileBlock(r *bin.Reader, maxBytes int) (TileBlock, error) {
	var b TileBlock

	fields := []*int32{&b.TileX, &b.TileY, &b.LevelX, &b.LevelY}
	for _, f := range fields {
		v, err := r.ReadI32()
		if err != nil {
			return TileBlock{}, fmt.Errorf("tile block header: %w", err)
		}
		*f = v
	}

	size, err := r.ReadI32()
	if err != nil {
		return TileBlock{}, fmt.Errorf("tile block size: %w", err)
	}
	data, err := r.ReadBytes(int(size), maxBytes)
	if err != nil {
		return TileBlock{}, fmt.Errorf("tile block data: %w", err)
	}
	b.Data = data

	return b, nil
}

// WriteTileBlock appends b's (tx, ty, lx, ly, size, bytes) framing.
func WriteTileBlock(w *bin.Writer, b TileBlock) {
	w.WriteI32(b.TileX)
	w.WriteI32(b.TileY)
	w.WriteI32(b.LevelX)
	w.WriteI32(b.LevelY)
	w.WriteI32(int32(len(b.Data)))
	w.WriteBytes(b.Data)
}

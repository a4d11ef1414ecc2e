package chunk

import (
	"fmt"

	"github.com/exrgo/exr/bin"
	"github.com/exrgo/exr/errs"
)

// OffsetTable is one header's chunk offset table: one file-absolute byte
// position per chunk, in the header's on-disk chunk order.
type OffsetTable []uint64

// ReadOffsetTable reads count consecutive u64 offsets.
func ReadOffsetTable(r *bin.Reader, count int) (OffsetTable, error) {
	table := make(OffsetTable, count)
	for i := range table {
		v, err := r.ReadU64()
		if err != nil {
			return nil, fmt.Errorf("offset table entry %d: %w", i, err)
		}
		table[i] = v
	}

	return table, nil
}

// WriteOffsetTable appends table's entries in order.
func WriteOffsetTable(w *bin.Writer, table OffsetTable) {
	for _, v := range table {
		w.WriteU64(v)
	}
}

// Validate checks every entry lies strictly inside (0, fileSize): an offset
// of 0 is rejected along with any offset at or past the end of the file.
func (t OffsetTable) Validate(fileSize int64) error {
	for i, off := range t {
		if off == 0 || int64(off) >= fileSize {
			return fmt.Errorf("%w: chunk %d offset %d, file size %d", errs.ErrChunkOffsetOutOfRange, i, off, fileSize)
		}
	}

	return nil
}

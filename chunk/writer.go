package chunk

import (
	"fmt"
	"io"
	"sync"

	"github.com/exrgo/exr/bin"
	"github.com/exrgo/exr/compress"
	"github.com/exrgo/exr/endian"
	"github.com/exrgo/exr/format"
	"github.com/exrgo/exr/header"
	"github.com/exrgo/exr/internal/pool"
	"github.com/exrgo/exr/line"
)

// writeTask is one chunk's write plan: which header it belongs to, its
// identity/geometry, and its slot in that header's offset table.
type writeTask struct {
	headerIndex int
	tableIndex  int
	plan        plannedChunk
}

// WriteAll reserves space for every header's offset table at w's current
// position, writes every chunk's framing (compressing with each header's
// codec, calling extract once per line to fill the uncompressed buffer),
// and finally seeks back to patch the offset tables with the file
// positions chunks actually landed at. w must support Seek; chunks are
// always written through a single writer, so only the CPU-bound
// compress step parallelizes in parallel mode — writes a chunk
// as soon as its compression finishes, in whatever order that happens.
//
// A scan-line header whose lineOrder is Increasing or Decreasing is
// always written serially regardless of Parallel, since its chunks must
// land in the file in that exact order to stay contiguous; Random order
// and all tiled headers may interleave freely.
func (Scheduler) WriteAll(
	w io.WriteSeeker,
	engine endian.EndianEngine,
	headers []*header.Header,
	extract ExtractLine,
	opts ...Option,
) error {
	cfg, err := newConfig(opts...)
	if err != nil {
		return err
	}

	type headerPlan struct {
		codec compress.Codec
		plans []plannedChunk
	}

	hplans := make([]headerPlan, len(headers))
	totalChunks := 0
	for hi, h := range headers {
		codec, err := compress.CodecFor(h.Compression)
		if err != nil {
			return err
		}
		plans, err := planChunks(h, codec.RowsPerBlock())
		if err != nil {
			return err
		}
		hplans[hi] = headerPlan{codec: codec, plans: plans}
		totalChunks += len(plans)
	}

	tableStart, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if err := writeZeroOffsetTables(w, engine, totalChunks); err != nil {
		return err
	}

	offsets := make([]uint64, totalChunks)
	multipart := len(headers) > 1

	tableIndex := 0
	for hi, h := range headers {
		hp := hplans[hi]
		tasks := make([]writeTask, len(hp.plans))
		for i, p := range hp.plans {
			tasks[i] = writeTask{headerIndex: hi, tableIndex: tableIndex + i, plan: p}
		}

		serial := !cfg.parallel || (!h.IsTiled() && h.LineOrder != format.LineOrderRandom)
		if serial {
			if err := writeTasksSerially(w, engine, h, hp.codec, tasks, multipart, extract, offsets); err != nil {
				return err
			}
		} else {
			if err := writeTasksInParallel(w, engine, h, hp.codec, tasks, multipart, extract, cfg.workers, offsets); err != nil {
				return err
			}
		}

		tableIndex += len(hp.plans)
	}

	end, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}

	if _, err := w.Seek(tableStart, io.SeekStart); err != nil {
		return err
	}
	bb := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(bb)
	tw := bin.NewWriter(bb, engine)
	WriteOffsetTable(tw, offsets)
	if _, err := w.Write(tw.Bytes()); err != nil {
		return err
	}

	_, err = w.Seek(end, io.SeekStart)

	return err
}

func writeZeroOffsetTables(w io.Writer, engine endian.EndianEngine, count int) error {
	bb := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(bb)
	tw := bin.NewWriter(bb, engine)
	WriteOffsetTable(tw, make(OffsetTable, count))

	_, err := w.Write(tw.Bytes())

	return err
}

// buildChunkBytes runs extract over t's geometry, compresses the result,
// and frames it (with a leading part number when multipart), returning
// the bytes ready to append to the file.
func buildChunkBytes(engine endian.EndianEngine, h *header.Header, codec compress.Codec, t writeTask, multipart bool, extract ExtractLine) ([]byte, error) {
	bb := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(bb)

	n := line.Size(h.Channels, t.plan.geom)
	bb.ExtendOrGrow(n)
	raw := bb.Bytes()

	var extractErr error
	err := line.Iterate(raw, h.Channels, t.headerIndex, t.plan.geom, func(ln line.Line) bool {
		if err := extract(t.headerIndex, ln); err != nil {
			extractErr = err
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if extractErr != nil {
		return nil, extractErr
	}

	compressed, err := codec.Compress(raw)
	if err != nil {
		return nil, err
	}
	if len(compressed) >= len(raw) {
		compressed = append([]byte(nil), raw...)
	}

	frameBB := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(frameBB)
	fw := bin.NewWriter(frameBB, engine)

	if multipart {
		WritePartNumber(fw, t.headerIndex)
	}
	if t.plan.id.isTile {
		WriteTileBlock(fw, TileBlock{
			TileX: t.plan.id.tileX, TileY: t.plan.id.tileY,
			LevelX: t.plan.id.levelX, LevelY: t.plan.id.levelY,
			Data: compressed,
		})
	} else {
		WriteScanLineBlock(fw, ScanLineBlock{Y: t.plan.id.y, Data: compressed})
	}

	return append([]byte(nil), fw.Bytes()...), nil
}

func writeTasksSerially(w io.WriteSeeker, engine endian.EndianEngine, h *header.Header, codec compress.Codec, tasks []writeTask, multipart bool, extract ExtractLine, offsets []uint64) error {
	for _, t := range tasks {
		framed, err := buildChunkBytes(engine, h, codec, t, multipart, extract)
		if err != nil {
			return fmt.Errorf("chunk %d: %w", t.tableIndex, err)
		}

		pos, err := w.Seek(0, io.SeekCurrent)
		if err != nil {
			return err
		}
		offsets[t.tableIndex] = uint64(pos)

		if _, err := w.Write(framed); err != nil {
			return err
		}
	}

	return nil
}

func writeTasksInParallel(w io.WriteSeeker, engine endian.EndianEngine, h *header.Header, codec compress.Codec, tasks []writeTask, multipart bool, extract ExtractLine, workers int, offsets []uint64) error {
	type result struct {
		tableIndex int
		framed     []byte
		err        error
	}

	jobs := make(chan writeTask)
	results := make(chan result, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for t := range jobs {
				framed, err := buildChunkBytes(engine, h, codec, t, multipart, extract)
				results <- result{tableIndex: t.tableIndex, framed: framed, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, t := range tasks {
			jobs <- t
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var firstErr error
	for res := range results {
		if firstErr != nil {
			continue
		}
		if res.err != nil {
			firstErr = res.err
			continue
		}

		pos, err := w.Seek(0, io.SeekCurrent)
		if err != nil {
			firstErr = err
			continue
		}
		offsets[res.tableIndex] = uint64(pos)

		if _, err := w.Write(res.framed); err != nil {
			firstErr = err
		}
	}

	return firstErr
}

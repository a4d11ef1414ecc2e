// Package chunk implements the block scheduler: offset-table read/write,
// scan-line and tile chunk framing, and serial or worker-pool dispatch of
// per-chunk compress/decompress work to the line API.
package chunk

import (
	"fmt"
	"io"
	"sync"

	"github.com/exrgo/exr/bin"
	"github.com/exrgo/exr/compress"
	"github.com/exrgo/exr/endian"
	"github.com/exrgo/exr/errs"
	"github.com/exrgo/exr/header"
	"github.com/exrgo/exr/line"
)

// Scheduler reads and writes a file's chunks. Its zero value is ready to
// use; it carries no state of its own between calls.
type Scheduler struct{}

// task is one chunk's fully-resolved read plan.
type task struct {
	headerIndex int
	plan        plannedChunk
	offset      int64
}

// OnLine is called once per decoded (row, channel) pair. Implementations
// must not retain ln.Bytes past the call: it is a view into a per-chunk
// buffer the scheduler reuses or returns to its pool once every line in
// the chunk has been delivered.
type OnLine func(headerIndex int, ln line.Line) error

// ExtractLine is called once per (row, channel) pair a write needs filled
// in. Implementations write exactly len(ln.Bytes) sample bytes into
// ln.Bytes, in engine byte order.
type ExtractLine func(headerIndex int, ln line.Line) error

// ReadAll reads every header's offset table from cur, which must be
// positioned immediately after the last header, then decodes every chunk
// and calls onLine once per line. In serial mode (the default) chunks are
// decoded one at a time on the calling goroutine in offset-table order.
// In parallel mode, decode work runs on a worker pool of cfg.workers
// goroutines reading concurrently off src via positional reads; results
// are still delivered to onLine from a single collector goroutine, so
// onLine is never called concurrently with itself.
func (Scheduler) ReadAll(
	cur *Cursor,
	src io.ReaderAt,
	engine endian.EndianEngine,
	headers []*header.Header,
	onLine OnLine,
	opts ...Option,
) error {
	cfg, err := newConfig(opts...)
	if err != nil {
		return err
	}

	tasks, err := planReadTasks(cur, engine, headers)
	if err != nil {
		return err
	}

	decode := func(t task) ([]line.Line, error) {
		return decodeChunk(src, engine, headers[t.headerIndex], t, cfg.maxChunkBytes, len(headers) > 1)
	}

	if !cfg.parallel {
		for _, t := range tasks {
			lines, err := decode(t)
			if err != nil {
				return err
			}
			for _, ln := range lines {
				if err := onLine(t.headerIndex, ln); err != nil {
					return err
				}
			}
		}

		return nil
	}

	return runParallelRead(tasks, cfg.workers, decode, onLine)
}

// decodeChunk reads one chunk's framing, decompresses its body, and
// returns every line it contains in (row, channel) order.
func decodeChunk(src io.ReaderAt, engine endian.EndianEngine, h *header.Header, t task, maxChunkBytes int, multipart bool) ([]line.Line, error) {
	r := bin.NewReader(NewCursorAt(src, t.offset), engine)

	if multipart {
		part, err := ReadPartNumber(r)
		if err != nil {
			return nil, fmt.Errorf("chunk at offset %d: %w", t.offset, err)
		}
		if part != t.headerIndex {
			return nil, fmt.Errorf("%w: chunk declares part %d, offset table says %d", errs.ErrUnexpectedPartNumber, part, t.headerIndex)
		}
	}

	expectedSize := line.Size(h.Channels, t.plan.geom)
	if expectedSize > maxChunkBytes {
		return nil, fmt.Errorf("%w: chunk needs %d bytes, cap is %d", errs.ErrInvalidSize, expectedSize, maxChunkBytes)
	}

	var compressed []byte
	if t.plan.id.isTile {
		b, err := ReadTileBlock(r, maxChunkBytes)
		if err != nil {
			return nil, err
		}
		compressed = b.Data
	} else {
		b, err := ReadScanLineBlock(r, maxChunkBytes)
		if err != nil {
			return nil, err
		}
		compressed = b.Data
	}

	// A compressed payload exactly expectedSize long is the identity
	// fallback the writer takes when compression wouldn't shrink the
	// chunk; skip the codec entirely rather than risk it misreading
	// uncompressed bytes as its own format.
	var raw []byte
	if len(compressed) == expectedSize {
		raw = compressed
	} else {
		codec, err := compress.CodecFor(h.Compression)
		if err != nil {
			return nil, err
		}
		raw, err = codec.Decompress(compressed, expectedSize)
		if err != nil {
			return nil, err
		}
	}

	var lines []line.Line
	err := line.Iterate(raw, h.Channels, t.headerIndex, t.plan.geom, func(ln line.Line) bool {
		lines = append(lines, ln)
		return true
	})

	return lines, err
}

// planReadTasks reads every header's offset table off cur in turn and
// flattens them into one ordered task list.
func planReadTasks(cur *Cursor, engine endian.EndianEngine, headers []*header.Header) ([]task, error) {
	r := bin.NewReader(cur, engine)

	var tasks []task
	for hi, h := range headers {
		codec, err := compress.CodecFor(h.Compression)
		if err != nil {
			return nil, err
		}

		plans, err := planChunks(h, codec.RowsPerBlock())
		if err != nil {
			return nil, err
		}
		if err := h.ValidateChunkCount(len(plans)); err != nil {
			return nil, err
		}

		table, err := ReadOffsetTable(r, len(plans))
		if err != nil {
			return nil, err
		}

		for i, p := range plans {
			tasks = append(tasks, task{headerIndex: hi, plan: p, offset: int64(table[i])})
		}
	}

	return tasks, nil
}

// runParallelRead dispatches decode work across cfg.workers goroutines
// and delivers results to onLine from a single collector goroutine. After
// the first decode or onLine error no further lines are delivered: the
// remaining tasks still run, and their results are drained and discarded
// before returning.
func runParallelRead(tasks []task, workers int, decode func(task) ([]line.Line, error), onLine OnLine) error {
	type result struct {
		headerIndex int
		lines       []line.Line
		err         error
	}

	jobs := make(chan task)
	results := make(chan result, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for t := range jobs {
				lines, err := decode(t)
				results <- result{headerIndex: t.headerIndex, lines: lines, err: err}
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
			continue // drain remaining results without acting on them
		}
		if res.err != nil {
			firstErr = res.err
			continue
		}
		for _, ln := range res.lines {
			if err := onLine(res.headerIndex, ln); err != nil {
				firstErr = err
				break
			}
		}
	}

	return firstErr
}

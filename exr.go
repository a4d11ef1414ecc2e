// Package exr ties the header, level, compress, line, chunk, and image
// packages together into two entry points: ReadFile decodes a complete
// OpenEXR file into an in-memory Image, WriteFile encodes an Image back
// to disk. Everything ReadFile and WriteFile do is also reachable through
// the lower-level packages directly — this file is a convenience layer,
// not a separate implementation, for programs that want a whole image in
// memory and don't need chunk-by-chunk control.
//
// Example:
//
//	img, err := exr.ReadFile("input.exr")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	layer := img.Layers[0]
//	ch, _ := image.FindChannel(layer.Channels, "R")
//	red, _ := ch.Samples.At(0, 0)
//
//	if err := exr.WriteFile("output.exr", img); err != nil {
//	    log.Fatal(err)
//	}
package exr

import (
	"os"

	"github.com/exrgo/exr/bin"
	"github.com/exrgo/exr/chunk"
	"github.com/exrgo/exr/endian"
	"github.com/exrgo/exr/header"
	"github.com/exrgo/exr/image"
	"github.com/exrgo/exr/internal/pool"
)

// wireEngine is the byte order every OpenEXR file is written in. It is
// not configurable: unlike chunk.Scheduler and image.Allocate, which take
// an explicit endian.EndianEngine so they can be exercised against
// synthetic byte orders in tests, ReadFile and WriteFile always speak the
// format's one mandated wire order.
func wireEngine() endian.EndianEngine {
	return endian.GetLittleEndianEngine()
}

// readAllHeaders reads every header a file carries off r, which must be
// positioned immediately after the magic number and requirements field.
// A single-part file carries exactly one header; a multipart file
// carries headers back to back, followed by one more terminator byte
// once the last header's own terminator has been read.
func readAllHeaders(r *bin.Reader, req header.Requirements, opts ...header.ReadOption) ([]*header.Header, error) {
	var headers []*header.Header

	for {
		h, err := header.ReadHeader(r, req, opts...)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)

		if !req.IsMultipart {
			return headers, nil
		}

		done, err := r.PeekIsTerminator()
		if err != nil {
			return nil, err
		}
		if done {
			if _, err := r.ReadU8(); err != nil {
				return nil, err
			}

			return headers, nil
		}
	}
}

// ReadFile opens path, validates its magic number and version, reads
// every header, allocates an Image sized to hold every layer's pixels,
// and fills it in by decoding every chunk. opts configure the underlying
// chunk.Scheduler (parallel decode, worker count, the per-chunk size
// cap); see chunk.Parallel, chunk.Workers, chunk.MaxChunkBytes.
func ReadFile(path string, opts ...chunk.Option) (*image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	engine := wireEngine()
	cur := chunk.NewCursor(f)
	r := bin.NewReader(cur, engine)

	req, err := header.ReadMagicAndRequirements(r)
	if err != nil {
		return nil, err
	}

	headers, err := readAllHeaders(r, req)
	if err != nil {
		return nil, err
	}

	img, err := image.Allocate(headers, engine)
	if err != nil {
		return nil, err
	}

	var sched chunk.Scheduler
	if err := sched.ReadAll(cur, f, engine, headers, img.InsertLine, opts...); err != nil {
		return nil, err
	}

	return img, nil
}

// WriteFile synthesizes headers and file requirements from img, writes
// the magic number, requirements, and every header to path, and encodes
// every chunk by calling back into img's channel storage. opts configure
// the underlying chunk.Scheduler the same way ReadFile's do.
func WriteFile(path string, img *image.Image, opts ...chunk.Option) error {
	headers, err := img.InferHeaders()
	if err != nil {
		return err
	}
	req := img.InferRequirements(headers)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	engine := wireEngine()

	bb := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(bb)
	w := bin.NewWriter(bb, engine)

	header.WriteMagicAndRequirements(w, req)
	for _, h := range headers {
		if err := header.WriteHeader(w, engine, req, h); err != nil {
			return err
		}
	}
	if req.IsMultipart {
		w.WriteU8(0) // terminates the header list itself, beyond each header's own terminator
	}

	if _, err := f.Write(w.Bytes()); err != nil {
		return err
	}

	var sched chunk.Scheduler

	return sched.WriteAll(f, engine, headers, img.ExtractLine, opts...)
}

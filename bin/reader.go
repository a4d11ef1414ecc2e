// Package bin implements typed little-endian scalar and array reads/writes,
// null-terminated strings, and a bounded vector read that guards against
// hostile size fields.
//
// bin.Reader/bin.Writer read and write EXR's scalar+string+array wire forms
// off an io.Reader/pool.ByteBuffer, built on the same endian.EndianEngine
// abstraction used throughout this module.
package bin

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/exrgo/exr/endian"
	"github.com/exrgo/exr/errs"
)

// Reader wraps an io.Reader with typed, little-endian-by-default reads and
// a size cap on variable-length reads so a corrupt or hostile header can't
// force an unbounded allocation.
type Reader struct {
	r       io.Reader
	engine  endian.EndianEngine
	peeked  byte // 1-byte lookahead buffer for PeekIsTerminator
	hasPk   bool
	scratch [8]byte
}

// NewReader creates a Reader over r using engine's byte order. If r does not
// already implement io.ByteReader, it is wrapped in a bufio.Reader so
// PeekIsTerminator's one-byte lookahead doesn't require a seek.
func NewReader(r io.Reader, engine endian.EndianEngine) *Reader {
	if _, ok := r.(io.ByteReader); !ok {
		r = bufio.NewReader(r)
	}

	return &Reader{r: r, engine: engine}
}

func (r *Reader) fill(n int) ([]byte, error) {
	b := r.scratch[:n]
	if r.hasPk {
		b[0] = r.peeked
		r.hasPk = false
		if n > 1 {
			if _, err := io.ReadFull(r.r, b[1:]); err != nil {
				return nil, err
			}
		}
		return b, nil
	}

	if _, err := io.ReadFull(r.r, b); err != nil {
		return nil, err
	}

	return b, nil
}

// ReadU8 reads a single unsigned byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.fill(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadI8 reads a single signed byte.
func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

// ReadU16 reads a little-endian (per engine) uint16.
func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.fill(2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(b), nil
}

// ReadU32 reads a uint32 in the reader's byte order.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.fill(4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(b), nil
}

// ReadI32 reads an int32 in the reader's byte order.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

// ReadU64 reads a uint64 in the reader's byte order.
func (r *Reader) ReadU64() (uint64, error) {
	b, err := r.fill(8)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(b), nil
}

// ReadF16 reads a half-float (binary16) sample.
func (r *Reader) ReadF16() (endian.Float16, error) {
	b, err := r.fill(2)
	if err != nil {
		return 0, err
	}

	return endian.ReadFloat16(r.engine, b), nil
}

// ReadF32 reads an IEEE 754 float32.
func (r *Reader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	return math.Float32frombits(v), err
}

// ReadF64 reads an IEEE 754 float64.
func (r *Reader) ReadF64() (float64, error) {
	v, err := r.ReadU64()
	return math.Float64frombits(v), err
}

// ReadBytes reads exactly n bytes. n must not exceed maxLen; a violation
// returns errs.ErrInvalidSize without consuming from the reader (a header
// field lying about its own size should never cause an allocation, let
// alone a read, of maxLen+1 bytes).
func (r *Reader) ReadBytes(n, maxLen int) ([]byte, error) {
	if n < 0 || n > maxLen {
		return nil, fmt.Errorf("%w: requested %d bytes, cap is %d", errs.ErrInvalidSize, n, maxLen)
	}

	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}

	if r.hasPk {
		buf[0] = r.peeked
		r.hasPk = false
		if n > 1 {
			if _, err := io.ReadFull(r.r, buf[1:]); err != nil {
				return nil, err
			}
		}
		return buf, nil
	}

	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, err
	}

	return buf, nil
}

// ReadNullTerminatedString reads bytes up to and including a terminating
// 0x00 byte (not included in the returned string), capped at maxLen bytes
// of content.
func (r *Reader) ReadNullTerminatedString(maxLen int) (string, error) {
	var buf []byte
	for {
		b, err := r.ReadU8()
		if err != nil {
			return "", err
		}
		if b == 0 {
			break
		}
		if len(buf) >= maxLen {
			return "", fmt.Errorf("%w: text exceeds %d bytes", errs.ErrInvalidSize, maxLen)
		}
		buf = append(buf, b)
	}

	return string(buf), nil
}

// PeekIsTerminator reports whether the next byte is the 0x00 header/list
// terminator, without consuming it if it is not. If it is the terminator,
// the caller is still expected to read it via ReadU8 to advance the stream —
// PeekIsTerminator only answers the question, it never itself consumes a
// non-terminator byte into nowhere.
func (r *Reader) PeekIsTerminator() (bool, error) {
	if r.hasPk {
		return r.peeked == 0, nil
	}

	b, err := r.fill(1)
	if err != nil {
		return false, err
	}

	r.peeked = b[0]
	r.hasPk = true

	return b[0] == 0, nil
}

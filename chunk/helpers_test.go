package chunk

import (
	"fmt"
	"io"

	"github.com/exrgo/exr/internal/pool"
)

func newTestByteBuffer() *pool.ByteBuffer {
	return pool.NewByteBuffer(256)
}

// memFile is an in-memory io.WriteSeeker + io.ReaderAt, standing in for a
// file during tests so a single backing buffer can be written through
// one handle and read positionally through another, the way a real file
// does.
type memFile struct {
	buf []byte
	pos int64
}

func (m *memFile) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.buf)) {
		grown := make([]byte, end)
		copy(grown, m.buf)
		m.buf = grown
	}
	copy(m.buf[m.pos:end], p)
	m.pos = end

	return len(p), nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = m.pos + offset
	case io.SeekEnd:
		newPos = int64(len(m.buf)) + offset
	default:
		return 0, fmt.Errorf("memFile: bad whence %d", whence)
	}
	if newPos < 0 {
		return 0, fmt.Errorf("memFile: negative position %d", newPos)
	}
	m.pos = newPos

	return m.pos, nil
}

func (m *memFile) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(m.buf)) {
		return 0, io.EOF
	}
	n := copy(p, m.buf[off:])
	if n < len(p) {
		return n, io.EOF
	}

	return n, nil
}

package chunk

import "io"

// Cursor adapts an io.ReaderAt into a sequential io.Reader while tracking
// how many bytes it has consumed. Headers and offset tables are read
// sequentially off one Cursor; chunk bodies are then read at arbitrary
// positions by creating a fresh Cursor over the same io.ReaderAt at each
// chunk's recorded offset, which is safe to do concurrently since
// io.ReaderAt itself is safe for concurrent use.
type Cursor struct {
	src io.ReaderAt
	pos int64
}

// NewCursor creates a Cursor reading src starting at byte 0.
func NewCursor(src io.ReaderAt) *Cursor {
	return &Cursor{src: src}
}

// NewCursorAt creates a Cursor reading src starting at the given offset.
func NewCursorAt(src io.ReaderAt, offset int64) *Cursor {
	return &Cursor{src: src, pos: offset}
}

// Read implements io.Reader over the underlying ReaderAt.
func (c *Cursor) Read(p []byte) (int, error) {
	n, err := c.src.ReadAt(p, c.pos)
	c.pos += int64(n)

	return n, err
}

// ReadByte implements io.ByteReader so bin.NewReader never wraps a Cursor
// in a bufio.Reader: bufio's read-ahead would advance pos past whatever
// it buffered, breaking the "Pos() is exactly how much was logically
// consumed" contract the scheduler relies on to hand off from header
// parsing to offset-table reads.
func (c *Cursor) ReadByte() (byte, error) {
	var b [1]byte
	n, err := c.src.ReadAt(b[:], c.pos)
	c.pos += int64(n)
	if n == 1 {
		return b[0], nil
	}

	return 0, err
}

// Pos returns the number of bytes read (equivalently, the absolute file
// offset of the next byte Read will return).
func (c *Cursor) Pos() int64 {
	return c.pos
}

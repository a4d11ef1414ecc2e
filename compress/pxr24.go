package compress

// Pxr24Codec implements compression method PXR24: a lossy truncation
// of every 4-byte word's low-order byte, byte-plane split across the
// remaining 3 bytes, then zlib. Real PXR24 only truncates float32
// channel data and passes half/uint channels through untouched; this
// Codec has no channel metadata to key that decision on; it treats
// the whole block uniformly as 4-byte words, dropping the low byte
// of every word, with any trailing bytes that don't fill a full word
// carried through unmodified.
type Pxr24Codec struct{}

var _ Codec = Pxr24Codec{}

func (Pxr24Codec) Compress(data []byte) ([]byte, error) {
	n := len(data)
	count := n / 4
	tail := n % 4

	buf := make([]byte, 0, 3*count+tail)
	for i := 0; i < count; i++ {
		buf = append(buf, data[4*i+1])
	}
	for i := 0; i < count; i++ {
		buf = append(buf, data[4*i+2])
	}
	for i := 0; i < count; i++ {
		buf = append(buf, data[4*i+3])
	}
	buf = append(buf, data[4*count:]...)

	return deflate(buf)
}

func (Pxr24Codec) Decompress(data []byte, expectedSize int) ([]byte, error) {
	count := expectedSize / 4
	tail := expectedSize % 4

	planes, err := inflate(data, 3*count+tail)
	if err != nil {
		return nil, err
	}

	out := make([]byte, expectedSize)
	for i := 0; i < count; i++ {
		out[4*i+0] = 0
		out[4*i+1] = planes[i]
		out[4*i+2] = planes[count+i]
		out[4*i+3] = planes[2*count+i]
	}
	copy(out[4*count:], planes[3*count:])

	return out, nil
}

func (Pxr24Codec) RowsPerBlock() int { return 16 }

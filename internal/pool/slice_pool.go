package pool

import "sync"

// uint16SlicePool backs GetUint16Slice: B44Codec/B44ACodec reinterpret a
// chunk as a stream of 16-bit words for quantization, once per
// Compress call. The pool lets that scratch array get reused across
// chunks instead of allocated fresh every call.
var uint16SlicePool = sync.Pool{
	New: func() any { return &[]uint16{} },
}

func getSlice[T any](p *sync.Pool, size int) ([]T, func()) {
	ptr, _ := p.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { p.Put(ptr) }
}

// GetUint16Slice retrieves and resizes a []uint16 scratch buffer from the
// pool. The returned slice has length size; the caller must call the
// returned cleanup function (typically via defer) to return it.
func GetUint16Slice(size int) ([]uint16, func()) {
	return getSlice[uint16](&uint16SlicePool, size)
}

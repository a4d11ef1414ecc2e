package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B))
	assert.Equal(t, capacity, cap(bb.B))
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(ChunkBufferDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)
	assert.Equal(t, []byte("hello"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(ChunkBufferDefaultSize)
	bb.MustWrite([]byte("hello"))
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), ChunkBufferDefaultSize)
}

func TestByteBuffer_LenCap(t *testing.T) {
	bb := NewByteBuffer(ChunkBufferDefaultSize)
	bb.MustWrite([]byte("abc"))
	assert.Equal(t, 3, bb.Len())
	assert.Equal(t, ChunkBufferDefaultSize, bb.Cap())
}

func TestByteBuffer_Slice(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("0123456789"))
	assert.Equal(t, []byte("234"), bb.Slice(2, 5))
}

func TestByteBuffer_SliceInvalid(t *testing.T) {
	bb := NewByteBuffer(16)
	assert.Panics(t, func() { bb.Slice(-1, 2) })
	assert.Panics(t, func() { bb.Slice(5, 2) })
	assert.Panics(t, func() { bb.Slice(0, 100) })
}

func TestByteBuffer_SetLength(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.SetLength(10)
	assert.Equal(t, 10, bb.Len())
	assert.Panics(t, func() { bb.SetLength(-1) })
	assert.Panics(t, func() { bb.SetLength(100) })
}

func TestByteBuffer_ExtendAndGrow(t *testing.T) {
	bb := NewByteBuffer(8)
	ok := bb.Extend(4)
	assert.True(t, ok)
	assert.Equal(t, 4, bb.Len())

	ok = bb.Extend(100)
	assert.False(t, ok)

	bb.ExtendOrGrow(100)
	assert.Equal(t, 104, bb.Len())
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)
	n, err := bb.Write([]byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, "hello world", string(bb.Bytes()))
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("hello"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
	assert.Equal(t, "hello", out.String())
}

func TestChunkBufferPool_GetPut(t *testing.T) {
	bb := GetChunkBuffer()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, bb.Cap(), ChunkBufferDefaultSize)

	bb.MustWrite([]byte("chunk"))
	PutChunkBuffer(bb)

	bb2 := GetChunkBuffer()
	assert.Equal(t, 0, bb2.Len(), "PutChunkBuffer should reset the buffer")
	PutChunkBuffer(bb2)
}

func TestChunkBufferPool_PutNil(t *testing.T) {
	assert.NotPanics(t, func() { PutChunkBuffer(nil) })
}

func TestChunkBufferPool_DiscardsOverlyLargeBuffers(t *testing.T) {
	bb := GetChunkBuffer()
	bb.Grow(ChunkBufferMaxThreshold * 2)
	PutChunkBuffer(bb)

	bb2 := GetChunkBuffer()
	assert.LessOrEqual(t, bb2.Cap(), ChunkBufferMaxThreshold)
	PutChunkBuffer(bb2)
}

func TestChunkBufferPool_Concurrency(t *testing.T) {
	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			bb := GetChunkBuffer()
			bb.MustWrite(make([]byte, 128))
			PutChunkBuffer(bb)
		}()
	}

	wg.Wait()
}

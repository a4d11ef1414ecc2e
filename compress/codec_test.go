package compress

import (
	"math/rand"
	"testing"

	"github.com/exrgo/exr/format"
	"github.com/stretchr/testify/require"
)

func sampleData(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	data := make([]byte, n)
	r.Read(data)

	return data
}

func TestCodecForRegistry(t *testing.T) {
	for _, c := range []format.Compression{
		format.CompressionNone, format.CompressionRLE, format.CompressionZIP,
		format.CompressionZIP16, format.CompressionPIZ, format.CompressionPXR24,
		format.CompressionB44, format.CompressionB44A,
	} {
		codec, err := CodecFor(c)
		require.NoError(t, err)
		require.NotNil(t, codec)
		require.Positive(t, codec.RowsPerBlock())
	}

	_, err := CodecFor(format.Compression(200))
	require.Error(t, err)
}

func TestNoneCodecRoundTrip(t *testing.T) {
	data := sampleData(128, 1)
	c := NoneCodec{}
	compressed, err := c.Compress(data)
	require.NoError(t, err)
	got, err := c.Decompress(compressed, len(data))
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestRLECodecRoundTrip(t *testing.T) {
	c := RLECodec{}
	for _, data := range [][]byte{
		{},
		bytesRepeat(0x42, 500),
		sampleData(300, 2),
		append(bytesRepeat(7, 200), sampleData(50, 3)...),
	} {
		compressed, err := c.Compress(data)
		require.NoError(t, err)
		got, err := c.Decompress(compressed, len(data))
		require.NoError(t, err)
		require.Equal(t, data, got)
	}
}

func TestZIPCodecRoundTrip(t *testing.T) {
	for _, c := range []Codec{ZIPCodec{}, ZIP16Codec{}} {
		data := sampleData(4096, 4)
		compressed, err := c.Compress(data)
		require.NoError(t, err)
		got, err := c.Decompress(compressed, len(data))
		require.NoError(t, err)
		require.Equal(t, data, got)
	}
}

func TestPizCodecRoundTrip(t *testing.T) {
	c := PizCodec{}
	for _, n := range []int{0, 1, 2, 3, 4097} {
		data := sampleData(n, int64(n+1))
		compressed, err := c.Compress(data)
		require.NoError(t, err)
		got, err := c.Decompress(compressed, len(data))
		require.NoError(t, err)
		require.Equal(t, data, got)
	}
}

func TestPxr24CodecTruncatesLowByte(t *testing.T) {
	c := Pxr24Codec{}
	data := sampleData(402, 5) // not a multiple of 4, exercises the tail path
	compressed, err := c.Compress(data)
	require.NoError(t, err)
	got, err := c.Decompress(compressed, len(data))
	require.NoError(t, err)
	require.Len(t, got, len(data))

	for i := 0; i+3 < len(data)-len(data)%4; i += 4 {
		require.Equal(t, byte(0), got[i])
		require.Equal(t, data[i+1], got[i+1])
		require.Equal(t, data[i+2], got[i+2])
		require.Equal(t, data[i+3], got[i+3])
	}
}

func TestB44CodecQuantizes(t *testing.T) {
	c := B44Codec{}
	data := sampleData(64, 6)
	compressed, err := c.Compress(data)
	require.NoError(t, err)
	got, err := c.Decompress(compressed, len(data))
	require.NoError(t, err)
	require.Equal(t, b44Quantize(data), got)
}

func TestB44ACodecRoundTrip(t *testing.T) {
	c := B44ACodec{}
	data := append(bytesRepeat(0, 256), sampleData(32, 7)...)
	compressed, err := c.Compress(data)
	require.NoError(t, err)
	got, err := c.Decompress(compressed, len(data))
	require.NoError(t, err)
	require.Equal(t, b44Quantize(data), got)
}

func bytesRepeat(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}

	return out
}

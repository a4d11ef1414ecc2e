package line

import (
	"testing"

	"github.com/exrgo/exr/attr"
	"github.com/exrgo/exr/endian"
	"github.com/exrgo/exr/format"
	"github.com/stretchr/testify/require"
)

func threeChannelRow(t *testing.T, engine endian.EndianEngine, width int) []byte {
	t.Helper()
	// one row, channels B,G,R, each width f16 samples
	row := make([]byte, 0, width*2*3)
	for ch := 0; ch < 3; ch++ {
		for x := 0; x < width; x++ {
			buf := make([]byte, 2)
			engine.PutUint16(buf, uint16(endian.Float16FromFloat32(float32(ch*10+x))))
			row = append(row, buf...)
		}
	}

	return row
}

func TestIterateSingleRow(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	channels := attr.ChannelList{
		{Name: "B", Type: format.PixelHalf, SamplingX: 1, SamplingY: 1},
		{Name: "G", Type: format.PixelHalf, SamplingX: 1, SamplingY: 1},
		{Name: "R", Type: format.PixelHalf, SamplingX: 1, SamplingY: 1},
	}
	block := threeChannelRow(t, engine, 4)

	var got []Line
	err := Iterate(block, channels, 0, Geometry{X: 0, Y: 5, Width: 4, Height: 1}, func(l Line) bool {
		got = append(got, l)
		return true
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "B", got[0].Channel)
	require.Equal(t, "G", got[1].Channel)
	require.Equal(t, "R", got[2].Channel)
	for _, l := range got {
		require.Equal(t, 5, l.Y)
		require.Equal(t, 4, l.Width)
		require.Len(t, l.Bytes, 8)
	}
}

func TestIterateSubsampledChannelSkipsRows(t *testing.T) {
	channels := attr.ChannelList{
		{Name: "A", Type: format.PixelHalf, SamplingX: 1, SamplingY: 2},
	}
	// 2 rows, A only contributes samples on even absolute y (0,2,...)
	block := make([]byte, 2*2) // one row of 2 width samples (since only row 0 is active)

	var rows []int
	err := Iterate(block, channels, 0, Geometry{X: 0, Y: 0, Width: 2, Height: 2}, func(l Line) bool {
		rows = append(rows, l.Y)
		return true
	})
	require.NoError(t, err)
	require.Equal(t, []int{0}, rows)
}

func TestSizeMatchesIterateByteCount(t *testing.T) {
	channels := attr.ChannelList{
		{Name: "A", Type: format.PixelFloat, SamplingX: 1, SamplingY: 1},
		{Name: "Z", Type: format.PixelHalf, SamplingX: 2, SamplingY: 1},
	}
	geom := Geometry{X: 0, Y: 0, Width: 5, Height: 3}

	want := Size(channels, geom)
	require.Equal(t, 3*(5*4+3*2), want)

	block := make([]byte, want)
	got := 0
	err := Iterate(block, channels, 0, geom, func(l Line) bool {
		got += len(l.Bytes)
		return true
	})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestIterateStopsEarly(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	channels := attr.ChannelList{
		{Name: "A", Type: format.PixelHalf, SamplingX: 1, SamplingY: 1},
		{Name: "B", Type: format.PixelHalf, SamplingX: 1, SamplingY: 1},
	}
	block := threeChannelRow(t, engine, 2)[:8] // enough for 2 channels of width 2

	count := 0
	err := Iterate(block, channels, 0, Geometry{X: 0, Y: 0, Width: 2, Height: 1}, func(l Line) bool {
		count++
		return false
	})
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestIterateRejectsShortBlock(t *testing.T) {
	channels := attr.ChannelList{
		{Name: "A", Type: format.PixelFloat, SamplingX: 1, SamplingY: 1},
	}
	err := Iterate([]byte{0, 0}, channels, 0, Geometry{X: 0, Y: 0, Width: 4, Height: 1}, func(l Line) bool {
		return true
	})
	require.Error(t, err)
}

func TestSampleIterTypeMismatch(t *testing.T) {
	ln := Line{SampleType: format.PixelHalf, Bytes: []byte{0, 0}, Width: 1}
	_, err := SampleIter[float32](ln, endian.GetLittleEndianEngine())
	require.Error(t, err)
}

func TestSampleIterFloat32(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	bytes := make([]byte, 8)
	engine.PutUint32(bytes[0:4], 0x3F800000) // 1.0
	engine.PutUint32(bytes[4:8], 0x40000000) // 2.0

	ln := Line{SampleType: format.PixelFloat, Bytes: bytes, Width: 2}
	seq, err := SampleIter[float32](ln, engine)
	require.NoError(t, err)

	var got []float32
	for v := range seq {
		got = append(got, v)
	}
	require.Equal(t, []float32{1.0, 2.0}, got)
}

func TestSampleIterHalf(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, uint16(endian.Float16One))

	ln := Line{SampleType: format.PixelHalf, Bytes: bytes, Width: 1}
	seq, err := SampleIter[endian.Float16](ln, engine)
	require.NoError(t, err)

	var got []endian.Float16
	for v := range seq {
		got = append(got, v)
	}
	require.Equal(t, []endian.Float16{endian.Float16One}, got)
}

package chunk

import (
	"math"
	"testing"

	"github.com/exrgo/exr/attr"
	"github.com/exrgo/exr/endian"
	"github.com/exrgo/exr/format"
	"github.com/exrgo/exr/header"
	"github.com/exrgo/exr/line"
	"github.com/stretchr/testify/require"
)

func sampleValue(part int, channel string, x, y int) float32 {
	return float32(part*1000) + float32(x) + float32(y)*0.5 + float32(len(channel))
}

func testHeader(dw attr.Box2i, compression format.Compression) *header.Header {
	return &header.Header{
		Channels: attr.ChannelList{
			{Name: "G", Type: format.PixelFloat, SamplingX: 1, SamplingY: 1},
			{Name: "R", Type: format.PixelFloat, SamplingX: 1, SamplingY: 1},
		},
		Compression: compression,
		DataWindow:  dw,
		LineOrder:   format.LineOrderIncreasing,
	}
}

func extractFloat(engine endian.EndianEngine) ExtractLine {
	return func(part int, ln line.Line) error {
		for i := 0; i < ln.Width; i++ {
			v := sampleValue(part, ln.Channel, ln.X+i, ln.Y)
			engine.PutUint32(ln.Bytes[i*4:(i+1)*4], math.Float32bits(v))
		}

		return nil
	}
}

func TestSchedulerWriteThenReadSerial(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	h := testHeader(box(6, 5), format.CompressionNone)
	headers := []*header.Header{h}

	f := &memFile{}
	var s Scheduler
	err := s.WriteAll(f, engine, headers, extractFloat(engine))
	require.NoError(t, err)

	cur := NewCursor(f)
	var got [][3]float32 // x, y, value per (channel-agnostic) sample, keyed by order
	err = s.ReadAll(cur, f, engine, headers, func(part int, ln line.Line) error {
		for i := 0; i < ln.Width; i++ {
			want := sampleValue(part, ln.Channel, ln.X+i, ln.Y)
			got = append(got, [3]float32{float32(ln.X + i), float32(ln.Y), want})
		}

		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 6*5*2) // width*height*channels
}

func TestSchedulerWriteThenReadValuesMatch(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	h := testHeader(box(4, 3), format.CompressionZIP)
	headers := []*header.Header{h}

	f := &memFile{}
	var s Scheduler
	require.NoError(t, s.WriteAll(f, engine, headers, extractFloat(engine)))

	cur := NewCursor(f)
	count := 0
	err := s.ReadAll(cur, f, engine, headers, func(part int, ln line.Line) error {
		seq, err := line.SampleIter[float32](ln, engine)
		if err != nil {
			return err
		}
		x := ln.X
		for v := range seq {
			want := sampleValue(part, ln.Channel, x, ln.Y)
			require.InDelta(t, want, v, 0.0001)
			x++
			count++
		}

		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 4*3*2, count)
}

func TestSchedulerWriteThenReadParallel(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	h := testHeader(box(10, 20), format.CompressionRLE)
	h.LineOrder = format.LineOrderRandom // only Random permits parallel scan-line writes
	headers := []*header.Header{h}

	f := &memFile{}
	var s Scheduler
	require.NoError(t, s.WriteAll(f, engine, headers, extractFloat(engine), Parallel(true)))

	cur := NewCursor(f)
	count := 0
	err := s.ReadAll(cur, f, engine, headers, func(part int, ln line.Line) error {
		count += ln.Width
		return nil
	}, Parallel(true), Workers(4))
	require.NoError(t, err)
	require.Equal(t, 10*20*2, count)
}

func TestSchedulerMultipartRoundTrip(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	h0 := testHeader(box(4, 4), format.CompressionNone)
	h0.Name, h0.Type = "part0", "scanlineimage"
	h1 := testHeader(box(4, 4), format.CompressionZIP)
	h1.Name, h1.Type = "part1", "scanlineimage"
	headers := []*header.Header{h0, h1}

	f := &memFile{}
	var s Scheduler
	require.NoError(t, s.WriteAll(f, engine, headers, extractFloat(engine)))

	cur := NewCursor(f)
	counts := map[int]int{}
	err := s.ReadAll(cur, f, engine, headers, func(part int, ln line.Line) error {
		counts[part] += ln.Width
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 4*4*2, counts[0])
	require.Equal(t, 4*4*2, counts[1])
}

func TestSchedulerRejectsChunkCountMismatch(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	h := testHeader(box(4, 4), format.CompressionNone)
	bad := int32(999)
	h.ChunkCount = &bad
	headers := []*header.Header{h}

	f := &memFile{}
	var s Scheduler
	require.NoError(t, s.WriteAll(f, engine, headers, extractFloat(engine)))

	cur := NewCursor(f)
	err := s.ReadAll(cur, f, engine, headers, func(part int, ln line.Line) error { return nil })
	require.Error(t, err)
}

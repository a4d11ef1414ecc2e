package image

import (
	"fmt"

	"github.com/exrgo/exr/attr"
	"github.com/exrgo/exr/errs"
)

// AnyChannel is one named sample plane within a layer. Its samples are
// always a Levels[FlatSamples]: Singular for every non-tiled layer and
// for a LevelModeOne tiled layer, Mip or Rip for a MIP/RIP tiled layer.
type AnyChannel struct {
	Name             string
	Samples          Levels[FlatSamples]
	QuantizeLinearly bool
	SamplingX        int
	SamplingY        int
}

// toAttr converts c to the on-disk attr.Channel, reading its storage
// kind and sampling straight off c.
func (c AnyChannel) toAttr() (attr.Channel, error) {
	base, err := c.Samples.At(0, 0)
	if err != nil {
		return attr.Channel{}, fmt.Errorf("channel %q: %w", c.Name, err)
	}

	samplingX, samplingY := c.SamplingX, c.SamplingY
	if samplingX < 1 {
		samplingX = 1
	}
	if samplingY < 1 {
		samplingY = 1
	}

	return attr.Channel{
		Name:      attr.Text(c.Name),
		Type:      base.kind.PixelType(),
		Linear:    c.QuantizeLinearly,
		SamplingX: int32(samplingX),
		SamplingY: int32(samplingY),
	}, nil
}

// channels is the sealed set of ways a Layer's channel set can be
// shaped: an arbitrary sorted list, or the common fixed RGBA tuple.
type Channels interface {
	sorted() []AnyChannel
	isChannels()
}

// ArbitraryChannels is an unordered set of channels, sorted by name at
// header-synthesis and allocation time, as the format requires.
type ArbitraryChannels []AnyChannel

func (ArbitraryChannels) isChannels() {}

func (a ArbitraryChannels) sorted() []AnyChannel {
	out := make([]AnyChannel, len(a))
	copy(out, a)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Name > out[j].Name; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}

	return out
}

// RGBAChannels is the common fixed four-channel shape: channels named
// "R", "G", "B", "A". A nil Alpha omits the alpha channel entirely.
type RGBAChannels struct {
	Red, Green, Blue AnyChannel
	Alpha            *AnyChannel
}

func (RGBAChannels) isChannels() {}

func (c RGBAChannels) sorted() []AnyChannel {
	c.Red.Name, c.Green.Name, c.Blue.Name = "R", "G", "B"
	// Alphabetical order of R, G, B, A is A, B, G, R.
	out := []AnyChannel{c.Blue, c.Green, c.Red}
	if c.Alpha != nil {
		a := *c.Alpha
		a.Name = "A"
		out = append([]AnyChannel{a}, out...)
	}

	return out
}

// Sorted returns c's channels in the on-disk sorted order.
func Sorted(c Channels) []AnyChannel {
	if c == nil {
		return nil
	}

	return c.sorted()
}

// FindChannel returns the channel named name within c, or false if none
// exists.
func FindChannel(c Channels, name string) (AnyChannel, bool) {
	for _, ch := range Sorted(c) {
		if ch.Name == name {
			return ch, true
		}
	}

	return AnyChannel{}, false
}

func channelListFrom(c Channels) (attr.ChannelList, error) {
	sorted := Sorted(c)
	list := make(attr.ChannelList, 0, len(sorted))
	for _, ch := range sorted {
		a, err := ch.toAttr()
		if err != nil {
			return nil, err
		}

		list = append(list, a)
	}
	if !list.Sorted() {
		return nil, fmt.Errorf("%w: channel names must be unique and sorted", errs.ErrInvalidContent)
	}

	return list, nil
}

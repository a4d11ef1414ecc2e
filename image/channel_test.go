package image

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func flatF32(n int) Levels[FlatSamples] {
	return SingularLevel(NewF32Samples(make([]float32, n)))
}

func TestArbitraryChannelsSorted(t *testing.T) {
	chans := ArbitraryChannels{
		{Name: "Z", Samples: flatF32(1)},
		{Name: "A", Samples: flatF32(1)},
		{Name: "M", Samples: flatF32(1)},
	}

	sorted := Sorted(chans)
	require.Len(t, sorted, 3)
	require.Equal(t, []string{"A", "M", "Z"}, []string{sorted[0].Name, sorted[1].Name, sorted[2].Name})
}

func TestRGBAChannelsSortedAlphabetical(t *testing.T) {
	alpha := AnyChannel{Samples: flatF32(1)}
	rgba := RGBAChannels{
		Red:   AnyChannel{Samples: flatF32(1)},
		Green: AnyChannel{Samples: flatF32(1)},
		Blue:  AnyChannel{Samples: flatF32(1)},
		Alpha: &alpha,
	}

	sorted := rgba.sorted()
	names := make([]string, len(sorted))
	for i, c := range sorted {
		names[i] = c.Name
	}
	require.Equal(t, []string{"A", "B", "G", "R"}, names)
}

func TestRGBAChannelsWithoutAlpha(t *testing.T) {
	rgba := RGBAChannels{
		Red:   AnyChannel{Samples: flatF32(1)},
		Green: AnyChannel{Samples: flatF32(1)},
		Blue:  AnyChannel{Samples: flatF32(1)},
	}

	sorted := rgba.sorted()
	require.Len(t, sorted, 3)
}

func TestFindChannel(t *testing.T) {
	chans := ArbitraryChannels{
		{Name: "G", Samples: flatF32(1)},
		{Name: "R", Samples: flatF32(1)},
	}

	ch, ok := FindChannel(chans, "R")
	require.True(t, ok)
	require.Equal(t, "R", ch.Name)

	_, ok = FindChannel(chans, "B")
	require.False(t, ok)
}

func TestChannelListFromRejectsUnsortable(t *testing.T) {
	// ArbitraryChannels.sorted() always produces a sorted list; duplicate
	// names are the one way channelListFrom can still fail its own check.
	chans := ArbitraryChannels{
		{Name: "R", Samples: flatF32(1)},
		{Name: "R", Samples: flatF32(1)},
	}

	_, err := channelListFrom(chans)
	require.Error(t, err)
}

package attr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateText(t *testing.T) {
	require.NoError(t, ValidateText("channels", ShortTextMaxLen))
	require.Error(t, ValidateText("", ShortTextMaxLen))
	require.Error(t, ValidateText("this name is definitely longer than thirty one bytes", ShortTextMaxLen))
	require.Error(t, ValidateText("bad\x00name", LongTextMaxLen))
	require.Error(t, ValidateText("caf\xe9", LongTextMaxLen))
}

func TestChannelListFindAndSorted(t *testing.T) {
	list := ChannelList{
		{Name: "B"},
		{Name: "G"},
		{Name: "R"},
	}
	require.True(t, list.Sorted())

	c, ok := list.Find("G")
	require.True(t, ok)
	require.Equal(t, Text("G"), c.Name)

	_, ok = list.Find("A")
	require.False(t, ok)

	unsorted := ChannelList{{Name: "R"}, {Name: "B"}}
	require.False(t, unsorted.Sorted())
}

func TestTileDescriptionPackUnpack(t *testing.T) {
	td := TileDescription{}
	td.UnpackMode(0x11) // mode=1 (mipmap), rounding=1 (up)
	require.EqualValues(t, 1, td.Mode)
	require.EqualValues(t, 1, td.Rounding)
	require.Equal(t, byte(0x11), td.PackedMode())
}

package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPixelTypeBytesPerSample(t *testing.T) {
	require := require.New(t)
	require.Equal(4, PixelUint.BytesPerSample())
	require.Equal(2, PixelHalf.BytesPerSample())
	require.Equal(4, PixelFloat.BytesPerSample())
}

func TestCompressionValid(t *testing.T) {
	require := require.New(t)
	require.True(CompressionNone.Valid())
	require.True(CompressionB44A.Valid())
	require.False(Compression(8).Valid())
}

func TestLineOrderValid(t *testing.T) {
	require := require.New(t)
	require.True(LineOrderRandom.Valid())
	require.False(LineOrder(3).Valid())
}

func TestRoundingModeDivide(t *testing.T) {
	require := require.New(t)
	require.Equal(3, RoundUp.Divide(10, 4))
	require.Equal(2, RoundDown.Divide(10, 4))
	require.Equal(1, RoundUp.Divide(1, 4))
	require.Equal(0, RoundDown.Divide(1, 4))
}

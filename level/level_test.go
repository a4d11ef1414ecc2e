package level

import (
	"testing"

	"github.com/exrgo/exr/format"
	"github.com/stretchr/testify/require"
)

func TestLevelCountAndSize(t *testing.T) {
	require.Equal(t, 4, LevelCount(10, format.RoundDown))
	require.Equal(t, []int{10, 5, 2, 1}, []int{
		LevelSize(10, 0, format.RoundDown),
		LevelSize(10, 1, format.RoundDown),
		LevelSize(10, 2, format.RoundDown),
		LevelSize(10, 3, format.RoundDown),
	})
}

func TestLevelSizeNeverZero(t *testing.T) {
	require.Equal(t, 1, LevelSize(1, 5, format.RoundDown))
	require.Equal(t, 1, LevelSize(3, 10, format.RoundUp))
}

func TestRipIndex(t *testing.T) {
	require.Equal(t, 0, RipIndex(0, 0, 4))
	require.Equal(t, 4, RipIndex(0, 1, 4))
	require.Equal(t, 6, RipIndex(2, 1, 4))
}

func TestScanLineChunkCount(t *testing.T) {
	n, err := ScanLineChunkCount(31, 1)
	require.NoError(t, err)
	require.Equal(t, 31, n)

	n, err = ScanLineChunkCount(31, 16)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	_, err = ScanLineChunkCount(10, 0)
	require.Error(t, err)
}

func TestTiledChunkCountSingleLevel(t *testing.T) {
	n, err := TiledChunkCount(64, 32, 32, 32, format.LevelModeOne, format.RoundDown)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestTiledChunkCountMipMap(t *testing.T) {
	// 10x10 image, 4x4 tiles, Down rounding: levels 10,5,2,1 ->
	// 9 + 4 + 1 + 1 = 15.
	n, err := TiledChunkCount(10, 10, 4, 4, format.LevelModeMipMap, format.RoundDown)
	require.NoError(t, err)
	require.Equal(t, 15, n)
}

func TestTiledChunkCountRipMap(t *testing.T) {
	n, err := TiledChunkCount(8, 4, 4, 4, format.LevelModeRipMap, format.RoundDown)
	require.NoError(t, err)
	// x levels: 8,4,2,1 -> ceil(lw/4) sums to 5; y levels: 4,2,1 ->
	// ceil(lh/4) sums to 3. Total tiles = 5*3 = 15.
	require.Equal(t, 15, n)
}

func TestTiledChunkCountRejectsBadTileSize(t *testing.T) {
	_, err := TiledChunkCount(8, 8, 0, 4, format.LevelModeOne, format.RoundDown)
	require.Error(t, err)
}

package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetUint16Slice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetUint16Slice(100)
		defer cleanup()

		require.Equal(t, 100, len(slice))
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("reuses pooled slice when capacity sufficient", func(t *testing.T) {
		slice1, cleanup1 := GetUint16Slice(50)
		ptr1 := &slice1[0]
		cleanup1()

		slice2, cleanup2 := GetUint16Slice(50)
		defer cleanup2()
		ptr2 := &slice2[0]

		require.Equal(t, ptr1, ptr2, "should reuse same underlying array")
	})

	t.Run("allocates new slice when capacity insufficient", func(t *testing.T) {
		_, cleanup1 := GetUint16Slice(10)
		cleanup1()

		slice2, cleanup2 := GetUint16Slice(1000)
		defer cleanup2()

		require.Equal(t, 1000, len(slice2))
		require.GreaterOrEqual(t, cap(slice2), 1000)
	})
}

func TestSlicePoolConcurrency(t *testing.T) {
	const goroutines = 100
	done := make(chan bool, goroutines)

	for i := 0; i < goroutines; i++ {
		go func() {
			slice, cleanup := GetUint16Slice(50)
			defer cleanup()

			for j := range slice {
				slice[j] = uint16(j)
			}

			done <- true
		}()
	}

	for i := 0; i < goroutines; i++ {
		<-done
	}
}

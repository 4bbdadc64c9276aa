package lpmap

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCapacityFromSize(t *testing.T) {
	t.Run("int,int", func(t *testing.T) {
		sizeOfSlot := unsafe.Sizeof(slot[int, int]{})

		tests := []struct {
			name string
			size uintptr
			want int
		}{
			{"zero", 0, 0},
			{"less than one slot", sizeOfSlot - 1, 0},
			{"exactly one slot", sizeOfSlot, 1},
			{"one and a half slots", sizeOfSlot + sizeOfSlot/2, 1},
			{"ten slots", sizeOfSlot * 10, 10},
			{"1KB", 1024, int(1024 / sizeOfSlot)},
			{"1MB", 1024 * 1024, int(1024 * 1024 / sizeOfSlot)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := CapacityFromSize[int, int](tt.size)
				require.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("string,string", func(t *testing.T) {
		sizeOfSlot := unsafe.Sizeof(slot[string, string]{})

		got := CapacityFromSize[string, string](sizeOfSlot * 5)
		require.Equal(t, 5, got)
	})

	t.Run("int,struct{}", func(t *testing.T) {
		sizeOfSlot := unsafe.Sizeof(slot[int, struct{}]{})

		got := CapacityFromSize[int, struct{}](sizeOfSlot * 3)
		require.Equal(t, 3, got)
	})
}

func TestSlotsFor(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{3, 4},
		{12, 16},
		{13, 18},
		{1000, 1334},
		{math.MaxInt, math.MaxInt},
	}

	for _, tt := range tests {
		require.Equalf(t, tt.want, slotsFor(tt.n), "slotsFor(%d)", tt.n)
	}
}

func TestGrown(t *testing.T) {
	require.Equal(t, 32, grown(16))
	require.Equal(t, math.MaxInt, grown(math.MaxInt/2+1))
}

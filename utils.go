package lpmap

import (
	"math"
	"unsafe"
)

// Estimates capacity (number of slots) from the given memory size in bytes.
func CapacityFromSize[K comparable, V any](size uintptr) int {
	sizeOfSlot := unsafe.Sizeof(slot[K, V]{})

	return int(size / sizeOfSlot)
}

// slotsFor returns the smallest capacity that holds n entries
// without crossing the 3/4 load factor.
func slotsFor(n int) int {
	if n > math.MaxInt/4 {
		return math.MaxInt
	}

	return (n*4 + 2) / 3
}

// grown returns the doubled capacity, saturating instead of overflowing.
func grown(capacity int) int {
	if capacity > math.MaxInt/2 {
		return math.MaxInt
	}

	return capacity * 2
}

// The returned slice must never be written to.
func unsafeStringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

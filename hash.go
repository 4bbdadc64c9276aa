package lpmap

import (
	"encoding/binary"
	"hash/maphash"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// HashFunc maps a key to a 32-bit hash. The slot index is hash mod capacity,
// so the low bits are not special: any well-mixed 32-bit hash will do.
type HashFunc[K comparable] func(K) uint32

// EqualFunc reports whether two keys are the same key.
// It must be consistent with the HashFunc the map was built with.
type EqualFunc[K comparable] func(a, b K) bool

// MakeDefaultHashFunc returns the hash used when no WithHashFunc option is given.
// For pointer keys it hashes the address, which gives identity semantics.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint32 {
		return fold64(maphash.Comparable(seed, k))
	}
}

// EqualComparable is the default equality: Go's == operator.
func EqualComparable[K comparable](a, b K) bool {
	return a == b
}

// HashString is MurmurHash3 (x86, 32-bit, seed 0) of the string bytes.
func HashString(s string) uint32 {
	return murmur3.Sum32(unsafeStringBytes(s))
}

// HashStringXX is xxHash64 of the string folded down to 32 bits.
func HashStringXX(s string) uint32 {
	return fold64(xxhash.Sum64String(s))
}

// HashInt hashes the low 32 bits of k, little-endian.
func HashInt(k int) uint32 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(k))

	return murmur3.Sum32(b[:])
}

func HashUint64(k uint64) uint32 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], k)

	return murmur3.Sum32(b[:])
}

// HashPointer hashes the address p points to, not the pointee.
// Two distinct allocations holding equal values hash differently.
func HashPointer[T any](p *T) uint32 {
	return HashUint64(uint64(uintptr(unsafe.Pointer(p))))
}

func fold64(h uint64) uint32 {
	return uint32(h ^ (h >> 32))
}

package bench

import (
	"crypto/rand"
	"fmt"
	"hash/maphash"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/homier/lpmap"
)

// Keys generates n distinct keys of the given kind.
func Keys(kind string, n int) ([]string, error) {
	keys := make([]string, n)

	switch kind {
	case "sequential":
		for i := range keys {
			keys[i] = "key-" + strconv.Itoa(i)
		}
	case "ulid":
		// Monotonic entropy keeps ids unique within the same millisecond.
		entropy := ulid.Monotonic(rand.Reader, 0)
		ts := ulid.Timestamp(time.Now())

		for i := range keys {
			id, err := ulid.New(ts, entropy)
			if err != nil {
				return nil, fmt.Errorf("generate ulid key %d: %w", i, err)
			}

			keys[i] = id.String()
		}
	default:
		return nil, fmt.Errorf("unknown key generator %q", kind)
	}

	return keys, nil
}

// MissingKeys returns n keys that Keys never produces for any kind.
func MissingKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "missing-" + strconv.Itoa(i)
	}

	return keys
}

// HashFunc resolves a hash function by name.
func HashFunc(name string) (lpmap.HashFunc[string], error) {
	switch name {
	case "murmur3":
		return lpmap.HashString, nil
	case "xxhash":
		return lpmap.HashStringXX, nil
	case "maphash":
		return lpmap.MakeDefaultHashFunc[string](maphash.MakeSeed()), nil
	}

	return nil, fmt.Errorf("unknown hash %q", name)
}

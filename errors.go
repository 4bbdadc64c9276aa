package lpmap

import "errors"

var (
	// ErrOutOfMemory is returned when the slot array cannot be allocated,
	// either because the runtime refused the allocation or because it
	// would exceed the limit set with WithMaxCapacity or WithMemoryLimit.
	// The map is left exactly as it was before the failed call.
	ErrOutOfMemory = errors.New("lpmap: out of memory")

	// ErrDestroyed is returned by mutating calls on a destroyed map.
	ErrDestroyed = errors.New("lpmap: map destroyed")
)

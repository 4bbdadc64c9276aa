package lpmap

import "github.com/hashicorp/go-hclog"

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
// When set without WithEqualFunc, keys are still compared with ==.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Override default key equality.
func WithEqualFunc[K comparable, V any](f EqualFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.equalFunc = f
	}
}

// WithKeyRelease registers a hook that receives every key exactly once,
// when its entry leaves the map through Delete, Clear or Destroy.
// Updating a value never releases the key.
func WithKeyRelease[K comparable, V any](f func(K)) Option[K, V] {
	return func(t *table[K, V]) {
		t.releaseKey = f
	}
}

// WithValueRelease registers a hook that receives every value exactly once,
// when it is overwritten by Set or its entry leaves the map.
func WithValueRelease[K comparable, V any](f func(V)) Option[K, V] {
	return func(t *table[K, V]) {
		t.releaseValue = f
	}
}

// WithValueCopy makes Get return copy(v) instead of the stored value.
// The function may run concurrently from several readers.
func WithValueCopy[K comparable, V any](f func(V) V) Option[K, V] {
	return func(t *table[K, V]) {
		t.copyValue = f
	}
}

// WithCapacity sets the initial number of slots. Values below
// DefaultCapacity are raised to it.
func WithCapacity[K comparable, V any](capacity int) Option[K, V] {
	return func(t *table[K, V]) {
		t.initCapacity = max(capacity, DefaultCapacity)
	}
}

// WithMaxCapacity caps the number of slots the map may allocate.
// Growth past the cap fails with ErrOutOfMemory.
func WithMaxCapacity[K comparable, V any](capacity int) Option[K, V] {
	return func(t *table[K, V]) {
		t.maxCapacity = capacity
	}
}

// WithMemoryLimit is WithMaxCapacity expressed in bytes of slot storage.
func WithMemoryLimit[K comparable, V any](size uintptr) Option[K, V] {
	return func(t *table[K, V]) {
		t.maxCapacity = CapacityFromSize[K, V](size)
	}
}

func WithLogger[K comparable, V any](logger hclog.Logger) Option[K, V] {
	return func(t *table[K, V]) {
		t.logger = logger
	}
}

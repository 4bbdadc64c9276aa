package lpmap

import (
	"iter"
	"sync"
)

// Map is a hash map with open addressing and linear probing, guarded by
// a single reader-writer lock. Get and the other read-only accessors share
// the lock; every mutation holds it exclusively, including the rehash that
// an insert may trigger, so growth is atomic with respect to other callers.
//
// Iter and All take no lock at all. The caller must make sure nothing
// mutates the map while such an iteration is in progress, or use Range.
type Map[K comparable, V any] struct {
	mu sync.RWMutex
	table[K, V]
}

// Returns a new map with DefaultCapacity slots, unless WithCapacity says otherwise.
// The only possible error is ErrOutOfMemory.
func New[K comparable, V any](opts ...Option[K, V]) (*Map[K, V], error) {
	var m Map[K, V]
	if err := m.init(opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

// Get returns the value stored for key, passed through the value copy
// function if one was configured. A missing key yields the zero value and false.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.get(key)
}

// Set inserts key or replaces its value. On replacement the old value is
// released and the originally stored key is kept.
func (m *Map[K, V]) Set(key K, value V) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.set(key, value)
}

// Delete removes key, releasing its key and value. Reports whether key was present.
func (m *Map[K, V]) Delete(key K) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.delete(key)
}

// Clear releases every entry. The capacity is retained.
func (m *Map[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reset()
}

// Reserve grows the map so that n entries fit without another rehash.
// It is a no-op if the current capacity already suffices.
func (m *Map[K, V]) Reserve(n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.reserve(n)
}

// Destroy releases every entry and drops the slot array.
// Later calls to Set and Reserve fail with ErrDestroyed.
func (m *Map[K, V]) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.destroy()
}

func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.size
}

// Cap returns the number of slots, live or not.
func (m *Map[K, V]) Cap() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.slots)
}

func (m *Map[K, V]) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.stats()
}

// Range calls fn for every entry while holding the read lock, stopping
// early if fn returns false. fn must not call any method of m, not even Get:
// a second read lock deadlocks once a writer is waiting.
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.slots {
		s := &m.slots[i]
		if s.state != slotOccupied {
			continue
		}

		if !fn(s.key, s.value) {
			return
		}
	}
}

// Iter returns a cursor positioned before the first slot. See Iterator.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{t: &m.table}
}

// All is Iter in range-over-func form. It takes no lock.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := m.Iter()
		for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
			if !yield(k, v) {
				return
			}
		}
	}
}

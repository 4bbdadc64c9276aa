package lpmap

import "iter"

// Set is a set-like data structure on top of Map. It only stores keys;
// the value slot is struct{}, so it costs no more than the slot state byte
// and padding.
type Set[K comparable] struct {
	m *Map[K, struct{}]
}

// NewSet accepts the same options as New. Value-related options are
// meaningless for a set and have no visible effect.
func NewSet[K comparable](opts ...Option[K, struct{}]) (*Set[K], error) {
	m, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return &Set[K]{m: m}, nil
}

// Puts a key in the set.
// Returns whether the key is new.
func (ss *Set[K]) Add(key K) (bool, error) {
	ss.m.mu.Lock()
	defer ss.m.mu.Unlock()

	if ss.m.find(key) >= 0 {
		return false, nil
	}

	if err := ss.m.set(key, struct{}{}); err != nil {
		return false, err
	}

	return true, nil
}

func (ss *Set[K]) Has(key K) bool {
	_, ok := ss.m.Get(key)
	return ok
}

func (ss *Set[K]) Remove(key K) bool {
	return ss.m.Delete(key)
}

func (ss *Set[K]) Len() int {
	return ss.m.Len()
}

func (ss *Set[K]) Clear() {
	ss.m.Clear()
}

func (ss *Set[K]) Reserve(n int) error {
	return ss.m.Reserve(n)
}

func (ss *Set[K]) Stats() Stats {
	return ss.m.Stats()
}

// All yields every key. Like Map.All, it takes no lock.
func (ss *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range ss.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

package lpmap

import (
	"fmt"
	"hash/maphash"
	"runtime"

	"github.com/hashicorp/go-hclog"
)

// table is the unsynchronized open-addressing engine behind Map.
// Collisions are resolved with linear probing, deletions leave tombstones
// behind, and tombstones are only reclaimed by a rehash or a reset.
type table[K comparable, V any] struct {
	slots []slot[K, V]

	size    int
	deleted int
	resizes int

	initCapacity int
	maxCapacity  int
	destroyed    bool

	hashFunc     HashFunc[K]
	equalFunc    EqualFunc[K]
	releaseKey   func(K)
	releaseValue func(V)
	copyValue    func(V) V

	logger hclog.Logger

	emptyK K
	emptyV V
}

func (t *table[K, V]) init(opts ...Option[K, V]) error {
	t.initCapacity = DefaultCapacity

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	if t.equalFunc == nil {
		t.equalFunc = EqualComparable[K]
	}

	if t.logger == nil {
		t.logger = hclog.NewNullLogger()
	}

	slots, err := t.allocSlots(t.initCapacity)
	if err != nil {
		return err
	}

	t.slots = slots

	return nil
}

// allocSlots is the only place slot arrays are allocated. It never touches
// the table, so a failure leaves the current slots in place.
func (t *table[K, V]) allocSlots(capacity int) (slots []slot[K, V], err error) {
	if t.maxCapacity > 0 && capacity > t.maxCapacity {
		return nil, fmt.Errorf("%w: %d slots exceed the limit of %d", ErrOutOfMemory, capacity, t.maxCapacity)
	}

	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}

			err = fmt.Errorf("%w: %d slots: %v", ErrOutOfMemory, capacity, rerr)
		}
	}()

	return make([]slot[K, V], capacity), nil
}

func (t *table[K, V]) index(key K, capacity int) int {
	return int(uint64(t.hashFunc(key)) % uint64(capacity))
}

// find returns the slot index holding key, or -1.
func (t *table[K, V]) find(key K) int {
	capacity := len(t.slots)
	if capacity == 0 {
		return -1
	}

	idx := t.index(key, capacity)
	for p := 0; p < capacity; p++ {
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			return -1
		case slotOccupied:
			if t.equalFunc(s.key, key) {
				return idx
			}
		}

		// Deleted slots don't stop the search: the key may have been
		// placed past them before they were deleted.
		if idx++; idx == capacity {
			idx = 0
		}
	}

	return -1
}

func (t *table[K, V]) get(key K) (V, bool) {
	idx := t.find(key)
	if idx < 0 {
		return t.emptyV, false
	}

	value := t.slots[idx].value
	if t.copyValue != nil {
		value = t.copyValue(value)
	}

	return value, true
}

func (t *table[K, V]) set(key K, value V) error {
	if t.destroyed {
		return ErrDestroyed
	}

	if err := t.maybeRehash(); err != nil {
		return err
	}

	var (
		capacity  = len(t.slots)
		idx       = t.index(key, capacity)
		tombstone = -1
	)

	for p := 0; p < capacity; p++ {
		s := &t.slots[idx]

		switch s.state {
		case slotEmpty:
			if tombstone >= 0 {
				idx = tombstone
				t.deleted--
			}

			t.occupy(idx, key, value)

			return nil
		case slotOccupied:
			if t.equalFunc(s.key, key) {
				// The stored key stays, only the value is replaced.
				if t.releaseValue != nil {
					t.releaseValue(s.value)
				}

				s.value = value

				return nil
			}
		case slotDeleted:
			if tombstone < 0 {
				tombstone = idx
			}
		}

		if idx++; idx == capacity {
			idx = 0
		}
	}

	if tombstone >= 0 {
		t.deleted--
		t.occupy(tombstone, key, value)

		return nil
	}

	return fmt.Errorf("%w: no free slot among %d", ErrOutOfMemory, capacity)
}

func (t *table[K, V]) occupy(idx int, key K, value V) {
	s := &t.slots[idx]
	s.key = key
	s.value = value
	s.state = slotOccupied

	t.size++
}

// maybeRehash runs before every insert. Crossing the 3/4 load factor, or
// holding more tombstones than half the live entries, doubles the capacity.
// Either way the rehash drops every tombstone.
func (t *table[K, V]) maybeRehash() error {
	capacity := len(t.slots)

	if 4*(t.size+t.deleted) > 3*capacity || t.deleted > t.size/2 {
		return t.rehash(grown(capacity))
	}

	return nil
}

func (t *table[K, V]) rehash(capacity int) error {
	slots, err := t.allocSlots(capacity)
	if err != nil {
		t.logger.Warn("rehash failed", "capacity", len(t.slots), "requested", capacity, "error", err)
		return err
	}

	size := 0
	for i := range t.slots {
		s := &t.slots[i]
		if s.state != slotOccupied {
			continue
		}

		idx := t.index(s.key, capacity)
		for slots[idx].state != slotEmpty {
			if idx++; idx == capacity {
				idx = 0
			}
		}

		slots[idx] = *s
		size++
	}

	t.logger.Debug("rehashed",
		"old_capacity", len(t.slots),
		"new_capacity", capacity,
		"size", size,
		"purged_tombstones", t.deleted,
	)

	t.slots = slots
	t.size = size
	t.deleted = 0
	t.resizes++

	return nil
}

func (t *table[K, V]) delete(key K) bool {
	idx := t.find(key)
	if idx < 0 {
		return false
	}

	s := &t.slots[idx]
	t.release(s)

	s.key = t.emptyK
	s.value = t.emptyV
	s.state = slotDeleted

	t.size--
	t.deleted++

	return true
}

func (t *table[K, V]) release(s *slot[K, V]) {
	if t.releaseKey != nil {
		t.releaseKey(s.key)
	}

	if t.releaseValue != nil {
		t.releaseValue(s.value)
	}
}

func (t *table[K, V]) releaseAll() {
	for i := range t.slots {
		if s := &t.slots[i]; s.state == slotOccupied {
			t.release(s)
		}
	}
}

// reset releases every entry and marks all slots empty, keeping the capacity.
func (t *table[K, V]) reset() {
	t.releaseAll()
	clear(t.slots)

	t.size = 0
	t.deleted = 0
}

// reserve makes room for n live entries, so that inserting up to n entries
// triggers no further rehash. It never shrinks.
func (t *table[K, V]) reserve(n int) error {
	if t.destroyed {
		return ErrDestroyed
	}

	want := max(slotsFor(n), t.size+t.deleted)
	if want <= len(t.slots) {
		return nil
	}

	return t.rehash(want)
}

func (t *table[K, V]) destroy() {
	if t.destroyed {
		return
	}

	t.releaseAll()
	t.logger.Debug("destroyed", "capacity", len(t.slots), "size", t.size)

	t.slots = nil
	t.size = 0
	t.deleted = 0
	t.destroyed = true
}

func (t *table[K, V]) stats() Stats {
	s := Stats{
		Size:       t.size,
		Tombstones: t.deleted,
		Capacity:   len(t.slots),
		Resizes:    t.resizes,
	}

	if s.Capacity > 0 {
		s.LoadFactor = float32(s.Size+s.Tombstones) / float32(s.Capacity)
		s.TombstonesCapacityRatio = float32(s.Tombstones) / float32(s.Capacity)
	}

	if s.Size > 0 {
		s.TombstonesSizeRatio = float32(s.Tombstones) / float32(s.Size)
	}

	return s
}

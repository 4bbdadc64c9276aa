package lpmap

// Iterator walks the slot array once, front to back, yielding occupied slots.
// It holds no lock and owns nothing. Mutating the map while an iterator is
// in use is a data race and the behavior is undefined.
type Iterator[K comparable, V any] struct {
	t     *table[K, V]
	index int
}

// Next returns the next entry, or ok == false once the slots are exhausted.
// Values are returned as stored; the value copy function is not applied.
func (it *Iterator[K, V]) Next() (key K, value V, ok bool) {
	slots := it.t.slots

	for it.index < len(slots) {
		s := &slots[it.index]
		it.index++

		if s.state == slotOccupied {
			return s.key, s.value, true
		}
	}

	return key, value, false
}

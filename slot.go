package lpmap

const (
	// DefaultCapacity is the capacity every map starts with,
	// and the floor for any capacity passed to WithCapacity.
	DefaultCapacity = 16

	slotEmpty    uint8 = 0
	slotOccupied uint8 = 1
	slotDeleted  uint8 = 2
)

type slot[K comparable, V any] struct {
	key   K
	value V

	// A zero-valued slot is empty, so a freshly made slot array
	// needs no initialization pass.
	state uint8
}

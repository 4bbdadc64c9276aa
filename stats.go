package lpmap

import (
	"fmt"
	"strings"
)

type Stats struct {
	Size       int
	Tombstones int
	Capacity   int

	// LoadFactor counts tombstones too, the same way the growth check does.
	LoadFactor              float32
	TombstonesCapacityRatio float32
	TombstonesSizeRatio     float32

	// Resizes is the number of rehashes since the map was created,
	// including the ones that only purged tombstones.
	Resizes int
}

func (s Stats) String() string {
	var sb strings.Builder
	sb.WriteString("Stats{")
	fmt.Fprintf(&sb, "Size: %d, ", s.Size)
	fmt.Fprintf(&sb, "Tombstones: %d, ", s.Tombstones)
	fmt.Fprintf(&sb, "Capacity: %d, ", s.Capacity)
	fmt.Fprintf(&sb, "LoadFactor: %.3f, ", s.LoadFactor)
	fmt.Fprintf(&sb, "TombstonesCapacityRatio: %.3f, ", s.TombstonesCapacityRatio)
	fmt.Fprintf(&sb, "TombstonesSizeRatio: %.3f, ", s.TombstonesSizeRatio)
	fmt.Fprintf(&sb, "Resizes: %d", s.Resizes)
	sb.WriteString("}")

	return sb.String()
}

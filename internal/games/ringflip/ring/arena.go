package ring

import (
	"maps"
	"slices"
)

// Arena owns every live ring, keyed by spawn index. Rings refer to each
// other by index so a removed ring simply stops resolving.
type Arena struct {
	rings     map[int]*Ring
	nextIndex int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{rings: make(map[int]*Ring)}
}

// Add stores r under the next spawn index and returns the stored ring.
func (a *Arena) Add(r Ring) *Ring {
	r.index = a.nextIndex
	a.nextIndex++
	stored := &r
	a.rings[r.index] = stored
	return stored
}

// Get looks up a live ring.
func (a *Arena) Get(index int) (*Ring, bool) {
	r, ok := a.rings[index]
	return r, ok
}

// Remove destroys a ring. Removing an absent index is a no-op.
func (a *Arena) Remove(index int) {
	delete(a.rings, index)
}

// Rings returns live rings in spawn order.
func (a *Arena) Rings() []*Ring {
	out := make([]*Ring, 0, len(a.rings))
	for _, i := range slices.Sorted(maps.Keys(a.rings)) {
		out = append(out, a.rings[i])
	}
	return out
}

// Len returns the number of live rings.
func (a *Arena) Len() int {
	return len(a.rings)
}

// Clear removes every ring and restarts indexing at zero.
func (a *Arena) Clear() {
	clear(a.rings)
	a.nextIndex = 0
}

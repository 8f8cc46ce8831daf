package entity

import "fmt"

// ID names an arena slot. The generation changes on every despawn, so an
// ID held past its entity's death no longer resolves.
type ID struct {
	index uint32
	gen   uint32
}

// Valid is false only for the zero ID.
func (id ID) Valid() bool { return id.gen != 0 }

func (id ID) String() string { return fmt.Sprintf("%d#%d", id.index, id.gen) }

type slot[T any] struct {
	gen   uint32
	alive bool
	value T
}

// Arena stores entities in stable slots. Despawned slots are only handed
// out again after Flush, so indexes stay put for the rest of a frame.
type Arena[T any] struct {
	slots   []slot[T]
	free    []uint32
	pending []uint32
	alive   int
}

func (a *Arena[T]) Spawn(v T) ID {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}
	s := &a.slots[idx]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.alive = true
	s.value = v
	a.alive++
	return ID{index: idx, gen: s.gen}
}

// Despawn kills the entity behind id. It reports false for a stale ID.
func (a *Arena[T]) Despawn(id ID) bool {
	s := a.slot(id)
	if s == nil {
		return false
	}
	var zero T
	s.alive = false
	s.value = zero
	a.alive--
	a.pending = append(a.pending, id.index)
	return true
}

func (a *Arena[T]) Get(id ID) (*T, bool) {
	s := a.slot(id)
	if s == nil {
		return nil, false
	}
	return &s.value, true
}

func (a *Arena[T]) Len() int { return a.alive }

// Each visits live entities in slot order. Entities despawned during the
// walk are skipped; entities spawned during it are not visited. The
// pointer handed to fn is only good until the next Spawn.
func (a *Arena[T]) Each(fn func(ID, *T)) {
	n := len(a.slots)
	for i := 0; i < n; i++ {
		s := &a.slots[i]
		if !s.alive {
			continue
		}
		fn(ID{index: uint32(i), gen: s.gen}, &s.value)
	}
}

// IDs returns the live IDs in slot order.
func (a *Arena[T]) IDs() []ID {
	ids := make([]ID, 0, a.alive)
	a.Each(func(id ID, _ *T) { ids = append(ids, id) })
	return ids
}

// Clear despawns everything.
func (a *Arena[T]) Clear() {
	for _, id := range a.IDs() {
		a.Despawn(id)
	}
}

// Flush makes slots despawned since the last Flush reusable.
func (a *Arena[T]) Flush() {
	a.free = append(a.free, a.pending...)
	a.pending = a.pending[:0]
}

func (a *Arena[T]) slot(id ID) *slot[T] {
	if !id.Valid() || int(id.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[id.index]
	if !s.alive || s.gen != id.gen {
		return nil
	}
	return s
}

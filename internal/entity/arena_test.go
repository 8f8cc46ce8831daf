package entity

import "testing"

func TestArenaSpawnGetDespawn(t *testing.T) {
	var a Arena[int]
	id := a.Spawn(7)
	if !id.Valid() {
		t.Fatalf("spawned ID is not valid")
	}
	v, ok := a.Get(id)
	if !ok || *v != 7 {
		t.Fatalf("Get = %v, %v, want 7, true", v, ok)
	}
	if a.Len() != 1 {
		t.Fatalf("Len = %d, want 1", a.Len())
	}

	if !a.Despawn(id) {
		t.Fatalf("Despawn of live ID failed")
	}
	if a.Despawn(id) {
		t.Fatalf("second Despawn of the same ID succeeded")
	}
	if _, ok := a.Get(id); ok {
		t.Fatalf("despawned ID still resolves")
	}
	if a.Len() != 0 {
		t.Fatalf("Len = %d, want 0", a.Len())
	}
}

func TestArenaSlotsReusedOnlyAfterFlush(t *testing.T) {
	var a Arena[string]
	first := a.Spawn("a")
	a.Despawn(first)

	second := a.Spawn("b")
	if second.index == first.index {
		t.Fatalf("slot reused before Flush")
	}

	a.Flush()
	third := a.Spawn("c")
	if third.index != first.index {
		t.Fatalf("slot %d not reused after Flush, got %d", first.index, third.index)
	}
	if third == first {
		t.Fatalf("reused slot kept the old generation")
	}
	if _, ok := a.Get(first); ok {
		t.Fatalf("stale ID resolves to the new occupant")
	}
}

func TestArenaEachSkipsDespawnedDuringWalk(t *testing.T) {
	var a Arena[int]
	ids := []ID{a.Spawn(0), a.Spawn(1), a.Spawn(2)}

	var seen []int
	a.Each(func(id ID, v *int) {
		seen = append(seen, *v)
		if *v == 0 {
			a.Despawn(ids[1])
		}
	})
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 2 {
		t.Fatalf("visited %v, want [0 2]", seen)
	}
}

func TestArenaClear(t *testing.T) {
	var a Arena[int]
	for i := 0; i < 5; i++ {
		a.Spawn(i)
	}
	a.Clear()
	if a.Len() != 0 || len(a.IDs()) != 0 {
		t.Fatalf("Clear left %d entities", a.Len())
	}
	var zero ID
	if _, ok := a.Get(zero); ok {
		t.Fatalf("zero ID reported alive")
	}
}

package store

import (
	"sort"
	"testing"
)

// backends returns one empty instance of every unsynchronized backend,
// keyed by name, behind the shared contract.
func backends() map[string]Backend[uint64, string] {
	return map[string]Backend[uint64, string]{
		"hash":    NewHash[uint64, string](),
		"ordered": NewOrdered[uint64, string](),
	}
}

func TestBackendSetGetRemove(t *testing.T) {
	for name, b := range backends() {
		t.Run(name, func(t *testing.T) {
			if _, ok := b.Get(1); ok {
				t.Fatal("expected empty backend to miss")
			}

			b.Set(1, "a@x.com")
			got, ok := b.Get(1)
			if !ok {
				t.Fatal("expected hit after set")
			}
			if got != "a@x.com" {
				t.Fatalf("value = %q, want %q", got, "a@x.com")
			}

			removed, ok := b.Remove(1)
			if !ok {
				t.Fatal("expected remove to report prior value")
			}
			if removed != "a@x.com" {
				t.Fatalf("removed = %q, want %q", removed, "a@x.com")
			}
			if _, ok := b.Get(1); ok {
				t.Fatal("expected miss after remove")
			}
		})
	}
}

func TestBackendSetOverwrites(t *testing.T) {
	for name, b := range backends() {
		t.Run(name, func(t *testing.T) {
			b.Set(7, "first")
			b.Set(7, "second")

			got, ok := b.Get(7)
			if !ok {
				t.Fatal("expected hit")
			}
			if got != "second" {
				t.Fatalf("value = %q, want %q", got, "second")
			}
			if b.Len() != 1 {
				t.Fatalf("len = %d, want 1", b.Len())
			}
		})
	}
}

func TestBackendRemoveMissing(t *testing.T) {
	for name, b := range backends() {
		t.Run(name, func(t *testing.T) {
			if _, ok := b.Remove(42); ok {
				t.Fatal("expected remove on empty backend to miss")
			}
		})
	}
}

func TestBackendEachVisitsAllEntries(t *testing.T) {
	for name, b := range backends() {
		t.Run(name, func(t *testing.T) {
			b.Set(3, "c")
			b.Set(1, "a")
			b.Set(2, "b")

			seen := make(map[uint64]string)
			b.Each(func(key uint64, value string) bool {
				seen[key] = value
				return true
			})

			if len(seen) != 3 {
				t.Fatalf("visited %d entries, want 3", len(seen))
			}
			for key, want := range map[uint64]string{1: "a", 2: "b", 3: "c"} {
				if seen[key] != want {
					t.Fatalf("entry %d = %q, want %q", key, seen[key], want)
				}
			}
		})
	}
}

func TestBackendEachStopsEarly(t *testing.T) {
	for name, b := range backends() {
		t.Run(name, func(t *testing.T) {
			for i := uint64(1); i <= 5; i++ {
				b.Set(i, "v")
			}

			visited := 0
			b.Each(func(uint64, string) bool {
				visited++
				return visited < 2
			})
			if visited != 2 {
				t.Fatalf("visited %d entries, want 2", visited)
			}
		})
	}
}

func TestOrderedEachAscends(t *testing.T) {
	b := NewOrdered[uint64, string]()
	for _, key := range []uint64{9, 2, 7, 1, 5} {
		b.Set(key, "v")
	}

	var keys []uint64
	b.Each(func(key uint64, _ string) bool {
		keys = append(keys, key)
		return true
	})

	if !sort.SliceIsSorted(keys, func(i, j int) bool { return keys[i] < keys[j] }) {
		t.Fatalf("expected ascending key walk, got %v", keys)
	}
	if len(keys) != 5 {
		t.Fatalf("walked %d keys, want 5", len(keys))
	}
}

func TestOrderedManyEntries(t *testing.T) {
	b := NewOrdered[uint64, string]()
	for i := uint64(0); i < 100; i++ {
		b.Set(i, "v")
	}
	if b.Len() != 100 {
		t.Fatalf("len = %d, want 100", b.Len())
	}

	for i := uint64(0); i < 100; i += 2 {
		if _, ok := b.Remove(i); !ok {
			t.Fatalf("expected key %d to be present", i)
		}
	}
	if b.Len() != 50 {
		t.Fatalf("len = %d, want 50", b.Len())
	}
	if _, ok := b.Get(50); ok {
		t.Fatal("expected removed key 50 to miss")
	}
	if _, ok := b.Get(51); !ok {
		t.Fatal("expected key 51 to survive")
	}
}

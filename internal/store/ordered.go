package store

import (
	"cmp"

	"github.com/google/btree"
)

// btreeDegree controls node fan-out; the library default suits small stores.
const btreeDegree = 2

type entry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// Ordered is a B-tree backed backend with O(log n) operations.
// Each walks entries in ascending key order.
type Ordered[K cmp.Ordered, V any] struct {
	tree *btree.BTreeG[entry[K, V]]
}

// NewOrdered creates an empty ordered backend.
func NewOrdered[K cmp.Ordered, V any]() *Ordered[K, V] {
	less := func(a, b entry[K, V]) bool { return a.key < b.key }
	return &Ordered[K, V]{tree: btree.NewG(btreeDegree, less)}
}

// Set inserts or overwrites the value at key.
func (o *Ordered[K, V]) Set(key K, value V) {
	o.tree.ReplaceOrInsert(entry[K, V]{key: key, value: value})
}

// Get returns the value at key when present.
func (o *Ordered[K, V]) Get(key K) (V, bool) {
	item, ok := o.tree.Get(entry[K, V]{key: key})
	return item.value, ok
}

// Remove deletes and returns the prior value at key when present.
func (o *Ordered[K, V]) Remove(key K) (V, bool) {
	item, ok := o.tree.Delete(entry[K, V]{key: key})
	return item.value, ok
}

// Each calls fn for every entry in ascending key order until fn returns false.
func (o *Ordered[K, V]) Each(fn func(key K, value V) bool) {
	o.tree.Ascend(func(item entry[K, V]) bool {
		return fn(item.key, item.value)
	})
}

// Len returns the number of live entries.
func (o *Ordered[K, V]) Len() int {
	return o.tree.Len()
}

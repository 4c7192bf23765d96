// Package store provides interchangeable key/value storage backends.
//
// Every backend satisfies the same Backend contract so callers can bind a
// concrete implementation at construction time (generics) or hold one behind
// the interface and pick it at run time. Backends are not synchronized;
// Guard wraps any of them for concurrent use.
package store

// Backend is the storage contract shared by every backend.
//
// Set inserts or overwrites; Get and Remove report absence through their
// second return value. Each walks live entries until fn returns false;
// whether the walk is ordered depends on the implementation.
type Backend[K comparable, V any] interface {
	Set(key K, value V)
	Get(key K) (V, bool)
	Remove(key K) (V, bool)
	Each(fn func(key K, value V) bool)
	Len() int
}

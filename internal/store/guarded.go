package store

import "sync"

// Guarded wraps a backend with a read-write mutex so it can be shared
// across goroutines. The inner backend must not be used directly once
// guarded.
type Guarded[K comparable, V any] struct {
	mu    sync.RWMutex
	inner Backend[K, V]
}

// Guard wraps inner for concurrent use.
func Guard[K comparable, V any](inner Backend[K, V]) *Guarded[K, V] {
	return &Guarded[K, V]{inner: inner}
}

// Set inserts or overwrites the value at key.
func (g *Guarded[K, V]) Set(key K, value V) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.inner.Set(key, value)
}

// Get returns the value at key when present.
func (g *Guarded[K, V]) Get(key K) (V, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.inner.Get(key)
}

// Remove deletes and returns the prior value at key when present.
func (g *Guarded[K, V]) Remove(key K) (V, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.inner.Remove(key)
}

// Each calls fn for every entry until fn returns false. The lock is held
// for the whole walk; fn must not call back into the same backend.
func (g *Guarded[K, V]) Each(fn func(key K, value V) bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	g.inner.Each(fn)
}

// Len returns the number of live entries.
func (g *Guarded[K, V]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.inner.Len()
}

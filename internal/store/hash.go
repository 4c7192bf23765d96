package store

// Hash is a map-backed backend with average O(1) operations.
// Each walks entries in unspecified order.
type Hash[K comparable, V any] struct {
	entries map[K]V
}

// NewHash creates an empty hash backend.
func NewHash[K comparable, V any]() *Hash[K, V] {
	return &Hash[K, V]{entries: make(map[K]V)}
}

// Set inserts or overwrites the value at key.
func (h *Hash[K, V]) Set(key K, value V) {
	h.entries[key] = value
}

// Get returns the value at key when present.
func (h *Hash[K, V]) Get(key K) (V, bool) {
	value, ok := h.entries[key]
	return value, ok
}

// Remove deletes and returns the prior value at key when present.
func (h *Hash[K, V]) Remove(key K) (V, bool) {
	value, ok := h.entries[key]
	if ok {
		delete(h.entries, key)
	}
	return value, ok
}

// Each calls fn for every entry until fn returns false.
func (h *Hash[K, V]) Each(fn func(key K, value V) bool) {
	for key, value := range h.entries {
		if !fn(key, value) {
			return
		}
	}
}

// Len returns the number of live entries.
func (h *Hash[K, V]) Len() int {
	return len(h.entries)
}

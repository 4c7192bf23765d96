// Package storage defines the persistence contract for user records.
//
// The interface exists so repository snapshots can depend on stable
// semantics without coupling to SQLite schema details. Unlike the in-memory
// backend contract in internal/store, Store operations take a context and
// can fail.
package storage

// Package sqlite provides SQLite-backed user persistence.
//
// It is the on-disk store used by the demo binary to snapshot repository
// contents between runs.
package sqlite

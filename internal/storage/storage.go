// Package storage persists the four entity collections as whole JSON arrays
// behind a small record-store contract. Backends are interchangeable: a
// directory of JSON files (the canonical on-disk format), an embedded sqlite
// database, or memory for tests. There are no transactions across
// collections; callers serialize their own read-modify-write cycles.
package storage

import "context"

// Collection names a top-level entity list. The string doubles as the
// storage unit name (file stem, row key).
type Collection string

const (
	Workers  Collection = "workers"
	Periods  Collection = "periods"
	Entries  Collection = "entries"
	Payments Collection = "payments"
)

// RecordStore loads and saves one collection at a time.
//
// Load fills out (a pointer to a slice) with the stored records, leaving it
// empty when the collection is absent. Corrupt stored data is treated as an
// empty collection, not an error: the store logs the loss and lets the
// caller proceed.
//
// Save replaces the entire collection. Within a process, writers are
// expected to hold the owning repository's lock, so readers never observe a
// partial write.
type RecordStore interface {
	Load(kind Collection, out any) error
	Save(kind Collection, records any) error
}

// Pinger is implemented by backends that can probe their storage for the
// health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

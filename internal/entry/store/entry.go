package store

import (
	"sync"

	"github.com/pharmalife/timetracker/internal"
	entryModel "github.com/pharmalife/timetracker/internal/core/datamodel/entry"
	"github.com/pharmalife/timetracker/internal/storage"
)

// Repository persists the entry collection. Insert holds the lock across the
// duplicate check and the write, so two racing inserts for the same
// (userId, date) cannot both land.
type Repository struct {
	store storage.RecordStore
	mu    sync.Mutex
}

func NewRepository(store storage.RecordStore) *Repository {
	return &Repository{store: store}
}

func (r *Repository) All() ([]*entryModel.Entry, error) {
	var entries []*entryModel.Entry
	if err := r.store.Load(storage.Entries, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Insert appends e, rejecting it when an entry for the same (userId, date)
// already exists.
func (r *Repository) Insert(e *entryModel.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.All()
	if err != nil {
		return err
	}

	for _, existing := range entries {
		if existing.UserID == e.UserID && existing.Date == e.Date {
			return internal.ErrDuplicateEntry
		}
	}

	entries = append(entries, e)
	return r.store.Save(storage.Entries, entries)
}

// Delete removes the entry by id. Deleting an absent id is a no-op.
func (r *Repository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.All()
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return r.store.Save(storage.Entries, kept)
}

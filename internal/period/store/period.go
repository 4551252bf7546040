package store

import (
	"sync"

	periodModel "github.com/pharmalife/timetracker/internal/core/datamodel/period"
	"github.com/pharmalife/timetracker/internal/storage"
)

// Repository persists the period collection. Every read-modify-write cycle
// holds mu so concurrent seeding or edits cannot lose updates.
type Repository struct {
	store storage.RecordStore
	mu    sync.Mutex
}

func NewRepository(store storage.RecordStore) *Repository {
	return &Repository{store: store}
}

func (r *Repository) All() ([]*periodModel.Period, error) {
	var periods []*periodModel.Period
	if err := r.store.Load(storage.Periods, &periods); err != nil {
		return nil, err
	}
	return periods, nil
}

// SeedIfEmpty persists gen() when the collection is empty and returns the
// stored periods either way.
func (r *Repository) SeedIfEmpty(gen func() []*periodModel.Period) ([]*periodModel.Period, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	periods, err := r.All()
	if err != nil {
		return nil, err
	}
	if len(periods) > 0 {
		return periods, nil
	}

	periods = gen()
	if err := r.store.Save(storage.Periods, periods); err != nil {
		return nil, err
	}
	return periods, nil
}

// ReplaceAll overwrites the whole collection. Used by the seeder command.
func (r *Repository) ReplaceAll(periods []*periodModel.Period) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Save(storage.Periods, periods)
}

// Update applies fn to the period with the given id and persists the
// collection. Returns (nil, nil) when the id is unknown.
func (r *Repository) Update(id string, fn func(*periodModel.Period)) (*periodModel.Period, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	periods, err := r.All()
	if err != nil {
		return nil, err
	}

	for _, p := range periods {
		if p.ID == id {
			fn(p)
			if err := r.store.Save(storage.Periods, periods); err != nil {
				return nil, err
			}
			return p, nil
		}
	}
	return nil, nil
}

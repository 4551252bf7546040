package store

import (
	"sync"

	workerModel "github.com/pharmalife/timetracker/internal/core/datamodel/worker"
	"github.com/pharmalife/timetracker/internal/storage"
)

// Repository persists the worker collection. A single mutex serializes
// read-modify-write cycles so a create racing an update never drops records.
type Repository struct {
	store storage.RecordStore
	mu    sync.Mutex
}

func NewRepository(store storage.RecordStore) *Repository {
	return &Repository{store: store}
}

// All returns every worker with legacy records backfilled: collections
// written before roles, active flags or app assignments existed load with
// usable defaults.
func (r *Repository) All() ([]*workerModel.Worker, error) {
	var workers []*workerModel.Worker
	if err := r.store.Load(storage.Workers, &workers); err != nil {
		return nil, err
	}
	for _, w := range workers {
		applyDefaults(w)
	}
	return workers, nil
}

func (r *Repository) Get(id string) (*workerModel.Worker, error) {
	workers, err := r.All()
	if err != nil {
		return nil, err
	}
	for _, w := range workers {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}

func (r *Repository) Create(w *workerModel.Worker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	workers, err := r.All()
	if err != nil {
		return err
	}
	workers = append(workers, w)
	return r.store.Save(storage.Workers, workers)
}

// Update applies fn to the worker with the given id and persists the
// collection. Returns (nil, nil) when the id is unknown.
func (r *Repository) Update(id string, fn func(*workerModel.Worker)) (*workerModel.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	workers, err := r.All()
	if err != nil {
		return nil, err
	}
	for _, w := range workers {
		if w.ID == id {
			fn(w)
			if err := r.store.Save(storage.Workers, workers); err != nil {
				return nil, err
			}
			return w, nil
		}
	}
	return nil, nil
}

// Delete removes the worker by id. Deleting an absent id is a no-op.
func (r *Repository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	workers, err := r.All()
	if err != nil {
		return err
	}

	kept := workers[:0]
	for _, w := range workers {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	return r.store.Save(storage.Workers, kept)
}

func applyDefaults(w *workerModel.Worker) {
	if w.Role == "" {
		w.Role = workerModel.RoleMOA
	}
	if w.AssignedApps == nil {
		apps := make([]string, len(workerModel.DefaultAssignedApps))
		copy(apps, workerModel.DefaultAssignedApps)
		w.AssignedApps = apps
	}
}

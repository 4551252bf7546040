package store

import (
	"sync"
	"time"

	paymentModel "github.com/pharmalife/timetracker/internal/core/datamodel/payment"
	"github.com/pharmalife/timetracker/internal/storage"
)

// Repository persists the payment collection, keyed by (periodId, userId).
// Upsert holds the lock across the lookup and the write.
type Repository struct {
	store storage.RecordStore
	mu    sync.Mutex
}

func NewRepository(store storage.RecordStore) *Repository {
	return &Repository{store: store}
}

func (r *Repository) All() ([]*paymentModel.Payment, error) {
	var payments []*paymentModel.Payment
	if err := r.store.Load(storage.Payments, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// Get returns the record for the pair, nil when absent. Absence means the
// implicit Pending state; repositories do not materialize defaults.
func (r *Repository) Get(periodID, userID string) (*paymentModel.Payment, error) {
	payments, err := r.All()
	if err != nil {
		return nil, err
	}
	for _, p := range payments {
		if p.PeriodID == periodID && p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

// Upsert replaces status, notes and updatedAt on the existing record for the
// pair, or appends a new one.
func (r *Repository) Upsert(periodID, userID, status, notes string, updatedAt time.Time) (*paymentModel.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payments, err := r.All()
	if err != nil {
		return nil, err
	}

	for _, p := range payments {
		if p.PeriodID == periodID && p.UserID == userID {
			p.Status = status
			p.Notes = notes
			p.UpdatedAt = updatedAt
			if err := r.store.Save(storage.Payments, payments); err != nil {
				return nil, err
			}
			return p, nil
		}
	}

	p := &paymentModel.Payment{
		PeriodID:  periodID,
		UserID:    userID,
		Status:    status,
		Notes:     notes,
		UpdatedAt: updatedAt,
	}
	payments = append(payments, p)
	if err := r.store.Save(storage.Payments, payments); err != nil {
		return nil, err
	}
	return p, nil
}

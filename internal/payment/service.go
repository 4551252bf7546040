package payment

import (
	"log/slog"
	"time"

	"github.com/pharmalife/timetracker/internal"
	entryModel "github.com/pharmalife/timetracker/internal/core/datamodel/entry"
	paymentModel "github.com/pharmalife/timetracker/internal/core/datamodel/payment"
	periodModel "github.com/pharmalife/timetracker/internal/core/datamodel/period"
	workerModel "github.com/pharmalife/timetracker/internal/core/datamodel/worker"
)

// Repository is the data access contract for payment records.
type Repository interface {
	All() ([]*paymentModel.Payment, error)
	Get(periodID, userID string) (*paymentModel.Payment, error)
	Upsert(periodID, userID, status, notes string, updatedAt time.Time) (*paymentModel.Payment, error)
}

// PeriodFinder resolves a period id against the live period collection.
type PeriodFinder interface {
	Get(id string) (*periodModel.Period, error)
}

// EntrySource lists all logged entries.
type EntrySource interface {
	All() ([]*entryModel.Entry, error)
}

// WorkerSource lists all staff resources.
type WorkerSource interface {
	All() ([]*workerModel.Worker, error)
}

type Service struct {
	repo    Repository
	periods PeriodFinder
	entries EntrySource
	workers WorkerSource
	logger  *slog.Logger

	// Now stamps updatedAt on saves; tests override it.
	Now func() time.Time
}

func NewService(repo Repository, periods PeriodFinder, entries EntrySource, workers WorkerSource, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		periods: periods,
		entries: entries,
		workers: workers,
		logger:  logger,
		Now:     time.Now,
	}
}

// SetStatus upserts the payment record for a (period, worker) pair. Neither
// the period nor the worker is required to exist: payment rows may outlive a
// deleted worker, and referential integrity is deliberately not enforced.
func (s *Service) SetStatus(periodID, userID string, dto SetStatusDTO) (*paymentModel.Payment, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("payment validation failed", "error", err, "period_id", periodID, "user_id", userID)
		return nil, err
	}

	saved, err := s.repo.Upsert(periodID, userID, dto.Status, dto.Notes, s.Now())
	if err != nil {
		s.logger.Error("failed to save payment", "error", err, "period_id", periodID, "user_id", userID)
		return nil, err
	}

	s.logger.Info("payment status saved",
		"period_id", periodID,
		"user_id", userID,
		"status", dto.Status)

	return saved, nil
}

// GetStatus returns the stored record, or nil when none exists. Callers
// render nil as Pending with empty notes.
func (s *Service) GetStatus(periodID, userID string) (*paymentModel.Payment, error) {
	return s.repo.Get(periodID, userID)
}

// HoursForPeriodUser sums the worker's entry durations over the period's
// CURRENT date bounds. Unlike the summary view, which trusts each entry's
// frozen period snapshot, this recomputes from live bounds: editing a
// period's dates changes what this reports for existing entries. That
// divergence mirrors how the payment sheet has always behaved.
func (s *Service) HoursForPeriodUser(periodID, userID string) (float64, error) {
	p, err := s.periods.Get(periodID)
	if err != nil {
		if appErr, ok := internal.IsAppError(err); ok && appErr.Code == internal.ErrCodePeriodNotFound {
			return 0, nil
		}
		return 0, err
	}

	entries, err := s.entries.All()
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, e := range entries {
		if e.UserID == userID && p.Contains(e.Date) {
			total += e.Duration
		}
	}
	return total, nil
}

// PeriodOverview builds the payment sheet for one period: a row per worker
// with live hours and the stored status, defaults applied. The entry and
// payment collections are each loaded once for the whole sheet, not once per
// worker.
func (s *Service) PeriodOverview(periodID string) ([]*OverviewRow, error) {
	p, err := s.periods.Get(periodID)
	if err != nil {
		return nil, err
	}

	workers, err := s.workers.All()
	if err != nil {
		s.logger.Error("failed to list workers for payment overview", "error", err)
		return nil, err
	}

	entries, err := s.entries.All()
	if err != nil {
		s.logger.Error("failed to list entries for payment overview", "error", err)
		return nil, err
	}

	hours := make(map[string]float64)
	for _, e := range entries {
		if p.Contains(e.Date) {
			hours[e.UserID] += e.Duration
		}
	}

	stored, err := s.repo.All()
	if err != nil {
		s.logger.Error("failed to list payments for payment overview", "error", err)
		return nil, err
	}
	records := make(map[string]*paymentModel.Payment)
	for _, rec := range stored {
		if rec.PeriodID == periodID {
			records[rec.UserID] = rec
		}
	}

	rows := make([]*OverviewRow, 0, len(workers))
	for _, w := range workers {
		row := &OverviewRow{
			UserID: w.ID,
			Name:   w.Name,
			Role:   w.Role,
			Hours:  hours[w.ID],
			Status: paymentModel.StatusPending,
		}
		if rec, ok := records[w.ID]; ok {
			row.Status = rec.Status
			row.Notes = rec.Notes
		}
		rows = append(rows, row)
	}

	return rows, nil
}

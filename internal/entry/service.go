package entry

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/pharmalife/timetracker/internal"
	entryModel "github.com/pharmalife/timetracker/internal/core/datamodel/entry"
	periodModel "github.com/pharmalife/timetracker/internal/core/datamodel/period"
	workerModel "github.com/pharmalife/timetracker/internal/core/datamodel/worker"
)

// Repository is the data access contract for entries.
type Repository interface {
	All() ([]*entryModel.Entry, error)
	Insert(e *entryModel.Entry) error
	Delete(id string) error
}

// WorkerFinder looks up the resource an entry is logged for.
type WorkerFinder interface {
	Get(id string) (*workerModel.Worker, error)
}

// PeriodResolver maps an entry date to its containing pay period, nil when
// no period covers it.
type PeriodResolver interface {
	ResolveDate(date string) (*periodModel.Period, error)
}

type Service struct {
	repo    Repository
	workers WorkerFinder
	periods PeriodResolver
	logger  *slog.Logger
}

func NewService(repo Repository, workers WorkerFinder, periods PeriodResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		workers: workers,
		periods: periods,
		logger:  logger,
	}
}

// Create validates and records a time entry. The worker's name and the
// resolved period are snapshotted into the entry and never revisited: later
// edits to the period's dates or the worker's name do not rewrite history
// here. Fails with a duplicate-entry conflict when the resource already has
// an entry on that date.
func (s *Service) Create(dto CreateEntryDTO) (*entryModel.Entry, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("entry validation failed", "error", err, "user_id", dto.UserID)
		return nil, err
	}

	w, err := s.workers.Get(dto.UserID)
	if err != nil {
		s.logger.Error("failed to look up worker for entry", "error", err, "user_id", dto.UserID)
		return nil, err
	}
	if w == nil {
		return nil, internal.ErrWorkerNotFound
	}

	p, err := s.periods.ResolveDate(dto.Date)
	if err != nil {
		s.logger.Error("failed to resolve period for entry", "error", err, "date", dto.Date)
		return nil, err
	}

	e := &entryModel.Entry{
		ID:        uuid.NewString(),
		UserID:    w.ID,
		UserName:  w.Name,
		Date:      dto.Date,
		StartTime: dto.StartTime,
		EndTime:   dto.EndTime,
		Duration:  CalculateDuration(dto.StartTime, dto.EndTime),
		Period:    p,
	}

	if err := s.repo.Insert(e); err != nil {
		if appErr, ok := internal.IsAppError(err); ok && appErr.Code == internal.ErrCodeDuplicateEntry {
			s.logger.Warn("duplicate entry rejected", "user_id", dto.UserID, "date", dto.Date)
		} else {
			s.logger.Error("failed to save entry", "error", err, "user_id", dto.UserID)
		}
		return nil, err
	}

	s.logger.Info("entry created",
		"entry_id", e.ID,
		"user_id", e.UserID,
		"date", e.Date,
		"duration", e.Duration)

	return e, nil
}

// List returns entries, optionally filtered by worker, newest first by
// (date, startTime).
func (s *Service) List(userID string) ([]*entryModel.Entry, error) {
	entries, err := s.repo.All()
	if err != nil {
		s.logger.Error("failed to list entries", "error", err)
		return nil, err
	}

	if userID != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if e.UserID == userID {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].StartTime > entries[j].StartTime
	})

	return entries, nil
}

// Delete removes an entry by id; deleting an already-deleted id succeeds
// and changes nothing.
func (s *Service) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete entry", "error", err, "entry_id", id)
		return err
	}
	s.logger.Info("entry deleted", "entry_id", id)
	return nil
}

package period

import (
	"log/slog"
	"sort"
	"time"

	"github.com/pharmalife/timetracker/internal"
	periodModel "github.com/pharmalife/timetracker/internal/core/datamodel/period"
)

// Repository is the data access contract for periods.
type Repository interface {
	All() ([]*periodModel.Period, error)
	SeedIfEmpty(gen func() []*periodModel.Period) ([]*periodModel.Period, error)
	Update(id string, fn func(*periodModel.Period)) (*periodModel.Period, error)
}

// Service owns period lifecycle: lazy seeding of the current year, ordered
// listing, date resolution, and date edits with label regeneration.
type Service struct {
	repo   Repository
	logger *slog.Logger

	// Now is the clock used to pick the seed year; tests override it.
	Now func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		Now:    time.Now,
	}
}

// ensureSeeded generates the current calendar year on first read of an empty
// collection. Other years are never generated implicitly; the seed command
// covers them.
func (s *Service) ensureSeeded() ([]*periodModel.Period, error) {
	seeded := false
	periods, err := s.repo.SeedIfEmpty(func() []*periodModel.Period {
		seeded = true
		return GenerateYear(s.Now().Year())
	})
	if err != nil {
		return nil, err
	}
	if seeded {
		s.logger.Info("seeded default periods", "year", s.Now().Year(), "count", len(periods))
	}
	return periods, nil
}

// List returns all periods ordered most recent first.
func (s *Service) List() ([]*periodModel.Period, error) {
	periods, err := s.ensureSeeded()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(periods, func(i, j int) bool {
		if periods[i].Year != periods[j].Year {
			return periods[i].Year > periods[j].Year
		}
		return periods[i].PeriodNum > periods[j].PeriodNum
	})
	return periods, nil
}

// Get returns the period with the given id.
func (s *Service) Get(id string) (*periodModel.Period, error) {
	periods, err := s.ensureSeeded()
	if err != nil {
		return nil, err
	}
	for _, p := range periods {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, internal.ErrPeriodNotFound
}

// ResolveDate maps a YYYY-MM-DD date to its containing period, or nil when
// the date falls outside every generated period. Callers display "Unknown"
// for nil; it is not an error.
func (s *Service) ResolveDate(date string) (*periodModel.Period, error) {
	periods, err := s.ensureSeeded()
	if err != nil {
		return nil, err
	}
	return FindForDate(periods, date), nil
}

// UpdateDates moves a period's boundaries and regenerates its label.
// PeriodNum, Year and ID stay fixed.
func (s *Service) UpdateDates(id, startDate, endDate string) (*periodModel.Period, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return nil, internal.NewValidationError("startDate must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return nil, internal.NewValidationError("endDate must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	if end.Before(start) {
		return nil, internal.NewValidationError("endDate must not precede startDate", internal.ErrCodeInvalidRange)
	}

	if _, err := s.ensureSeeded(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(id, func(p *periodModel.Period) {
		p.StartDate = start.Format(DateLayout)
		p.EndDate = end.Format(DateLayout)
		p.Label = Label(p.PeriodNum, start, end)
	})
	if err != nil {
		s.logger.Error("failed to update period", "error", err, "period_id", id)
		return nil, err
	}
	if updated == nil {
		return nil, internal.ErrPeriodNotFound
	}

	s.logger.Info("period dates updated",
		"period_id", id,
		"start_date", updated.StartDate,
		"end_date", updated.EndDate)

	return updated, nil
}

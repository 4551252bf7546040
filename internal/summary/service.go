package summary

import (
	"log/slog"
	"sort"

	entryModel "github.com/pharmalife/timetracker/internal/core/datamodel/entry"
)

// EntrySource lists all logged entries.
type EntrySource interface {
	All() ([]*entryModel.Entry, error)
}

type Service struct {
	entries EntrySource
	logger  *slog.Logger
}

func NewService(entries EntrySource, logger *slog.Logger) *Service {
	return &Service{entries: entries, logger: logger}
}

// Build aggregates entries by their frozen period snapshot, then by worker.
// Entries without a snapshot (logged on a date no period covered) are
// skipped. Output is ordered most recent period first; cumulative totals are
// accumulated oldest-first, so the most recent period carries each worker's
// full running total.
//
// Aggregation keys on the snapshot, not on live period bounds, so edits to a
// period's dates never move already-logged hours here. The payment sheet
// recomputes from live bounds instead; the two views can disagree after a
// period edit, and that asymmetry is kept on purpose.
func (s *Service) Build() ([]*PeriodSummary, error) {
	entries, err := s.entries.All()
	if err != nil {
		s.logger.Error("failed to load entries for summary", "error", err)
		return nil, err
	}

	groups := make(map[string]*PeriodSummary)
	workerRows := make(map[string]map[string]*WorkerTotals)

	for _, e := range entries {
		if e.Period == nil {
			continue
		}
		pid := e.Period.ID

		group, ok := groups[pid]
		if !ok {
			group = &PeriodSummary{
				PeriodID:  pid,
				Label:     e.Period.Label,
				Year:      e.Period.Year,
				PeriodNum: e.Period.PeriodNum,
			}
			groups[pid] = group
			workerRows[pid] = make(map[string]*WorkerTotals)
		}

		row, ok := workerRows[pid][e.UserID]
		if !ok {
			name := e.UserName
			if name == "" {
				name = "Unknown"
			}
			row = &WorkerTotals{UserID: e.UserID, Name: name}
			workerRows[pid][e.UserID] = row
			group.Workers = append(group.Workers, row)
		}

		row.Total += e.Duration
	}

	summaries := make([]*PeriodSummary, 0, len(groups))
	for _, g := range groups {
		sort.SliceStable(g.Workers, func(i, j int) bool {
			return g.Workers[i].Name < g.Workers[j].Name
		})
		summaries = append(summaries, g)
	}

	// Most recent first for display.
	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].Year != summaries[j].Year {
			return summaries[i].Year > summaries[j].Year
		}
		return summaries[i].PeriodNum > summaries[j].PeriodNum
	})

	// Second pass, oldest first, to accumulate running totals per worker.
	cumulative := make(map[string]float64)
	for i := len(summaries) - 1; i >= 0; i-- {
		for _, row := range summaries[i].Workers {
			cumulative[row.UserID] += row.Total
			row.Cumulative = cumulative[row.UserID]
		}
	}

	return summaries, nil
}

// Package period generates and maintains the 26 bi-weekly pay cycles of a
// calendar year and resolves calendar dates to their containing cycle.
package period

import (
	"fmt"
	"time"

	periodModel "github.com/pharmalife/timetracker/internal/core/datamodel/period"
)

const (
	// DateLayout is the storage format for all period and entry dates.
	DateLayout = "2006-01-02"

	periodsPerYear = 26
	periodDays     = 14
)

// Label renders the display label for a period, e.g.
// "Period 3: Jan 29 - Feb 11". time's "Jan 2" layout gives the month
// abbreviation and an unpadded day.
func Label(num int, start, end time.Time) string {
	return fmt.Sprintf("Period %d: %s - %s", num, start.Format("Jan 2"), end.Format("Jan 2"))
}

// GenerateYear builds the full period sequence for one calendar year:
// period 1 starts Jan 1, each period spans 14 days inclusive, and the next
// one starts the day after the previous end. Pure function of year.
func GenerateYear(year int) []*periodModel.Period {
	periods := make([]*periodModel.Period, 0, periodsPerYear)
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	for i := 1; i <= periodsPerYear; i++ {
		end := start.AddDate(0, 0, periodDays-1)

		periods = append(periods, &periodModel.Period{
			ID:        fmt.Sprintf("%d-P%d", year, i),
			PeriodNum: i,
			Year:      year,
			StartDate: start.Format(DateLayout),
			EndDate:   end.Format(DateLayout),
			Label:     Label(i, start, end),
		})

		start = end.AddDate(0, 0, 1)
	}

	return periods
}

// FindForDate returns the first period whose inclusive date range contains
// the given YYYY-MM-DD date, or nil when no known period covers it. Callers
// treat nil as "no period", not as an error.
func FindForDate(periods []*periodModel.Period, date string) *periodModel.Period {
	for _, p := range periods {
		if p.Contains(date) {
			return p
		}
	}
	return nil
}

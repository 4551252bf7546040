package entry

import (
	periodModel "github.com/pharmalife/timetracker/internal/core/datamodel/period"
)

// Entry is the persisted shape of one logged work interval. UserName and
// Period are point-in-time snapshots taken at creation: the summary view
// keeps reporting against them even if the worker is later renamed or
// deleted, or the period's dates are edited. Period is nil when the entry's
// date fell outside every known period.
type Entry struct {
	ID        string              `json:"id"`
	UserID    string              `json:"userId"`
	UserName  string              `json:"userName"`
	Date      string              `json:"date"`
	StartTime string              `json:"startTime"`
	EndTime   string              `json:"endTime"`
	Duration  float64             `json:"duration"`
	Period    *periodModel.Period `json:"period"`
}

// Package summary builds the bi-weekly reporting view: per-period,
// per-worker totals with a running cumulative per worker.
package summary

// WorkerTotals is one worker's line within a period: the hours logged in
// that period and the cumulative hours from the start of tracking through
// that period, inclusive.
type WorkerTotals struct {
	UserID     string  `json:"userId"`
	Name       string  `json:"name"`
	Total      float64 `json:"total"`
	Cumulative float64 `json:"cumulative"`
}

// PeriodSummary groups worker totals under the period they were logged in,
// identified by each entry's frozen period snapshot.
type PeriodSummary struct {
	PeriodID  string          `json:"periodId"`
	Label     string          `json:"label"`
	Year      int             `json:"year"`
	PeriodNum int             `json:"periodNum"`
	Workers   []*WorkerTotals `json:"workers"`
}

package period

// Period is the persisted shape of a 14-day pay cycle. Dates are zero-padded
// YYYY-MM-DD strings, so inclusive range checks are safe as plain string
// comparisons. ID, PeriodNum and Year never change after creation; Label is
// derived from the dates and must be regenerated whenever they move.
type Period struct {
	ID        string `json:"id"`
	PeriodNum int    `json:"periodNum"`
	Year      int    `json:"year"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Label     string `json:"label"`
}

// Contains reports whether the date falls inside [StartDate, EndDate].
func (p *Period) Contains(date string) bool {
	return p.StartDate <= date && date <= p.EndDate
}

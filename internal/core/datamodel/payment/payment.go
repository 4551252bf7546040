package payment

import "time"

const (
	StatusPending    = "Pending"
	StatusPaid       = "Paid"
	StatusProcessing = "Processing"
	StatusIssue      = "Issue"
)

var Statuses = []string{StatusPending, StatusPaid, StatusProcessing, StatusIssue}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Payment tracks payroll status for one (period, worker) pair. There is no
// surrogate id; the pair is the key. A missing record means StatusPending
// with empty notes.
type Payment struct {
	PeriodID  string    `json:"periodId"`
	UserID    string    `json:"userId"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	UpdatedAt time.Time `json:"updatedAt"`
}

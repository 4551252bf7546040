package payment

import (
	"github.com/pharmalife/timetracker/internal"
	paymentModel "github.com/pharmalife/timetracker/internal/core/datamodel/payment"
)

// SetStatusDTO is the transport shape for saving a payment record.
type SetStatusDTO struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (d *SetStatusDTO) Validate() error {
	if !paymentModel.ValidStatus(d.Status) {
		return internal.NewValidationFieldError("status",
			"status must be one of Pending, Paid, Processing, Issue",
			internal.ErrCodeInvalidStatus)
	}
	return nil
}

// OverviewRow is one worker's line in a period's payment view: live hours
// plus the stored status, with the Pending/empty defaults already applied.
type OverviewRow struct {
	UserID string  `json:"userId"`
	Name   string  `json:"name"`
	Role   string  `json:"role"`
	Hours  float64 `json:"hours"`
	Status string  `json:"status"`
	Notes  string  `json:"notes"`
}

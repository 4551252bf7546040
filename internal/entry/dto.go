package entry

import (
	"time"

	"github.com/pharmalife/timetracker/internal"
	"github.com/pharmalife/timetracker/internal/period"
)

// CreateEntryDTO is the transport shape for logging time.
type CreateEntryDTO struct {
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (d *CreateEntryDTO) Validate() error {
	if d.UserID == "" {
		return internal.NewValidationFieldError("userId", "userId is required", internal.ErrCodeValidationFailed)
	}
	if _, err := time.Parse(period.DateLayout, d.Date); err != nil {
		return internal.NewValidationFieldError("date", "date must be YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	if _, err := time.Parse(TimeLayout, d.StartTime); err != nil {
		return internal.NewValidationFieldError("startTime", "startTime must be HH:MM", internal.ErrCodeInvalidTime)
	}
	if _, err := time.Parse(TimeLayout, d.EndTime); err != nil {
		return internal.NewValidationFieldError("endTime", "endTime must be HH:MM", internal.ErrCodeInvalidTime)
	}
	return nil
}

package worker

import (
	"github.com/pharmalife/timetracker/internal"
	workerModel "github.com/pharmalife/timetracker/internal/core/datamodel/worker"
)

// CreateWorkerDTO is the transport shape for adding a staff resource. Role
// defaults to MOA and Active to true when omitted, matching how the intake
// form behaves.
type CreateWorkerDTO struct {
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Active       *bool    `json:"active"`
	Password     string   `json:"password"`
	AssignedApps []string `json:"assignedApps"`
}

func (d *CreateWorkerDTO) Validate() error {
	if d.Name == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeNameRequired)
	}
	if d.Role == "" {
		d.Role = workerModel.RoleMOA
	}
	if !workerModel.ValidRole(d.Role) {
		return internal.NewValidationFieldError("role", "role must be one of MOA, PA, RPH, AA", internal.ErrCodeInvalidRole)
	}
	return nil
}

// UpdateWorkerDTO is a partial patch; nil fields are left untouched. An
// empty Password never clears a stored password.
type UpdateWorkerDTO struct {
	Name         *string   `json:"name"`
	Role         *string   `json:"role"`
	Active       *bool     `json:"active"`
	Password     *string   `json:"password"`
	AssignedApps *[]string `json:"assignedApps"`
}

func (d *UpdateWorkerDTO) Validate() error {
	if d.Name != nil && *d.Name == "" {
		return internal.NewValidationFieldError("name", "name must not be empty", internal.ErrCodeNameRequired)
	}
	if d.Role != nil && !workerModel.ValidRole(*d.Role) {
		return internal.NewValidationFieldError("role", "role must be one of MOA, PA, RPH, AA", internal.ErrCodeInvalidRole)
	}
	return nil
}

// WorkerView is the API shape of a worker; the password hash never leaves
// the service.
type WorkerView struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Active       bool     `json:"active"`
	HasPassword  bool     `json:"hasPassword"`
	AssignedApps []string `json:"assignedApps"`
}

func ToView(w *workerModel.Worker) *WorkerView {
	return &WorkerView{
		ID:           w.ID,
		Name:         w.Name,
		Role:         w.Role,
		Active:       w.Active,
		HasPassword:  w.Password != "",
		AssignedApps: w.AssignedApps,
	}
}

func ToViewSlice(workers []*workerModel.Worker) []*WorkerView {
	views := make([]*WorkerView, len(workers))
	for i, w := range workers {
		views[i] = ToView(w)
	}
	return views
}

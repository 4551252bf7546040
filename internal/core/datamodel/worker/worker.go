package worker

import "encoding/json"

// Roles a staff resource can hold.
const (
	RoleMOA = "MOA"
	RolePA  = "PA"
	RoleRPH = "RPH"
	RoleAA  = "AA"
)

var Roles = []string{RoleMOA, RolePA, RoleRPH, RoleAA}

func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// DefaultAssignedApps is granted to workers created or loaded without an
// explicit assignment.
var DefaultAssignedApps = []string{"Time Entry", "Summary", "Resource Management", "Payments", "Periods"}

// Worker is the persisted shape of a staff resource. Field names are the
// wire contract shared with reporting and export consumers; Password holds a
// bcrypt hash, never plaintext.
type Worker struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	Active       bool     `json:"active"`
	Password     string   `json:"password"`
	AssignedApps []string `json:"assignedApps"`
}

// UnmarshalJSON defaults Active to true so records written before the
// active flag existed load as active rather than silently deactivated.
func (w *Worker) UnmarshalJSON(data []byte) error {
	type alias Worker
	aux := alias{Active: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*w = Worker(aux)
	return nil
}

package auth

// LoginDTO is the transport shape for login requests. Password may be empty:
// workers created without a password log in with name alone, as the original
// pick-your-name login did.
type LoginDTO struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d LoginDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	return nil
}

// SessionResponse is returned on successful login.
type SessionResponse struct {
	WorkerID string `json:"workerId"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}

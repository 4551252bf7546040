package auth

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	workerModel "github.com/pharmalife/timetracker/internal/core/datamodel/worker"
)

// WorkerSource lists staff resources for credential checks.
type WorkerSource interface {
	All() ([]*workerModel.Worker, error)
}

type Service struct {
	workers WorkerSource
	tokens  TokenGenerator
	logger  *slog.Logger
}

func NewService(workers WorkerSource, tokens TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		workers: workers,
		tokens:  tokens,
		logger:  logger,
	}
}

// Authenticate matches a worker by name and verifies the password. Workers
// with no stored hash authenticate with an empty password; inactive workers
// are rejected outright.
func (s *Service) Authenticate(dto LoginDTO) (SessionResponse, error) {
	if err := dto.Validate(); err != nil {
		return SessionResponse{}, err
	}

	workers, err := s.workers.All()
	if err != nil {
		s.logger.Error("failed to load workers for login", "error", err)
		return SessionResponse{}, err
	}

	var match *workerModel.Worker
	for _, w := range workers {
		if w.Name == dto.Name {
			match = w
			break
		}
	}
	if match == nil {
		return SessionResponse{}, ErrInvalidCredentials
	}
	if !match.Active {
		return SessionResponse{}, ErrWorkerInactive
	}

	if match.Password == "" {
		if dto.Password != "" {
			return SessionResponse{}, ErrInvalidCredentials
		}
	} else if err := bcrypt.CompareHashAndPassword([]byte(match.Password), []byte(dto.Password)); err != nil {
		return SessionResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(match.ID, match.Name)
	if err != nil {
		s.logger.Error("failed to sign session token", "error", err, "worker_id", match.ID)
		return SessionResponse{}, err
	}

	s.logger.Info("worker logged in", "worker_id", match.ID, "name", match.Name)

	return SessionResponse{
		WorkerID: match.ID,
		Name:     match.Name,
		Role:     match.Role,
		Token:    token,
	}, nil
}

// ValidateToken verifies a session token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateToken(tokenString)
}

package worker

import (
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pharmalife/timetracker/internal"
	workerModel "github.com/pharmalife/timetracker/internal/core/datamodel/worker"
)

// Repository is the data access contract for workers.
type Repository interface {
	All() ([]*workerModel.Worker, error)
	Get(id string) (*workerModel.Worker, error)
	Create(w *workerModel.Worker) error
	Update(id string, fn func(*workerModel.Worker)) (*workerModel.Worker, error)
	Delete(id string) error
}

// Service handles staff resource lifecycle. Deleting a worker deliberately
// leaves that worker's entries and payment records in place; readers fall
// back to each entry's snapshotted name.
type Service struct {
	repo       Repository
	logger     *slog.Logger
	bcryptCost int
}

func NewService(repo Repository, logger *slog.Logger, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

func (s *Service) List() ([]*workerModel.Worker, error) {
	workers, err := s.repo.All()
	if err != nil {
		s.logger.Error("failed to list workers", "error", err)
		return nil, err
	}
	return workers, nil
}

func (s *Service) Get(id string) (*workerModel.Worker, error) {
	w, err := s.repo.Get(id)
	if err != nil {
		s.logger.Error("failed to get worker", "error", err, "worker_id", id)
		return nil, err
	}
	if w == nil {
		return nil, internal.ErrWorkerNotFound
	}
	return w, nil
}

func (s *Service) Create(dto CreateWorkerDTO) (*workerModel.Worker, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("worker validation failed", "error", err)
		return nil, err
	}

	active := true
	if dto.Active != nil {
		active = *dto.Active
	}

	apps := dto.AssignedApps
	if apps == nil {
		apps = make([]string, len(workerModel.DefaultAssignedApps))
		copy(apps, workerModel.DefaultAssignedApps)
	}

	password := ""
	if dto.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
		if err != nil {
			return nil, internal.NewInternalError("failed to hash password", err)
		}
		password = string(hash)
	}

	w := &workerModel.Worker{
		ID:           uuid.NewString(),
		Name:         dto.Name,
		Role:         dto.Role,
		Active:       active,
		Password:     password,
		AssignedApps: apps,
	}

	if err := s.repo.Create(w); err != nil {
		s.logger.Error("failed to create worker", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("worker created", "worker_id", w.ID, "name", w.Name, "role", w.Role)
	return w, nil
}

// Update applies a partial patch. An empty or absent password keeps the
// stored hash; only a non-empty password replaces it.
func (s *Service) Update(id string, dto UpdateWorkerDTO) (*workerModel.Worker, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("worker patch validation failed", "error", err, "worker_id", id)
		return nil, err
	}

	var hashed string
	if dto.Password != nil && *dto.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), s.bcryptCost)
		if err != nil {
			return nil, internal.NewInternalError("failed to hash password", err)
		}
		hashed = string(hash)
	}

	updated, err := s.repo.Update(id, func(w *workerModel.Worker) {
		if dto.Name != nil {
			w.Name = *dto.Name
		}
		if dto.Role != nil {
			w.Role = *dto.Role
		}
		if dto.Active != nil {
			w.Active = *dto.Active
		}
		if hashed != "" {
			w.Password = hashed
		}
		if dto.AssignedApps != nil {
			w.AssignedApps = *dto.AssignedApps
		}
	})
	if err != nil {
		s.logger.Error("failed to update worker", "error", err, "worker_id", id)
		return nil, err
	}
	if updated == nil {
		return nil, internal.ErrWorkerNotFound
	}

	s.logger.Info("worker updated", "worker_id", id)
	return updated, nil
}

// Delete removes a worker; deleting an unknown id is a benign no-op.
func (s *Service) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete worker", "error", err, "worker_id", id)
		return err
	}
	s.logger.Info("worker deleted", "worker_id", id)
	return nil
}

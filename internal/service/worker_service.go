package service

import (
	"context"
	"errors"
	"io"

	"gorm.io/gorm"

	"visionguard-service/internal/model"
	"visionguard-service/internal/repository"
	"visionguard-service/internal/storage"
)

const workerPhotoDir = "workers"

// WorkerService manages the registry of monitored workers and their
// stored photos. It never touches violation rows.
type WorkerService struct {
	workers *repository.WorkerRepository
	files   *storage.Local
}

func NewWorkerService(workers *repository.WorkerRepository, files *storage.Local) *WorkerService {
	return &WorkerService{workers: workers, files: files}
}

// WorkerInput carries the mutable worker fields plus the optional photo
// upload.
type WorkerInput struct {
	EmployeeID string
	Name       string
	PhotoName  string
	Photo      io.Reader
}

func (s *WorkerService) All(ctx context.Context) ([]model.Worker, error) {
	return s.workers.All(ctx)
}

func (s *WorkerService) ByID(ctx context.Context, id int) (*model.Worker, error) {
	worker, err := s.workers.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return worker, nil
}

func (s *WorkerService) Create(ctx context.Context, input WorkerInput) (*model.Worker, error) {
	if input.EmployeeID == "" || input.Name == "" {
		return nil, ErrInvalidInput
	}

	if existing, err := s.workers.ByEmployeeID(ctx, input.EmployeeID); err == nil && existing != nil {
		return nil, ErrConflict
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	worker := &model.Worker{EmployeeID: input.EmployeeID, Name: input.Name}

	if input.Photo != nil {
		url, err := s.files.Save(workerPhotoDir, input.PhotoName, input.Photo)
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedExtension) {
				return nil, ErrInvalidInput
			}
			return nil, err
		}
		worker.ProfilePhotoURL = &url
	}

	if err := s.workers.Create(ctx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

func (s *WorkerService) Update(ctx context.Context, id int, input WorkerInput) (*model.Worker, error) {
	worker, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.EmployeeID != "" && input.EmployeeID != worker.EmployeeID {
		if existing, err := s.workers.ByEmployeeID(ctx, input.EmployeeID); err == nil && existing != nil {
			return nil, ErrConflict
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		worker.EmployeeID = input.EmployeeID
	}
	if input.Name != "" {
		worker.Name = input.Name
	}

	if input.Photo != nil {
		url, err := s.files.Save(workerPhotoDir, input.PhotoName, input.Photo)
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedExtension) {
				return nil, ErrInvalidInput
			}
			return nil, err
		}
		if worker.ProfilePhotoURL != nil {
			_ = s.files.Delete(*worker.ProfilePhotoURL)
		}
		worker.ProfilePhotoURL = &url
	}

	if err := s.workers.Update(ctx, worker); err != nil {
		return nil, err
	}
	return worker, nil
}

func (s *WorkerService) Delete(ctx context.Context, id int) error {
	worker, err := s.ByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.workers.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if worker.ProfilePhotoURL != nil {
		_ = s.files.Delete(*worker.ProfilePhotoURL)
	}
	return nil
}

package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"visionguard-service/internal/model"
	"visionguard-service/internal/repository"
)

// ViolationService is the review surface over the violation stream:
// listing, inspection and status decisions. Detection data itself is
// written by the external ingestion pipeline and stays immutable here.
type ViolationService struct {
	violations *repository.ViolationRepository
}

func NewViolationService(violations *repository.ViolationRepository) *ViolationService {
	return &ViolationService{violations: violations}
}

func (s *ViolationService) List(ctx context.Context, params repository.ListParams) ([]model.Violation, int64, error) {
	return s.violations.List(ctx, params)
}

func (s *ViolationService) ByID(ctx context.Context, id int) (*model.Violation, error) {
	violation, err := s.violations.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return violation, nil
}

// Review moves a violation to a terminal review status with an optional
// note. Pending is not a valid review decision.
func (s *ViolationService) Review(ctx context.Context, id int, status model.ViolationStatus, notes *string) (*model.Violation, error) {
	if status != model.ViolationReviewed && status != model.ViolationDismissed {
		return nil, ErrInvalidInput
	}
	if err := s.violations.UpdateStatus(ctx, id, status, notes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.ByID(ctx, id)
}

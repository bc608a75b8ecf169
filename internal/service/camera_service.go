package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"visionguard-service/internal/model"
	"visionguard-service/internal/repository"
)

type CameraService struct {
	cameras *repository.CameraRepository
}

func NewCameraService(cameras *repository.CameraRepository) *CameraService {
	return &CameraService{cameras: cameras}
}

type CameraInput struct {
	Name        string
	Zone        string
	Description *string
	IsActive    *bool
}

func (s *CameraService) All(ctx context.Context) ([]model.Camera, error) {
	return s.cameras.All(ctx)
}

func (s *CameraService) Zones(ctx context.Context) ([]string, error) {
	return s.cameras.Zones(ctx)
}

func (s *CameraService) ByID(ctx context.Context, id int) (*model.Camera, error) {
	camera, err := s.cameras.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return camera, nil
}

func (s *CameraService) Create(ctx context.Context, input CameraInput) (*model.Camera, error) {
	if input.Name == "" || input.Zone == "" {
		return nil, ErrInvalidInput
	}
	camera := &model.Camera{
		Name:        input.Name,
		Zone:        input.Zone,
		Description: input.Description,
		IsActive:    true,
	}
	if input.IsActive != nil {
		camera.IsActive = *input.IsActive
	}
	if err := s.cameras.Create(ctx, camera); err != nil {
		return nil, err
	}
	return camera, nil
}

func (s *CameraService) Update(ctx context.Context, id int, input CameraInput) (*model.Camera, error) {
	camera, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != "" {
		camera.Name = input.Name
	}
	if input.Zone != "" {
		camera.Zone = input.Zone
	}
	if input.Description != nil {
		camera.Description = input.Description
	}
	if input.IsActive != nil {
		camera.IsActive = *input.IsActive
	}
	if err := s.cameras.Update(ctx, camera); err != nil {
		return nil, err
	}
	return camera, nil
}

func (s *CameraService) Delete(ctx context.Context, id int) error {
	if err := s.cameras.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

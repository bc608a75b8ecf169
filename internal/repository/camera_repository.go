package repository

import (
	"context"

	"gorm.io/gorm"

	"visionguard-service/internal/model"
)

type CameraRepository struct {
	db *gorm.DB
}

func NewCameraRepository(db *gorm.DB) *CameraRepository {
	return &CameraRepository{db: db}
}

func (r *CameraRepository) All(ctx context.Context) ([]model.Camera, error) {
	var cameras []model.Camera
	if err := r.db.WithContext(ctx).Order("zone ASC, name ASC").Find(&cameras).Error; err != nil {
		return nil, err
	}
	return cameras, nil
}

func (r *CameraRepository) ByID(ctx context.Context, id int) (*model.Camera, error) {
	var camera model.Camera
	if err := r.db.WithContext(ctx).First(&camera, id).Error; err != nil {
		return nil, err
	}
	return &camera, nil
}

// Zones returns the distinct zone names in use, for filter dropdowns.
func (r *CameraRepository) Zones(ctx context.Context) ([]string, error) {
	var zones []string
	err := r.db.WithContext(ctx).
		Model(&model.Camera{}).
		Distinct("zone").
		Order("zone ASC").
		Pluck("zone", &zones).Error
	if err != nil {
		return nil, err
	}
	return zones, nil
}

func (r *CameraRepository) Create(ctx context.Context, camera *model.Camera) error {
	return r.db.WithContext(ctx).Create(camera).Error
}

func (r *CameraRepository) Update(ctx context.Context, camera *model.Camera) error {
	return r.db.WithContext(ctx).Save(camera).Error
}

func (r *CameraRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&model.Camera{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

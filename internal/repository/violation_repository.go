package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"visionguard-service/internal/model"
	"visionguard-service/internal/report"
)

type ViolationRepository struct {
	db *gorm.DB
}

func NewViolationRepository(db *gorm.DB) *ViolationRepository {
	return &ViolationRepository{db: db}
}

// Violations implements report.Source: the compiled query pushed into
// SQL, rows denormalized with Worker and Camera, most recent first.
func (r *ViolationRepository) Violations(ctx context.Context, q report.Query) ([]model.Violation, error) {
	query := r.db.WithContext(ctx).
		Model(&model.Violation{}).
		Preload("Worker").
		Preload("Camera").
		Where("violations.detected_at BETWEEN ? AND ?", q.Period.Start, q.Period.End)

	if q.HasZone() {
		query = query.
			Joins("JOIN cameras ON cameras.id = violations.camera_id").
			Where("cameras.zone = ?", q.Zone)
	}
	if q.Type != nil {
		query = query.Where("violations.violation_type = ?", *q.Type)
	}

	var violations []model.Violation
	if err := query.Order("violations.detected_at DESC").Find(&violations).Error; err != nil {
		return nil, err
	}
	return violations, nil
}

// ListParams filters the review listing surface.
type ListParams struct {
	Status *model.ViolationStatus
	Type   *model.PPEType
	Zone   string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

func (r *ViolationRepository) List(ctx context.Context, params ListParams) ([]model.Violation, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Violation{})

	if params.Status != nil {
		query = query.Where("violations.status = ?", *params.Status)
	}
	if params.Type != nil {
		query = query.Where("violations.violation_type = ?", *params.Type)
	}
	if params.Zone != "" {
		query = query.
			Joins("JOIN cameras ON cameras.id = violations.camera_id").
			Where("cameras.zone = ?", params.Zone)
	}
	if params.From != nil {
		query = query.Where("violations.detected_at >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("violations.detected_at <= ?", *params.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := params.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var violations []model.Violation
	err := query.
		Preload("Worker").
		Preload("Camera").
		Order("violations.detected_at DESC").
		Limit(limit).
		Offset(params.Offset).
		Find(&violations).Error
	if err != nil {
		return nil, 0, err
	}
	return violations, total, nil
}

func (r *ViolationRepository) ByID(ctx context.Context, id int) (*model.Violation, error) {
	var violation model.Violation
	err := r.db.WithContext(ctx).
		Preload("Worker").
		Preload("Camera").
		First(&violation, id).Error
	if err != nil {
		return nil, err
	}
	return &violation, nil
}

// UpdateStatus records a review decision. Detection data is immutable;
// only the status and note change.
func (r *ViolationRepository) UpdateStatus(ctx context.Context, id int, status model.ViolationStatus, notes *string) error {
	updates := map[string]interface{}{"status": status}
	if notes != nil {
		updates["notes"] = *notes
	}

	result := r.db.WithContext(ctx).
		Model(&model.Violation{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

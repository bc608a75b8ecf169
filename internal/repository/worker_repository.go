package repository

import (
	"context"

	"gorm.io/gorm"

	"visionguard-service/internal/model"
)

type WorkerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func (r *WorkerRepository) All(ctx context.Context) ([]model.Worker, error) {
	var workers []model.Worker
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *WorkerRepository) ByID(ctx context.Context, id int) (*model.Worker, error) {
	var worker model.Worker
	if err := r.db.WithContext(ctx).First(&worker, id).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepository) ByEmployeeID(ctx context.Context, employeeID string) (*model.Worker, error) {
	var worker model.Worker
	err := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).First(&worker).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepository) Create(ctx context.Context, worker *model.Worker) error {
	return r.db.WithContext(ctx).Create(worker).Error
}

func (r *WorkerRepository) Update(ctx context.Context, worker *model.Worker) error {
	return r.db.WithContext(ctx).Save(worker).Error
}

func (r *WorkerRepository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&model.Worker{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

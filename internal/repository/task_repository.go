package repository

import (
	"context"
	"errors"

	"github.com/collabtrack/project-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// ProjectIDOf resolves the owning project of a task
func (r *GormTaskRepository) ProjectIDOf(ctx context.Context, taskID uint64) (uint64, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Select("project_id").First(&task, taskID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return task.ProjectID, nil
}

// FindDetails loads a task with its comments and contractor
func (r *GormTaskRepository) FindDetails(ctx context.Context, id uint64) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Preload("Comments").
		Preload("Contractor.User").
		First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateNameDescription updates the task's name and description
func (r *GormTaskRepository) UpdateNameDescription(ctx context.Context, id uint64, name, description string) (bool, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	task.Name = name
	task.Description = description
	if err := r.db.WithContext(ctx).Save(&task).Error; err != nil {
		return false, err
	}
	return true, nil
}

// UpdateContractor reassigns the task's contractor membership
func (r *GormTaskRepository) UpdateContractor(ctx context.Context, id uint64, contractorID *uint64) (bool, error) {
	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	err := r.db.WithContext(ctx).Model(&task).Update("contractor_id", contractorID).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the task and its comments in a transaction
func (r *GormTaskRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Task{}, id).Error
	})
}

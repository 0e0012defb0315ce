package repository

import (
	"context"
	"errors"

	"github.com/collabtrack/project-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// CreateWithOwner creates the project and the creator's owner membership atomically.
func (r *GormProjectRepository) CreateWithOwner(ctx context.Context, project *models.Project, ownerUserID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		membership := &models.Membership{
			UserID:    ownerUserID,
			ProjectID: project.ID,
			Rank:      models.RankOwner,
		}
		return tx.Create(membership).Error
	})
}

// FindDetails loads a project with its tasks and members
func (r *GormProjectRepository) FindDetails(ctx context.Context, id uint64) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Tasks").
		Preload("Tasks.Contractor.User").
		Preload("Members").
		Preload("Members.User").
		First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListForUser lists memberships of the user with projects preloaded
func (r *GormProjectRepository) ListForUser(ctx context.Context, userID string) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.WithContext(ctx).
		Preload("Project").
		Where("user_id = ?", userID).
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// UpdateNameDescription updates the project's name and description
func (r *GormProjectRepository) UpdateNameDescription(ctx context.Context, id uint64, name, description string) (bool, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	project.Name = name
	project.Description = description
	if err := r.db.WithContext(ctx).Save(&project).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the project and all related data in a transaction
func (r *GormProjectRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taskIDs []uint64
		if err := tx.Model(&models.Task{}).
			Where("project_id = ?", id).
			Pluck("id", &taskIDs).Error; err != nil {
			return err
		}

		if len(taskIDs) > 0 {
			if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.Membership{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, id).Error
	})
}

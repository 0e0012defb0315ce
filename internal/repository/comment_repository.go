package repository

import (
	"context"
	"errors"

	"github.com/collabtrack/project-api/internal/models"
	"gorm.io/gorm"
)

// GormCommentRepository is a GORM implementation of CommentRepository
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

// Create creates a new comment
func (r *GormCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ProjectIDOf resolves the owning project of a comment through its task
func (r *GormCommentRepository) ProjectIDOf(ctx context.Context, commentID uint64) (uint64, error) {
	var projectIDs []uint64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Joins("JOIN tasks ON tasks.id = comments.task_id").
		Where("comments.id = ?", commentID).
		Limit(1).
		Pluck("tasks.project_id", &projectIDs).Error
	if err != nil {
		return 0, err
	}
	if len(projectIDs) == 0 {
		return 0, nil
	}
	return projectIDs[0], nil
}

// IsAuthoredBy reports whether the comment's author membership belongs to the user
func (r *GormCommentRepository) IsAuthoredBy(ctx context.Context, commentID uint64, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Joins("JOIN memberships ON memberships.id = comments.author_id").
		Where("comments.id = ? AND memberships.user_id = ?", commentID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateContent replaces the comment's content
func (r *GormCommentRepository) UpdateContent(ctx context.Context, id uint64, content string) (bool, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	comment.Content = content
	if err := r.db.WithContext(ctx).Save(&comment).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the comment
func (r *GormCommentRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error
}

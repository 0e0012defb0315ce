package repository

import (
	"context"
	"errors"

	"github.com/collabtrack/project-api/internal/models"
	"gorm.io/gorm"
)

// GormMembershipRepository is a GORM implementation of MembershipRepository
type GormMembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &GormMembershipRepository{db: db}
}

// Create creates a new membership
func (r *GormMembershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

// ProjectIDOf resolves the owning project of a membership
func (r *GormMembershipRepository) ProjectIDOf(ctx context.Context, membershipID uint64) (uint64, error) {
	var membership models.Membership
	err := r.db.WithContext(ctx).Select("project_id").First(&membership, membershipID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return membership.ProjectID, nil
}

// FindByProjectAndUser finds the user's membership in the project
func (r *GormMembershipRepository) FindByProjectAndUser(ctx context.Context, projectID uint64, userID string) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// Exists reports whether the user already holds a membership in the project
func (r *GormMembershipRepository) Exists(ctx context.Context, projectID uint64, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Membership{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateRankExcludingUser sets the membership's rank unless it belongs to excludedUserID
func (r *GormMembershipRepository) UpdateRankExcludingUser(ctx context.Context, membershipID uint64, rank models.Rank, excludedUserID string) (bool, error) {
	var membership models.Membership
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id <> ?", membershipID, excludedUserID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	membership.Rank = rank
	if err := r.db.WithContext(ctx).Save(&membership).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the membership and nulls references pointing at it
func (r *GormMembershipRepository) Remove(ctx context.Context, membershipID uint64) (bool, error) {
	var membership models.Membership
	if err := r.db.WithContext(ctx).First(&membership, membershipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).
			Where("contractor_id = ?", membershipID).
			Update("contractor_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Comment{}).
			Where("author_id = ?", membershipID).
			Update("author_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Membership{}, membershipID).Error
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Package authz answers membership and rank questions for the acting user.
// Predicates are pure existence queries over membership records: an absent or
// unknown caller membership yields false, never an error.
package authz

import (
	"context"

	"github.com/collabtrack/project-api/internal/models"
	"gorm.io/gorm"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// IsProjectOwner reports whether the user holds an owner membership in the
// project.
func (s *Service) IsProjectOwner(ctx context.Context, userID string, projectID uint64) bool {
	var count int64
	s.db.WithContext(ctx).Model(&models.Membership{}).
		Where("user_id = ? AND project_id = ? AND rank = ?", userID, projectID, models.RankOwner).
		Count(&count)
	return count > 0
}

// CanModerateProject reports whether the user holds an owner or moderator
// membership in the project.
func (s *Service) CanModerateProject(ctx context.Context, userID string, projectID uint64) bool {
	var count int64
	s.db.WithContext(ctx).Model(&models.Membership{}).
		Where("user_id = ? AND project_id = ? AND rank IN ?", userID, projectID,
			[]models.Rank{models.RankOwner, models.RankModerator}).
		Count(&count)
	return count > 0
}

// IsProjectMember reports whether the user holds any membership in the
// project.
func (s *Service) IsProjectMember(ctx context.Context, userID string, projectID uint64) bool {
	var count int64
	s.db.WithContext(ctx).Model(&models.Membership{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count)
	return count > 0
}

// CanRemoveMembership decides participant removal. A membership M may be
// removed by the user iff M belongs to the user and M is not an owner
// membership (anyone may leave voluntarily), or the user holds a different
// membership in the same project with rank owner (owners may remove anyone,
// other owners included). A lone owner therefore cannot remove themselves:
// the first clause is blocked by the rank check and no other owner membership
// satisfies the second.
func (s *Service) CanRemoveMembership(ctx context.Context, userID string, membershipID uint64) bool {
	var target models.Membership
	if err := s.db.WithContext(ctx).First(&target, membershipID).Error; err != nil {
		return false
	}

	if target.UserID == userID && target.Rank != models.RankOwner {
		return true
	}

	var count int64
	s.db.WithContext(ctx).Model(&models.Membership{}).
		Where("project_id = ? AND id <> ? AND user_id = ? AND rank = ?",
			target.ProjectID, membershipID, userID, models.RankOwner).
		Count(&count)
	return count > 0
}

package services

import (
	"context"
	"errors"

	"github.com/collabtrack/project-api/internal/authz"
	"github.com/collabtrack/project-api/internal/models"
	"github.com/collabtrack/project-api/internal/repository"
	"github.com/collabtrack/project-api/internal/result"
	"github.com/collabtrack/project-api/internal/validation"
	"gorm.io/gorm"
)

const (
	opAddParticipant        = "AddParticipant"
	opUpdateParticipantRank = "UpdateParticipantRank"
	opDeleteParticipant     = "DeleteParticipant"
)

// ParticipantService runs the membership command pipelines.
type ParticipantService struct {
	membershipRepo repository.MembershipRepository
	userRepo       repository.UserRepository
	authz          *authz.Service
}

// NewParticipantService creates a new ParticipantService.
func NewParticipantService(membershipRepo repository.MembershipRepository, userRepo repository.UserRepository, authz *authz.Service) *ParticipantService {
	return &ParticipantService{
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		authz:          authz,
	}
}

// AddParticipantCommand adds a user to a project by email.
type AddParticipantCommand struct {
	ProjectID uint64 `validate:"required"`
	Email     string `validate:"required,email"`
	Rank      models.Rank
}

// UpdateParticipantRankCommand changes a membership's rank.
type UpdateParticipantRankCommand struct {
	MembershipID uint64 `validate:"required"`
	Rank         models.Rank
}

// AddParticipant adds the user identified by email to the project and returns
// the new membership id. Requires moderation authority. Each user holds at
// most one membership per project.
func (s *ParticipantService) AddParticipant(ctx context.Context, callerID string, cmd AddParticipantCommand) result.Of[uint64] {
	if summary := validation.Struct(cmd); summary != "" {
		return result.FailureOf[uint64](result.Validation(opAddParticipant, summary))
	}
	if !cmd.Rank.Valid() {
		return result.FailureOf[uint64](result.Validation(opAddParticipant, "'Rank' must be owner, moderator or member"))
	}

	if !s.authz.CanModerateProject(ctx, callerID, cmd.ProjectID) {
		return result.FailureOf[uint64](result.NoAccess(opAddParticipant))
	}

	user, err := s.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.FailureOf[uint64](result.NotFound(opAddParticipant, "user not found"))
		}
		return result.FailureOf[uint64](result.Exception(opAddParticipant, err))
	}

	exists, err := s.membershipRepo.Exists(ctx, cmd.ProjectID, user.ID)
	if err != nil {
		return result.FailureOf[uint64](result.Exception(opAddParticipant, err))
	}
	if exists {
		return result.FailureOf[uint64](result.Validation(opAddParticipant, "user is already a participant"))
	}

	membership := &models.Membership{
		UserID:    user.ID,
		ProjectID: cmd.ProjectID,
		Rank:      cmd.Rank,
	}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return result.FailureOf[uint64](result.Exception(opAddParticipant, err))
	}

	return result.Ok(membership.ID)
}

// UpdateParticipantRank changes the rank of a membership. Owner only, and a
// caller can never change their own rank: the mutation matches zero rows for
// a self-target and the operation reports NoAccess.
func (s *ParticipantService) UpdateParticipantRank(ctx context.Context, callerID string, cmd UpdateParticipantRankCommand) result.Result {
	if summary := validation.Struct(cmd); summary != "" {
		return result.Failure(result.Validation(opUpdateParticipantRank, summary))
	}
	if !cmd.Rank.Valid() {
		return result.Failure(result.Validation(opUpdateParticipantRank, "'Rank' must be owner, moderator or member"))
	}

	projectID, err := s.membershipRepo.ProjectIDOf(ctx, cmd.MembershipID)
	if err != nil {
		return result.Failure(result.Exception(opUpdateParticipantRank, err))
	}

	if !s.authz.IsProjectOwner(ctx, callerID, projectID) {
		return result.Failure(result.NoAccess(opUpdateParticipantRank))
	}

	updated, err := s.membershipRepo.UpdateRankExcludingUser(ctx, cmd.MembershipID, cmd.Rank, callerID)
	if err != nil {
		return result.Failure(result.Exception(opUpdateParticipantRank, err))
	}
	if !updated {
		return result.Failure(result.NoAccess(opUpdateParticipantRank))
	}

	return result.Success()
}

// DeleteParticipant removes a membership under the composite removal rule
// (see authz.CanRemoveMembership). Contractor and author references to the
// membership are nulled in the same transaction.
func (s *ParticipantService) DeleteParticipant(ctx context.Context, callerID string, membershipID uint64) result.Result {
	if membershipID == 0 {
		return result.Failure(result.Validation(opDeleteParticipant, "'MembershipID' must not be empty"))
	}

	if !s.authz.CanRemoveMembership(ctx, callerID, membershipID) {
		return result.Failure(result.NoAccess(opDeleteParticipant))
	}

	removed, err := s.membershipRepo.Remove(ctx, membershipID)
	if err != nil {
		return result.Failure(result.Exception(opDeleteParticipant, err))
	}
	if !removed {
		return result.Failure(result.NoAccess(opDeleteParticipant))
	}

	return result.Success()
}

package services

import (
	"context"

	"github.com/collabtrack/project-api/internal/authz"
	"github.com/collabtrack/project-api/internal/models"
	"github.com/collabtrack/project-api/internal/repository"
	"github.com/collabtrack/project-api/internal/result"
	"github.com/collabtrack/project-api/internal/validation"
)

const (
	opCreateComment = "CreateComment"
	opUpdateComment = "UpdateComment"
	opDeleteComment = "DeleteComment"
)

// CommentService runs the comment command pipelines.
type CommentService struct {
	commentRepo    repository.CommentRepository
	taskRepo       repository.TaskRepository
	membershipRepo repository.MembershipRepository
	authz          *authz.Service
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, taskRepo repository.TaskRepository, membershipRepo repository.MembershipRepository, authz *authz.Service) *CommentService {
	return &CommentService{
		commentRepo:    commentRepo,
		taskRepo:       taskRepo,
		membershipRepo: membershipRepo,
		authz:          authz,
	}
}

// CreateCommentCommand adds a comment to a task.
type CreateCommentCommand struct {
	TaskID  uint64 `validate:"required"`
	Content string `validate:"max=500"`
}

// UpdateCommentCommand replaces a comment's content.
type UpdateCommentCommand struct {
	CommentID uint64 `validate:"required"`
	Content   string `validate:"max=500"`
}

// CreateComment adds a comment to the task, authored by the caller's
// membership in the task's project.
func (s *CommentService) CreateComment(ctx context.Context, callerID string, cmd CreateCommentCommand) result.Of[uint64] {
	if summary := validation.Struct(cmd); summary != "" {
		return result.FailureOf[uint64](result.Validation(opCreateComment, summary))
	}

	projectID, err := s.taskRepo.ProjectIDOf(ctx, cmd.TaskID)
	if err != nil {
		return result.FailureOf[uint64](result.Exception(opCreateComment, err))
	}

	if !s.authz.IsProjectMember(ctx, callerID, projectID) {
		return result.FailureOf[uint64](result.NoAccess(opCreateComment))
	}

	author, err := s.membershipRepo.FindByProjectAndUser(ctx, projectID, callerID)
	if err != nil {
		return result.FailureOf[uint64](result.Exception(opCreateComment, err))
	}

	comment := &models.Comment{
		TaskID:   cmd.TaskID,
		AuthorID: &author.ID,
		Content:  cmd.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return result.FailureOf[uint64](result.Exception(opCreateComment, err))
	}

	return result.Ok(comment.ID)
}

// UpdateComment replaces the comment's content. Author only; a comment whose
// author membership was removed matches nobody and reports NoAccess.
func (s *CommentService) UpdateComment(ctx context.Context, callerID string, cmd UpdateCommentCommand) result.Result {
	if summary := validation.Struct(cmd); summary != "" {
		return result.Failure(result.Validation(opUpdateComment, summary))
	}

	isAuthor, err := s.commentRepo.IsAuthoredBy(ctx, cmd.CommentID, callerID)
	if err != nil {
		return result.Failure(result.Exception(opUpdateComment, err))
	}
	if !isAuthor {
		return result.Failure(result.NoAccess(opUpdateComment))
	}

	updated, err := s.commentRepo.UpdateContent(ctx, cmd.CommentID, cmd.Content)
	if err != nil {
		return result.Failure(result.Exception(opUpdateComment, err))
	}
	if !updated {
		return result.Failure(result.NoAccess(opUpdateComment))
	}

	return result.Success()
}

// DeleteComment removes the comment. Allowed for the comment's author and for
// anyone with moderation authority over the comment's project.
func (s *CommentService) DeleteComment(ctx context.Context, callerID string, commentID uint64) result.Result {
	if commentID == 0 {
		return result.Failure(result.Validation(opDeleteComment, "'CommentID' must not be empty"))
	}

	projectID, err := s.commentRepo.ProjectIDOf(ctx, commentID)
	if err != nil {
		return result.Failure(result.Exception(opDeleteComment, err))
	}

	isAuthor, err := s.commentRepo.IsAuthoredBy(ctx, commentID, callerID)
	if err != nil {
		return result.Failure(result.Exception(opDeleteComment, err))
	}

	if !s.authz.CanModerateProject(ctx, callerID, projectID) && !isAuthor {
		return result.Failure(result.NoAccess(opDeleteComment))
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return result.Failure(result.Exception(opDeleteComment, err))
	}

	return result.Success()
}

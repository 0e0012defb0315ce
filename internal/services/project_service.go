package services

import (
	"context"
	"errors"

	"github.com/collabtrack/project-api/internal/authz"
	"github.com/collabtrack/project-api/internal/dto"
	"github.com/collabtrack/project-api/internal/models"
	"github.com/collabtrack/project-api/internal/repository"
	"github.com/collabtrack/project-api/internal/result"
	"github.com/collabtrack/project-api/internal/validation"
	"gorm.io/gorm"
)

const (
	opCreateProject     = "CreateProject"
	opGetProjectsList   = "GetProjectsList"
	opGetProjectDetails = "GetProjectDetails"
	opUpdateProject     = "UpdateProject"
	opDeleteProject     = "DeleteProject"
)

// ProjectService runs the project command pipelines.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	authz       *authz.Service
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, authz *authz.Service) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		authz:       authz,
	}
}

// CreateProjectCommand creates a project owned by the caller.
type CreateProjectCommand struct {
	Name        string `validate:"max=150"`
	Description string `validate:"max=500"`
}

// UpdateProjectCommand replaces the project's name and description.
type UpdateProjectCommand struct {
	ProjectID   uint64 `validate:"required"`
	Name        string `validate:"max=150"`
	Description string `validate:"max=500"`
}

// CreateProject creates the project and seeds the caller's owner membership.
// Any authenticated user may create a project.
func (s *ProjectService) CreateProject(ctx context.Context, callerID string, cmd CreateProjectCommand) result.Of[uint64] {
	if summary := validation.Struct(cmd); summary != "" {
		return result.FailureOf[uint64](result.Validation(opCreateProject, summary))
	}

	project := &models.Project{
		Name:        cmd.Name,
		Description: cmd.Description,
	}
	if err := s.projectRepo.CreateWithOwner(ctx, project, callerID); err != nil {
		return result.FailureOf[uint64](result.Exception(opCreateProject, err))
	}

	return result.Ok(project.ID)
}

// GetProjectsList returns the projects the caller belongs to.
func (s *ProjectService) GetProjectsList(ctx context.Context, callerID string) result.Of[[]dto.ProjectListItem] {
	memberships, err := s.projectRepo.ListForUser(ctx, callerID)
	if err != nil {
		return result.FailureOf[[]dto.ProjectListItem](result.Exception(opGetProjectsList, err))
	}
	return result.Ok(dto.ToProjectListItems(memberships))
}

// GetProjectDetails returns the full project view for a member.
func (s *ProjectService) GetProjectDetails(ctx context.Context, callerID string, projectID uint64) result.Of[dto.ProjectDetails] {
	if projectID == 0 {
		return result.FailureOf[dto.ProjectDetails](result.Validation(opGetProjectDetails, "'ProjectID' must not be empty"))
	}

	if !s.authz.IsProjectMember(ctx, callerID, projectID) {
		return result.FailureOf[dto.ProjectDetails](result.NoAccess(opGetProjectDetails))
	}

	project, err := s.projectRepo.FindDetails(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.FailureOf[dto.ProjectDetails](result.NotFound(opGetProjectDetails, "project not found"))
		}
		return result.FailureOf[dto.ProjectDetails](result.Exception(opGetProjectDetails, err))
	}

	return result.Ok(dto.ToProjectDetails(*project))
}

// UpdateProject replaces the project's name and description.
func (s *ProjectService) UpdateProject(ctx context.Context, callerID string, cmd UpdateProjectCommand) result.Result {
	if summary := validation.Struct(cmd); summary != "" {
		return result.Failure(result.Validation(opUpdateProject, summary))
	}

	if !s.authz.CanModerateProject(ctx, callerID, cmd.ProjectID) {
		return result.Failure(result.NoAccess(opUpdateProject))
	}

	updated, err := s.projectRepo.UpdateNameDescription(ctx, cmd.ProjectID, cmd.Name, cmd.Description)
	if err != nil {
		return result.Failure(result.Exception(opUpdateProject, err))
	}
	if !updated {
		return result.Failure(result.NoAccess(opUpdateProject))
	}

	return result.Success()
}

// DeleteProject removes the project and everything it owns. Owner only.
func (s *ProjectService) DeleteProject(ctx context.Context, callerID string, projectID uint64) result.Result {
	if projectID == 0 {
		return result.Failure(result.Validation(opDeleteProject, "'ProjectID' must not be empty"))
	}

	if !s.authz.IsProjectOwner(ctx, callerID, projectID) {
		return result.Failure(result.NoAccess(opDeleteProject))
	}

	if err := s.projectRepo.Delete(ctx, projectID); err != nil {
		return result.Failure(result.Exception(opDeleteProject, err))
	}

	return result.Success()
}

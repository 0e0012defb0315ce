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
	opCreateTask             = "CreateTask"
	opGetTaskDetails         = "GetTaskDetails"
	opUpdateTask             = "UpdateTask"
	opDeleteTask             = "DeleteTask"
	opReassignTaskContractor = "ReassignTaskContractor"
)

// TaskService runs the task command pipelines.
type TaskService struct {
	taskRepo repository.TaskRepository
	authz    *authz.Service
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, authz *authz.Service) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		authz:    authz,
	}
}

// CreateTaskCommand creates a task inside a project.
type CreateTaskCommand struct {
	ProjectID   uint64 `validate:"required"`
	Name        string `validate:"max=150"`
	Description string `validate:"max=500"`
	Status      models.TaskStatus
}

// UpdateTaskCommand replaces the task's name and description.
type UpdateTaskCommand struct {
	TaskID      uint64 `validate:"required"`
	Name        string `validate:"max=150"`
	Description string `validate:"max=500"`
}

// ReassignTaskContractorCommand moves the task to another contractor
// membership; a nil contractor unassigns it.
type ReassignTaskContractorCommand struct {
	TaskID       uint64 `validate:"required"`
	ContractorID *uint64
}

// CreateTask creates a task in the project. Any member may create tasks.
func (s *TaskService) CreateTask(ctx context.Context, callerID string, cmd CreateTaskCommand) result.Of[uint64] {
	if summary := validation.Struct(cmd); summary != "" {
		return result.FailureOf[uint64](result.Validation(opCreateTask, summary))
	}
	if cmd.Status == "" {
		cmd.Status = models.TaskStatusBacklog
	}
	if !cmd.Status.Valid() {
		return result.FailureOf[uint64](result.Validation(opCreateTask, "'Status' is not a known workflow state"))
	}

	if !s.authz.IsProjectMember(ctx, callerID, cmd.ProjectID) {
		return result.FailureOf[uint64](result.NoAccess(opCreateTask))
	}

	task := &models.Task{
		Name:        cmd.Name,
		Description: cmd.Description,
		Status:      cmd.Status,
		ProjectID:   cmd.ProjectID,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return result.FailureOf[uint64](result.Exception(opCreateTask, err))
	}

	return result.Ok(task.ID)
}

// GetTaskDetails returns the full task view for a member of its project.
func (s *TaskService) GetTaskDetails(ctx context.Context, callerID string, taskID uint64) result.Of[dto.TaskDetails] {
	if taskID == 0 {
		return result.FailureOf[dto.TaskDetails](result.Validation(opGetTaskDetails, "'TaskID' must not be empty"))
	}

	projectID, err := s.taskRepo.ProjectIDOf(ctx, taskID)
	if err != nil {
		return result.FailureOf[dto.TaskDetails](result.Exception(opGetTaskDetails, err))
	}

	if !s.authz.IsProjectMember(ctx, callerID, projectID) {
		return result.FailureOf[dto.TaskDetails](result.NoAccess(opGetTaskDetails))
	}

	task, err := s.taskRepo.FindDetails(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.FailureOf[dto.TaskDetails](result.NotFound(opGetTaskDetails, "task not found"))
		}
		return result.FailureOf[dto.TaskDetails](result.Exception(opGetTaskDetails, err))
	}

	return result.Ok(dto.ToTaskDetails(*task))
}

// UpdateTask replaces the task's name and description, leaving status and
// contractor untouched. Requires moderation authority.
func (s *TaskService) UpdateTask(ctx context.Context, callerID string, cmd UpdateTaskCommand) result.Result {
	if summary := validation.Struct(cmd); summary != "" {
		return result.Failure(result.Validation(opUpdateTask, summary))
	}

	projectID, err := s.taskRepo.ProjectIDOf(ctx, cmd.TaskID)
	if err != nil {
		return result.Failure(result.Exception(opUpdateTask, err))
	}

	if !s.authz.CanModerateProject(ctx, callerID, projectID) {
		return result.Failure(result.NoAccess(opUpdateTask))
	}

	updated, err := s.taskRepo.UpdateNameDescription(ctx, cmd.TaskID, cmd.Name, cmd.Description)
	if err != nil {
		return result.Failure(result.Exception(opUpdateTask, err))
	}
	if !updated {
		return result.Failure(result.NoAccess(opUpdateTask))
	}

	return result.Success()
}

// DeleteTask removes the task and its comments. Requires moderation authority.
func (s *TaskService) DeleteTask(ctx context.Context, callerID string, taskID uint64) result.Result {
	if taskID == 0 {
		return result.Failure(result.Validation(opDeleteTask, "'TaskID' must not be empty"))
	}

	projectID, err := s.taskRepo.ProjectIDOf(ctx, taskID)
	if err != nil {
		return result.Failure(result.Exception(opDeleteTask, err))
	}

	if !s.authz.CanModerateProject(ctx, callerID, projectID) {
		return result.Failure(result.NoAccess(opDeleteTask))
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return result.Failure(result.Exception(opDeleteTask, err))
	}

	return result.Success()
}

// ReassignTaskContractor changes who the task is assigned to. Any member of
// the task's project may reassign.
func (s *TaskService) ReassignTaskContractor(ctx context.Context, callerID string, cmd ReassignTaskContractorCommand) result.Result {
	if summary := validation.Struct(cmd); summary != "" {
		return result.Failure(result.Validation(opReassignTaskContractor, summary))
	}

	projectID, err := s.taskRepo.ProjectIDOf(ctx, cmd.TaskID)
	if err != nil {
		return result.Failure(result.Exception(opReassignTaskContractor, err))
	}

	if !s.authz.IsProjectMember(ctx, callerID, projectID) {
		return result.Failure(result.NoAccess(opReassignTaskContractor))
	}

	updated, err := s.taskRepo.UpdateContractor(ctx, cmd.TaskID, cmd.ContractorID)
	if err != nil {
		return result.Failure(result.Exception(opReassignTaskContractor, err))
	}
	if !updated {
		return result.Failure(result.NoAccess(opReassignTaskContractor))
	}

	return result.Success()
}

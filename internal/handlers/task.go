package handlers

import (
	"net/http"

	"github.com/collabtrack/project-api/internal/middleware"
	"github.com/collabtrack/project-api/internal/models"
	"github.com/collabtrack/project-api/internal/result"
	"github.com/collabtrack/project-api/internal/services"
	"github.com/gin-gonic/gin"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a task inside a project.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	type CreateTaskRequest struct {
		ProjectID   uint64 `json:"project_id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Status      string `json:"status"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, result.Validation("CreateTask", "invalid request body"))
		return
	}

	res := h.taskService.CreateTask(c.Request.Context(), userID, services.CreateTaskCommand{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
		Status:      models.TaskStatus(req.Status),
	})
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": res.Value})
}

// GetTaskDetails returns the full task view.
func (h *TaskHandler) GetTaskDetails(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	res := h.taskService.GetTaskDetails(c.Request.Context(), userID, pathID(c, "id"))
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusOK, res.Value)
}

// UpdateTask replaces the task's name and description.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	type UpdateTaskRequest struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, result.Validation("UpdateTask", "invalid request body"))
		return
	}

	res := h.taskService.UpdateTask(c.Request.Context(), userID, services.UpdateTaskCommand{
		TaskID:      pathID(c, "id"),
		Name:        req.Name,
		Description: req.Description,
	})
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task updated"})
}

// DeleteTask removes the task and its comments.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	res := h.taskService.DeleteTask(c.Request.Context(), userID, pathID(c, "id"))
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// ReassignTaskContractor changes who the task is assigned to.
func (h *TaskHandler) ReassignTaskContractor(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	type ReassignRequest struct {
		ContractorID *uint64 `json:"contractor_id"`
	}

	var req ReassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, result.Validation("ReassignTaskContractor", "invalid request body"))
		return
	}

	res := h.taskService.ReassignTaskContractor(c.Request.Context(), userID, services.ReassignTaskContractorCommand{
		TaskID:       pathID(c, "id"),
		ContractorID: req.ContractorID,
	})
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task contractor updated"})
}

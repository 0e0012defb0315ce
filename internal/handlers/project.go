package handlers

import (
	"net/http"

	"github.com/collabtrack/project-api/internal/middleware"
	"github.com/collabtrack/project-api/internal/result"
	"github.com/collabtrack/project-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ProjectHandler coordinates project HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a project owned by the caller.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	type CreateProjectRequest struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, result.Validation("CreateProject", "invalid request body"))
		return
	}

	res := h.projectService.CreateProject(c.Request.Context(), userID, services.CreateProjectCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": res.Value})
}

// GetProjectsList returns the caller's projects with their ranks.
func (h *ProjectHandler) GetProjectsList(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	res := h.projectService.GetProjectsList(c.Request.Context(), userID)
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": res.Value})
}

// GetProjectDetails returns the full project view.
func (h *ProjectHandler) GetProjectDetails(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	res := h.projectService.GetProjectDetails(c.Request.Context(), userID, pathID(c, "id"))
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusOK, res.Value)
}

// UpdateProject replaces the project's name and description.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	type UpdateProjectRequest struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, result.Validation("UpdateProject", "invalid request body"))
		return
	}

	res := h.projectService.UpdateProject(c.Request.Context(), userID, services.UpdateProjectCommand{
		ProjectID:   pathID(c, "id"),
		Name:        req.Name,
		Description: req.Description,
	})
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project updated"})
}

// DeleteProject removes the project and everything it owns.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	res := h.projectService.DeleteProject(c.Request.Context(), userID, pathID(c, "id"))
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

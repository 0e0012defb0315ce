package handlers

import (
	"net/http"

	"github.com/collabtrack/project-api/internal/middleware"
	"github.com/collabtrack/project-api/internal/models"
	"github.com/collabtrack/project-api/internal/result"
	"github.com/collabtrack/project-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ParticipantHandler coordinates membership HTTP handlers.
type ParticipantHandler struct {
	participantService *services.ParticipantService
}

// NewParticipantHandler creates a new ParticipantHandler.
func NewParticipantHandler(participantService *services.ParticipantService) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: participantService,
	}
}

// AddParticipant adds a user to a project by email.
func (h *ParticipantHandler) AddParticipant(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	type AddParticipantRequest struct {
		ProjectID uint64 `json:"project_id"`
		Email     string `json:"email"`
		Rank      string `json:"rank"`
	}

	var req AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, result.Validation("AddParticipant", "invalid request body"))
		return
	}

	res := h.participantService.AddParticipant(c.Request.Context(), userID, services.AddParticipantCommand{
		ProjectID: req.ProjectID,
		Email:     req.Email,
		Rank:      models.Rank(req.Rank),
	})
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": res.Value})
}

// UpdateParticipantRank changes a membership's rank.
func (h *ParticipantHandler) UpdateParticipantRank(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	type UpdateRankRequest struct {
		Rank string `json:"rank"`
	}

	var req UpdateRankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, result.Validation("UpdateParticipantRank", "invalid request body"))
		return
	}

	res := h.participantService.UpdateParticipantRank(c.Request.Context(), userID, services.UpdateParticipantRankCommand{
		MembershipID: pathID(c, "id"),
		Rank:         models.Rank(req.Rank),
	})
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Participant rank updated"})
}

// DeleteParticipant removes a membership.
func (h *ParticipantHandler) DeleteParticipant(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	res := h.participantService.DeleteParticipant(c.Request.Context(), userID, pathID(c, "id"))
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Participant removed"})
}

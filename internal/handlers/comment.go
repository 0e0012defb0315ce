package handlers

import (
	"net/http"

	"github.com/collabtrack/project-api/internal/middleware"
	"github.com/collabtrack/project-api/internal/result"
	"github.com/collabtrack/project-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CommentHandler coordinates comment HTTP handlers.
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateComment adds a comment to a task.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	type CreateCommentRequest struct {
		TaskID  uint64 `json:"task_id"`
		Content string `json:"content"`
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, result.Validation("CreateComment", "invalid request body"))
		return
	}

	res := h.commentService.CreateComment(c.Request.Context(), userID, services.CreateCommentCommand{
		TaskID:  req.TaskID,
		Content: req.Content,
	})
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": res.Value})
}

// UpdateComment replaces a comment's content.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	type UpdateCommentRequest struct {
		Content string `json:"content"`
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, result.Validation("UpdateComment", "invalid request body"))
		return
	}

	res := h.commentService.UpdateComment(c.Request.Context(), userID, services.UpdateCommentCommand{
		CommentID: pathID(c, "id"),
		Content:   req.Content,
	})
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment updated"})
}

// DeleteComment removes a comment.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	res := h.commentService.DeleteComment(c.Request.Context(), userID, pathID(c, "id"))
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

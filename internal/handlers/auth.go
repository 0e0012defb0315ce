package handlers

import (
	"net/http"

	"github.com/collabtrack/project-api/internal/middleware"
	"github.com/collabtrack/project-api/internal/result"
	"github.com/collabtrack/project-api/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler coordinates signup and login HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// CreateUser registers a new user.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, result.Validation("CreateUser", "invalid request body"))
		return
	}

	res := h.authService.CreateUser(c.Request.Context(), services.CreateUserCommand{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	})
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": res.Value})
}

// LoginUser authenticates a user and returns a bearer token.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, result.Validation("LoginUser", "invalid request body"))
		return
	}

	res := h.authService.LoginUser(c.Request.Context(), services.LoginUserCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": res.Value})
}

// GetCurrentUser returns the authenticated user's profile.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	res := h.authService.GetCurrentUser(c.Request.Context(), userID)
	if res.IsFailure() {
		fail(c, res.Err)
		return
	}

	c.JSON(http.StatusOK, res.Value)
}

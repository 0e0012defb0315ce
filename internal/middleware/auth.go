package middleware

import (
	"net/http"
	"strings"

	"github.com/collabtrack/project-api/internal/auth"
	"github.com/gin-gonic/gin"
)

const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
)

// RequireAuth verifies the Bearer token and stores the caller's identity in
// the request context. Handlers behind it may assume an authenticated caller.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := auth.VerifyToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyUserEmail, claims.Email)
		c.Next()
	}
}

// GetUserID retrieves the authenticated user id from the request context.
func GetUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserEmail retrieves the authenticated user email from the request context.
func GetUserEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextKeyUserEmail)
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/collabtrack/project-api/internal/result"
	"github.com/gin-gonic/gin"
)

// fail writes the failure envelope with the status its kind maps to.
func fail(c *gin.Context, err *result.Error) {
	c.JSON(statusOf(err.Kind()), gin.H{"error": err})
}

func statusOf(kind string) int {
	switch kind {
	case result.KindValidation:
		return http.StatusBadRequest
	case result.KindNoAccess:
		return http.StatusForbidden
	case result.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// pathID parses a numeric path parameter. A malformed value comes back as 0,
// which every operation rejects as a validation failure.
func pathID(c *gin.Context, name string) uint64 {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

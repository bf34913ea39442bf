package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"smarttodos/internal/ai"
	"smarttodos/internal/service"
)

// userID pulls the authenticated user out of the gin context. The auth
// middleware guarantees it is set on protected routes.
func userID(c *gin.Context) (int, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return 0, false
	}
	return v.(int), true
}

// respondError maps service errors onto HTTP statuses. Ownership failures
// deliberately look like missing resources.
func respondError(c *gin.Context, err error) {
	switch {
	case ai.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, pgx.ErrNoRows), errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// parseDate reads a ?date=YYYY-MM-DD query param, defaulting to today (UTC).
func parseDate(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse("2006-01-02", raw)
}

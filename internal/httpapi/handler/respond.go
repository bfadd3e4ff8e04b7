package handler

import (
	"errors"
	"net/http"

	"shelfmate/internal/httpapi/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP status codes. This is the only
// place the taxonomy meets status codes.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrAuthFailed):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// pathUserID returns the :userId path parameter when it matches the
// authenticated user. A mismatch reads as not-found, consistent with the
// ownership-by-compound-lookup rule everywhere else.
func pathUserID(c *gin.Context) (string, bool) {
	authedID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return "", false
	}

	userID := c.Param("userId")
	if userID != authedID.(string) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return "", false
	}
	return userID, true
}

package handlers

import (
	"net/http"

	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// respondError maps a service error to a status code. Lookups that miss
// are 404, duplicates 409, bad input and inputs the engine cannot evaluate
// 400; anything else is a 500 carrying action as the message.
func respondError(c *gin.Context, err error, action string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), apperrors.IsCalculation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c).WithError(err).Error(action)
		c.JSON(http.StatusInternalServerError, gin.H{"error": action, "details": err.Error()})
	}
}

// parseID reads a UUID path parameter, replying 400 when it is malformed.
func parseID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + entity + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body, replying 400 on malformed JSON.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return false
	}
	return true
}

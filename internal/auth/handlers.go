package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the token helper endpoints
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// ValidateToken is a helper endpoint to validate JWT tokens
// @Summary Validate JWT token
// @Description Validate JWT token and return token claims
// @Tags authentication
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token to validate" example("Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...")
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	tokenString, ok := bearerToken(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}

package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth sets user context when a valid token is present and lets
// every request through
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok && tokenString != "" {
			if claims, err := m.service.ValidateJWT(tokenString); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// bearerToken returns the token of an "Authorization: Bearer" header. ok is
// false when the header is missing; the token is empty when the header is
// not a bearer header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return "", true
	}
	return strings.TrimSpace(tokenString), true
}

func setClaims(c *gin.Context, claims *AuthClaims) {
	c.Set("username", claims.Username)
	c.Set("email", claims.Email)
	c.Set("auth_claims", claims)
}

// GetUsername is a helper function to extract username from context
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}

	name, ok := username.(string)
	return name, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

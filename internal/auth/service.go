package auth

import (
	"fmt"
	"time"

	apperrors "rtk-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer     = "rtk-backend"
	defaultTTL = time.Hour
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Username string `json:"username" example:"jdoe"`
	Email    string `json:"email,omitempty" example:"jdoe@example.com"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// AuthService signs and validates HS256 bearer tokens
type AuthService struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates a new authentication service. A zero ttl means one hour.
func NewAuthService(secret string, ttl time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, apperrors.NewConfigurationError("JWT secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &AuthService{secret: []byte(secret), ttl: ttl}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(username, email string) (string, error) {
	if username == "" {
		return "", apperrors.NewValidationError("username", "is required")
	}
	now := time.Now()
	claims := &AuthClaims{
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

package auth

import (
	"fmt"
	"time"

	apperrors "studio-admin-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role claim that unlocks catalog, package and contract writes
const RoleAdmin = "admin"

// AuthClaims represents the claims carried by an access token
type AuthClaims struct {
	Username             string `json:"username" example:"jdoe"`
	Email                string `json:"email,omitempty" example:"jdoe@studio.example"`
	Role                 string `json:"role,omitempty" example:"admin"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// IsAdmin reports whether the token carries the admin role
func (c *AuthClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// AuthService validates and issues HS256 access tokens. Sign-in itself happens upstream;
// this service only trusts tokens signed with the shared secret.
type AuthService struct {
	secret []byte
	issuer string
}

// NewAuthService creates a new auth service
func NewAuthService(secret, issuer string) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	return &AuthService{secret: []byte(secret), issuer: issuer}, nil
}

// GenerateJWT issues a token for username with the given role and lifetime
func (s *AuthService) GenerateJWT(username, email, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Username: username,
		Email:    email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates a JWT token and returns the claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid && claims.Username != "" {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the bearer tokens.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited bearer tokens.
type TokenService interface {
	// Issue creates a token for the given subject.
	Issue(userID string) (string, error)

	// Verify checks signature and expiry and returns the embedded claims.
	// Failures are reported as ErrTokenMalformed, ErrTokenInvalidSignature or ErrTokenExpired.
	Verify(tokenString string) (*Claims, error)
}

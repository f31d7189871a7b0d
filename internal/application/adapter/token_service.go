package adapter

import (
	"context"
	"time"
)

// TokenClaims represents the claims contained in an owner token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateToken issues a signed token for the given subject.
	GenerateToken(ctx context.Context, subject string) (string, time.Time, error)

	// ValidateToken validates a token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}

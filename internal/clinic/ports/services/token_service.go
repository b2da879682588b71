package services

import (
	"context"
	"time"
)

// Claims carries the identity embedded in an access token.
type Claims struct {
	StaffID   int64
	Username  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and validates staff access tokens.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, staffID int64, username, role string) (string, time.Time, error)
	ValidateAccessToken(ctx context.Context, token string) (*Claims, error)
}

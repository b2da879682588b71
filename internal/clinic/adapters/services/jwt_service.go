package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	svc "clinicdesk/internal/clinic/ports/services"
	"clinicdesk/pkg/logger"
)

// Token validation errors.
var (
	ErrInvalidAlgorithm = errors.New("invalid signing algorithm")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token has expired")
)

// claims adapts between the domain claims and the JWT library.
type claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService implements svc.TokenService with HMAC-signed JWTs.
type JWTService struct {
	secretKey      []byte
	accessTokenTTL time.Duration
}

// NewJWT creates a JWT token service.
func NewJWT(secretKey string, accessTokenTTL time.Duration) svc.TokenService {
	return &JWTService{
		secretKey:      []byte(secretKey),
		accessTokenTTL: accessTokenTTL,
	}
}

// GenerateAccessToken issues a signed access token for the staff member.
func (s *JWTService) GenerateAccessToken(ctx context.Context, staffID int64, username, role string) (string, time.Time, error) {
	log := logger.Log(ctx).With(zap.String("method", "GenerateAccessToken"), zap.Int64("staffID", staffID))

	now := time.Now()
	expiresAt := now.Add(s.accessTokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(staffID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		log.Error(ctx, "error signing token", zap.Error(err))
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	log.Debug(ctx, "token generated successfully")
	return signed, expiresAt, nil
}

// ValidateAccessToken parses and verifies a token, returning its claims.
func (s *JWTService) ValidateAccessToken(ctx context.Context, tokenString string) (*svc.Claims, error) {
	log := logger.Log(ctx).With(zap.String("method", "ValidateAccessToken"))

	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidAlgorithm, token.Method.Alg())
		}
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, "token has expired")
			return nil, fmt.Errorf("parsing token: %w", ErrTokenExpired)
		}
		log.Debug(ctx, "invalid token format", zap.Error(err))
		return nil, fmt.Errorf("parsing token: %w", ErrInvalidToken)
	}

	tokenClaims, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("validating token: %w", ErrInvalidToken)
	}

	staffID, err := strconv.ParseInt(tokenClaims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing token subject: %w", ErrInvalidToken)
	}

	result := &svc.Claims{
		StaffID:  staffID,
		Username: tokenClaims.Username,
		Role:     tokenClaims.Role,
	}
	if tokenClaims.IssuedAt != nil {
		result.IssuedAt = tokenClaims.IssuedAt.Time
	}
	if tokenClaims.ExpiresAt != nil {
		result.ExpiresAt = tokenClaims.ExpiresAt.Time
	}

	log.Debug(ctx, "token validated successfully")
	return result, nil
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicdesk/internal/clinic/adapters/services"
)

const testSecret = "test-secret-key"

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := services.NewJWT(testSecret, 15*time.Minute)
	ctx := context.Background()

	token, expiresAt, err := svc.GenerateAccessToken(ctx, 1, "admin", "Manager")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, time.Minute)

	claims, err := svc.ValidateAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.StaffID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "Manager", claims.Role)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt, time.Second)
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	svc := services.NewJWT(testSecret, 15*time.Minute)

	_, err := svc.ValidateAccessToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestValidateAccessTokenRejectsWrongSecret(t *testing.T) {
	ctx := context.Background()

	issuer := services.NewJWT(testSecret, 15*time.Minute)
	token, _, err := issuer.GenerateAccessToken(ctx, 1, "admin", "Manager")
	require.NoError(t, err)

	verifier := services.NewJWT("another-secret", 15*time.Minute)
	_, err = verifier.ValidateAccessToken(ctx, token)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestValidateAccessTokenRejectsExpired(t *testing.T) {
	ctx := context.Background()

	svc := services.NewJWT(testSecret, -time.Minute)
	token, _, err := svc.GenerateAccessToken(ctx, 1, "admin", "Manager")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(ctx, token)
	assert.ErrorIs(t, err, services.ErrTokenExpired)
}

package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"clinicdesk/internal/clinic/adapters/services"
)

func TestBcryptHashAndVerify(t *testing.T) {
	svc := services.NewBcrypt(bcrypt.MinCost)
	ctx := context.Background()

	hash, err := svc.Hash(ctx, "admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	ok, err := svc.Verify(ctx, "admin123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify(ctx, "wrongpass", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHashRejectsEmptyPassword(t *testing.T) {
	svc := services.NewBcrypt(bcrypt.MinCost)

	_, err := svc.Hash(context.Background(), "")
	assert.ErrorIs(t, err, services.ErrEmptyPassword)
}

func TestBcryptVerifyEmptyInputsAreMismatch(t *testing.T) {
	svc := services.NewBcrypt(bcrypt.MinCost)
	ctx := context.Background()

	ok, err := svc.Verify(ctx, "", "some-hash")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Verify(ctx, "password", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHashesDiffer(t *testing.T) {
	svc := services.NewBcrypt(bcrypt.MinCost)
	ctx := context.Background()

	first, err := svc.Hash(ctx, "admin123")
	require.NoError(t, err)
	second, err := svc.Hash(ctx, "admin123")
	require.NoError(t, err)

	// Salted hashes never repeat.
	assert.NotEqual(t, first, second)
}

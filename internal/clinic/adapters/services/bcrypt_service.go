// Package services provides the bcrypt and JWT implementations of the
// application service ports.
package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	svc "clinicdesk/internal/clinic/ports/services"
)

// ErrEmptyPassword is returned when an empty credential is hashed or verified.
var ErrEmptyPassword = errors.New("password cannot be empty")

// BcryptService implements svc.PasswordService with bcrypt.
type BcryptService struct {
	cost int
}

// NewBcrypt creates a bcrypt password service; costs below bcrypt.MinCost
// fall back to the library default.
func NewBcrypt(cost int) svc.PasswordService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptService{cost: cost}
}

// Hash hashes a password with bcrypt.
func (s *BcryptService) Hash(_ context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("generating password hash: %w", err)
	}

	return string(hashedBytes), nil
}

// Verify reports whether the password matches the hash; a mismatch is not an
// error.
func (s *BcryptService) Verify(_ context.Context, password, hash string) (bool, error) {
	if password == "" || hash == "" {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("comparing password with hash: %w", err)
	}

	return true, nil
}

// Package services defines the application service ports of the clinic core.
package services

import "context"

// PasswordService hashes and verifies staff credentials.
type PasswordService interface {
	Hash(ctx context.Context, password string) (string, error)
	// Verify reports whether the password matches the hash; a mismatch is not
	// an error.
	Verify(ctx context.Context, password, hash string) (bool, error)
}

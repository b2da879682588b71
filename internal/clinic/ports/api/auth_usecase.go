package api

import (
	"context"

	"clinicdesk/internal/clinic/app/dto"
)

// AuthUseCase is the application port for staff authentication. Login returns
// (nil, nil) on a credential mismatch; only infrastructure failures are errors.
type AuthUseCase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

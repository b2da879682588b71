package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"clinicdesk/internal/clinic/app/dto"
	"clinicdesk/internal/clinic/ports/api"
	"clinicdesk/internal/clinic/ports/repositories"
	portservices "clinicdesk/internal/clinic/ports/services"
	"clinicdesk/pkg/logger"
)

const (
	methodLogin        = "Login"
	msgLoginAttempt    = "login attempt"
	msgUnknownUsername = "unknown username"
	msgPasswordReject  = "password rejected"
	msgLoginSucceeded  = "login succeeded"

	errCtxFindingStaff      = "finding staff by username"
	errCtxVerifyingPassword = "verifying password"
	errCtxIssuingToken      = "issuing access token"
)

// AuthUseCaseImpl implements api.AuthUseCase.
type AuthUseCaseImpl struct {
	staffRepo   repositories.StaffRepository
	passwordSvc portservices.PasswordService
	tokenSvc    portservices.TokenService
}

// NewAuthUseCase creates the login use case.
func NewAuthUseCase(
	staffRepo repositories.StaffRepository,
	passwordSvc portservices.PasswordService,
	tokenSvc portservices.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{staffRepo: staffRepo, passwordSvc: passwordSvc, tokenSvc: tokenSvc}
}

// Login authenticates the credentials and issues an access token. An unknown
// username and a wrong password both yield (nil, nil) so callers cannot tell
// the two cases apart.
func (u *AuthUseCaseImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("username", req.Username))
	log.Debug(ctx, msgLoginAttempt)

	staff, err := u.staffRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		log.Error(ctx, "failed to find staff by username", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingStaff, err)
	}
	if staff == nil {
		log.Debug(ctx, msgUnknownUsername)
		return nil, nil
	}

	ok, err := u.passwordSvc.Verify(ctx, req.Password, staff.PasswordHash)
	if err != nil {
		log.Error(ctx, "failed to verify password", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPassword, err)
	}
	if !ok {
		log.Debug(ctx, msgPasswordReject)
		return nil, nil
	}

	token, expiresAt, err := u.tokenSvc.GenerateAccessToken(ctx, staff.StaffID, staff.Username, staff.Role)
	if err != nil {
		log.Error(ctx, "failed to issue access token", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	log.Info(ctx, msgLoginSucceeded, zap.Int64("staffID", staff.StaffID))

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Staff:       staff,
	}, nil
}

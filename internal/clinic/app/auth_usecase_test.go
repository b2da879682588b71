package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clinicdesk/internal/clinic/app"
	"clinicdesk/internal/clinic/app/dto"
	"clinicdesk/internal/clinic/domain/entities"
)

func TestLogin(t *testing.T) {
	admin := &entities.Staff{
		StaffID:      1,
		Username:     "admin",
		PasswordHash: "admin-hash",
		NameSurname:  "Dr. Lee",
		Role:         "Manager",
	}

	expiresAt := time.Now().Add(15 * time.Minute)

	tests := []struct {
		name        string
		username    string
		password    string
		setupMocks  func(repo *mockStaffRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService)
		expectNil   bool
		expectedErr error
	}{
		{
			name:     "success - valid credentials",
			username: "admin",
			password: "admin123",
			setupMocks: func(repo *mockStaffRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService) {
				repo.On("FindByUsername", mock.Anything, "admin").Return(admin, nil).Once()
				passwordSvc.On("Verify", mock.Anything, "admin123", "admin-hash").Return(true, nil).Once()
				tokenSvc.On("GenerateAccessToken", mock.Anything, int64(1), "admin", "Manager").
					Return("token-abc", expiresAt, nil).Once()
			},
		},
		{
			name:     "nil result - unknown username",
			username: "ghost",
			password: "admin123",
			setupMocks: func(repo *mockStaffRepository, _ *mockPasswordService, _ *mockTokenService) {
				repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil).Once()
			},
			expectNil: true,
		},
		{
			name:     "nil result - wrong password",
			username: "admin",
			password: "wrongpass",
			setupMocks: func(repo *mockStaffRepository, passwordSvc *mockPasswordService, _ *mockTokenService) {
				repo.On("FindByUsername", mock.Anything, "admin").Return(admin, nil).Once()
				passwordSvc.On("Verify", mock.Anything, "wrongpass", "admin-hash").Return(false, nil).Once()
			},
			expectNil: true,
		},
		{
			name:     "error - lookup fails",
			username: "admin",
			password: "admin123",
			setupMocks: func(repo *mockStaffRepository, _ *mockPasswordService, _ *mockTokenService) {
				repo.On("FindByUsername", mock.Anything, "admin").Return(nil, errStorage).Once()
			},
			expectedErr: errStorage,
		},
		{
			name:     "error - token issue fails",
			username: "admin",
			password: "admin123",
			setupMocks: func(repo *mockStaffRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService) {
				repo.On("FindByUsername", mock.Anything, "admin").Return(admin, nil).Once()
				passwordSvc.On("Verify", mock.Anything, "admin123", "admin-hash").Return(true, nil).Once()
				tokenSvc.On("GenerateAccessToken", mock.Anything, int64(1), "admin", "Manager").
					Return("", time.Time{}, errStorage).Once()
			},
			expectedErr: errStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockStaffRepository)
			passwordSvc := new(mockPasswordService)
			tokenSvc := new(mockTokenService)
			tt.setupMocks(repo, passwordSvc, tokenSvc)

			useCase := app.NewAuthUseCase(repo, passwordSvc, tokenSvc)
			response, err := useCase.Login(context.Background(), &dto.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})

			switch {
			case tt.expectedErr != nil:
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, response)
			case tt.expectNil:
				require.NoError(t, err)
				assert.Nil(t, response)
			default:
				require.NoError(t, err)
				require.NotNil(t, response)
				assert.Equal(t, "token-abc", response.AccessToken)
				assert.Equal(t, expiresAt, response.ExpiresAt)
				require.NotNil(t, response.Staff)
				assert.Equal(t, "admin", response.Staff.Username)
			}

			repo.AssertExpectations(t)
			passwordSvc.AssertExpectations(t)
			tokenSvc.AssertExpectations(t)
		})
	}
}

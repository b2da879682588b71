package app_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"clinicdesk/internal/clinic/domain/entities"
	portservices "clinicdesk/internal/clinic/ports/services"
)

type mockPatientRepository struct {
	mock.Mock
}

func (m *mockPatientRepository) GetAll(ctx context.Context) ([]*entities.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Patient), args.Error(1)
}

func (m *mockPatientRepository) GetByID(ctx context.Context, id int64) (*entities.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Patient), args.Error(1)
}

func (m *mockPatientRepository) GetByAppointmentDate(ctx context.Context, date string) ([]*entities.Patient, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Patient), args.Error(1)
}

func (m *mockPatientRepository) Create(ctx context.Context, patient *entities.Patient) (*entities.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Patient), args.Error(1)
}

func (m *mockPatientRepository) Update(ctx context.Context, patient *entities.Patient) (*entities.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Patient), args.Error(1)
}

func (m *mockPatientRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockStaffRepository struct {
	mock.Mock
}

func (m *mockStaffRepository) GetAll(ctx context.Context) ([]*entities.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Staff), args.Error(1)
}

func (m *mockStaffRepository) GetByID(ctx context.Context, id int64) (*entities.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Staff), args.Error(1)
}

func (m *mockStaffRepository) FindByUsername(ctx context.Context, username string) (*entities.Staff, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Staff), args.Error(1)
}

func (m *mockStaffRepository) Create(ctx context.Context, staff *entities.Staff) (*entities.Staff, error) {
	args := m.Called(ctx, staff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Staff), args.Error(1)
}

func (m *mockStaffRepository) Update(ctx context.Context, staff *entities.Staff) (*entities.Staff, error) {
	args := m.Called(ctx, staff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Staff), args.Error(1)
}

func (m *mockStaffRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockPasswordService struct {
	mock.Mock
}

func (m *mockPasswordService) Hash(ctx context.Context, password string) (string, error) {
	args := m.Called(ctx, password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordService) Verify(ctx context.Context, password, hash string) (bool, error) {
	args := m.Called(ctx, password, hash)
	return args.Bool(0), args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateAccessToken(ctx context.Context, staffID int64, username, role string) (string, time.Time, error) {
	args := m.Called(ctx, staffID, username, role)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *mockTokenService) ValidateAccessToken(ctx context.Context, token string) (*portservices.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portservices.Claims), args.Error(1)
}

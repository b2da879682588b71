package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clinicdesk/internal/clinic/app"
	"clinicdesk/internal/clinic/app/dto"
	"clinicdesk/internal/clinic/domain/entities"
	"clinicdesk/internal/clinic/domain/services"
)

var errStorage = errors.New("storage failure")

func validCreatePatientRequest() *dto.CreatePatientRequest {
	return &dto.CreatePatientRequest{
		NameSurname:    "Cara Lim",
		PhoneNumber:    "0856789012",
		Birthday:       "1992-03-08",
		Gender:         "Female",
		CourseCount:    2,
		FirstVisitDate: "2025-02-01",
	}
}

func TestAddPatient(t *testing.T) {
	appointment := "2025-12-01T10:00:00Z"

	tests := []struct {
		name        string
		mutate      func(req *dto.CreatePatientRequest)
		setupMocks  func(repo *mockPatientRepository)
		expectedErr error
	}{
		{
			name: "success - without appointment",
			setupMocks: func(repo *mockPatientRepository) {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(p *entities.Patient) bool {
					return p.NameSurname == "Cara Lim" && p.AppointmentDate == nil
				})).Return(&entities.Patient{PatientID: 3, NameSurname: "Cara Lim"}, nil).Once()
			},
		},
		{
			name: "success - with free appointment slot",
			mutate: func(req *dto.CreatePatientRequest) {
				req.AppointmentDate = &appointment
			},
			setupMocks: func(repo *mockPatientRepository) {
				repo.On("GetByAppointmentDate", mock.Anything, "2025-12-01").
					Return([]*entities.Patient{}, nil).Once()
				repo.On("Create", mock.Anything, mock.Anything).
					Return(&entities.Patient{PatientID: 3}, nil).Once()
			},
		},
		{
			name: "error - invalid phone number",
			mutate: func(req *dto.CreatePatientRequest) {
				req.PhoneNumber = "12345"
			},
			expectedErr: services.ErrInvalidPhoneNumber,
		},
		{
			name: "error - future birthday",
			mutate: func(req *dto.CreatePatientRequest) {
				req.Birthday = "2999-01-01"
			},
			expectedErr: services.ErrInvalidBirthday,
		},
		{
			name: "error - negative course count",
			mutate: func(req *dto.CreatePatientRequest) {
				req.CourseCount = -1
			},
			expectedErr: services.ErrNegativeCourseCount,
		},
		{
			name: "error - blank appointment date",
			mutate: func(req *dto.CreatePatientRequest) {
				blank := "   "
				req.AppointmentDate = &blank
			},
			expectedErr: services.ErrEmptyAppointmentDate,
		},
		{
			name: "error - unparsable appointment date",
			mutate: func(req *dto.CreatePatientRequest) {
				bad := "next tuesday"
				req.AppointmentDate = &bad
			},
			expectedErr: services.ErrInvalidAppointmentDate,
		},
		{
			name: "error - appointment slot taken",
			mutate: func(req *dto.CreatePatientRequest) {
				req.AppointmentDate = &appointment
			},
			setupMocks: func(repo *mockPatientRepository) {
				repo.On("GetByAppointmentDate", mock.Anything, "2025-12-01").
					Return([]*entities.Patient{{PatientID: 7}}, nil).Once()
			},
			expectedErr: services.ErrAppointmentTaken,
		},
		{
			name: "error - availability check fails",
			mutate: func(req *dto.CreatePatientRequest) {
				req.AppointmentDate = &appointment
			},
			setupMocks: func(repo *mockPatientRepository) {
				repo.On("GetByAppointmentDate", mock.Anything, "2025-12-01").
					Return(nil, errStorage).Once()
			},
			expectedErr: errStorage,
		},
		{
			name: "error - create fails",
			setupMocks: func(repo *mockPatientRepository) {
				repo.On("Create", mock.Anything, mock.Anything).
					Return(nil, errStorage).Once()
			},
			expectedErr: errStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockPatientRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(repo)
			}

			req := validCreatePatientRequest()
			if tt.mutate != nil {
				tt.mutate(req)
			}

			useCase := app.NewPatientUseCase(repo)
			created, err := useCase.Add(context.Background(), req)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				require.NotNil(t, created)
				assert.Equal(t, int64(3), created.PatientID)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestUpdatePatientKeepsOwnAppointmentSlot(t *testing.T) {
	appointment := "2025-11-20T09:00:00Z"
	repo := new(mockPatientRepository)

	// The only occupant of the slot is the patient being updated.
	repo.On("GetByAppointmentDate", mock.Anything, "2025-11-20").
		Return([]*entities.Patient{{PatientID: 1, AppointmentDate: &appointment}}, nil).Once()
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *entities.Patient) bool {
		return p.PatientID == 1
	})).Return(&entities.Patient{PatientID: 1, AppointmentDate: &appointment}, nil).Once()

	useCase := app.NewPatientUseCase(repo)
	updated, err := useCase.Update(context.Background(), &dto.UpdatePatientRequest{
		PatientID:       1,
		NameSurname:     "Alice Tan",
		PhoneNumber:     "0812345678",
		Birthday:        "1988-04-12",
		Gender:          "Female",
		AppointmentDate: &appointment,
		CourseCount:     3,
		FirstVisitDate:  "2024-01-15",
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	repo.AssertExpectations(t)
}

func TestUpdatePatientConflictsWithOtherPatient(t *testing.T) {
	appointment := "2025-11-20T09:00:00Z"
	repo := new(mockPatientRepository)

	repo.On("GetByAppointmentDate", mock.Anything, "2025-11-20").
		Return([]*entities.Patient{{PatientID: 2, AppointmentDate: &appointment}}, nil).Once()

	useCase := app.NewPatientUseCase(repo)
	_, err := useCase.Update(context.Background(), &dto.UpdatePatientRequest{
		PatientID:       1,
		NameSurname:     "Alice Tan",
		PhoneNumber:     "0812345678",
		Birthday:        "1988-04-12",
		Gender:          "Female",
		AppointmentDate: &appointment,
		CourseCount:     3,
		FirstVisitDate:  "2024-01-15",
	})

	assert.ErrorIs(t, err, services.ErrAppointmentTaken)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdatePatientNotFound(t *testing.T) {
	repo := new(mockPatientRepository)
	repo.On("Update", mock.Anything, mock.Anything).
		Return(nil, entities.ErrPatientNotFound).Once()

	useCase := app.NewPatientUseCase(repo)
	_, err := useCase.Update(context.Background(), &dto.UpdatePatientRequest{
		PatientID:      99,
		NameSurname:    "Nobody",
		PhoneNumber:    "0800000000",
		Birthday:       "1990-01-01",
		Gender:         "Male",
		FirstVisitDate: "2025-01-01",
	})

	assert.ErrorIs(t, err, entities.ErrPatientNotFound)
}

func TestListPatientsSortedByID(t *testing.T) {
	repo := new(mockPatientRepository)
	repo.On("GetAll", mock.Anything).Return([]*entities.Patient{
		{PatientID: 2, NameSurname: "Bob Cruz"},
		{PatientID: 1, NameSurname: "Alice Tan"},
	}, nil).Once()

	useCase := app.NewPatientUseCase(repo)
	patients, err := useCase.List(context.Background())

	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, int64(1), patients[0].PatientID)
	assert.Equal(t, int64(2), patients[1].PatientID)
}

func TestListByAppointmentDateNormalizesInput(t *testing.T) {
	repo := new(mockPatientRepository)
	repo.On("GetByAppointmentDate", mock.Anything, "2025-11-20").
		Return([]*entities.Patient{{PatientID: 1}}, nil).Once()

	useCase := app.NewPatientUseCase(repo)
	patients, err := useCase.ListByAppointmentDate(context.Background(), "2025-11-20T09:00:00Z")

	require.NoError(t, err)
	assert.Len(t, patients, 1)
	repo.AssertExpectations(t)
}

func TestListByAppointmentDateRejectsGarbage(t *testing.T) {
	repo := new(mockPatientRepository)

	useCase := app.NewPatientUseCase(repo)
	_, err := useCase.ListByAppointmentDate(context.Background(), "whenever")

	assert.ErrorIs(t, err, services.ErrInvalidAppointmentDate)
	repo.AssertNotCalled(t, "GetByAppointmentDate", mock.Anything, mock.Anything)
}

func TestDeletePatient(t *testing.T) {
	repo := new(mockPatientRepository)
	repo.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
	repo.On("Delete", mock.Anything, int64(99)).Return(entities.ErrPatientNotFound).Once()

	useCase := app.NewPatientUseCase(repo)

	require.NoError(t, useCase.Delete(context.Background(), 1))
	assert.ErrorIs(t, useCase.Delete(context.Background(), 99), entities.ErrPatientNotFound)
}

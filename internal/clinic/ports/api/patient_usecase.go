// Package api defines the application-level ports exposed to transport layers.
package api

import (
	"context"

	"clinicdesk/internal/clinic/app/dto"
	"clinicdesk/internal/clinic/domain/entities"
)

// PatientUseCase is the application port for patient operations.
type PatientUseCase interface {
	Add(ctx context.Context, req *dto.CreatePatientRequest) (*entities.Patient, error)

	Update(ctx context.Context, req *dto.UpdatePatientRequest) (*entities.Patient, error)

	Delete(ctx context.Context, id int64) error

	GetByID(ctx context.Context, id int64) (*entities.Patient, error)

	// List returns all patients sorted ascending by id.
	List(ctx context.Context) ([]*entities.Patient, error)

	// ListByAppointmentDate returns the patients occupying the given date.
	ListByAppointmentDate(ctx context.Context, date string) ([]*entities.Patient, error)
}

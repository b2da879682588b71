// Package repositories defines the persistence contracts of the clinic core.
package repositories

import (
	"context"

	"clinicdesk/internal/clinic/domain/entities"
)

// PatientRepository abstracts patient persistence. Lookups return (nil, nil)
// when no record matches; Update and Delete return entities.ErrPatientNotFound
// when the target is missing.
type PatientRepository interface {
	GetAll(ctx context.Context) ([]*entities.Patient, error)
	GetByID(ctx context.Context, id int64) (*entities.Patient, error)
	// GetByAppointmentDate matches on the date part only; date is YYYY-MM-DD.
	GetByAppointmentDate(ctx context.Context, date string) ([]*entities.Patient, error)
	// Create assigns the id and returns the persisted record.
	Create(ctx context.Context, patient *entities.Patient) (*entities.Patient, error)
	// Update replaces the full record matching by id.
	Update(ctx context.Context, patient *entities.Patient) (*entities.Patient, error)
	Delete(ctx context.Context, id int64) error
}

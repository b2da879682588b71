package memory

import (
	"context"

	"clinicdesk/internal/clinic/domain/entities"
	"clinicdesk/internal/clinic/domain/services"
	"clinicdesk/internal/clinic/ports/repositories"
)

// PatientRepository implements repositories.PatientRepository against a Store.
type PatientRepository struct {
	store *Store
}

// NewPatientRepository creates a patient repository backed by the given store.
func NewPatientRepository(store *Store) repositories.PatientRepository {
	return &PatientRepository{store: store}
}

// GetAll returns copies of every patient record.
func (r *PatientRepository) GetAll(ctx context.Context) ([]*entities.Patient, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entities.Patient, 0, len(r.store.patients))
	for _, p := range r.store.patients {
		out = append(out, clonePatient(p))
	}
	return out, nil
}

// GetByID returns the patient with the given id, or (nil, nil) when absent.
func (r *PatientRepository) GetByID(ctx context.Context, id int64) (*entities.Patient, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.patients {
		if p.PatientID == id {
			return clonePatient(p), nil
		}
	}
	return nil, nil
}

// GetByAppointmentDate returns patients whose appointment falls on the given
// date (YYYY-MM-DD); records without an appointment never match.
func (r *PatientRepository) GetByAppointmentDate(ctx context.Context, date string) ([]*entities.Patient, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entities.Patient, 0)
	for _, p := range r.store.patients {
		if p.AppointmentDate == nil {
			continue
		}
		normalized, err := services.NormalizeAppointmentDate(*p.AppointmentDate)
		if err != nil {
			continue
		}
		if normalized == date {
			out = append(out, clonePatient(p))
		}
	}
	return out, nil
}

// Create assigns the next unused id and stores the record.
func (r *PatientRepository) Create(ctx context.Context, patient *entities.Patient) (*entities.Patient, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := clonePatient(patient)
	created.PatientID = r.store.nextPatientID
	r.store.nextPatientID++
	r.store.patients = append(r.store.patients, created)

	return clonePatient(created), nil
}

// Update replaces the record matching by id.
func (r *PatientRepository) Update(ctx context.Context, patient *entities.Patient) (*entities.Patient, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, p := range r.store.patients {
		if p.PatientID == patient.PatientID {
			r.store.patients[i] = clonePatient(patient)
			return clonePatient(patient), nil
		}
	}
	return nil, entities.ErrPatientNotFound
}

// Delete removes the record matching by id.
func (r *PatientRepository) Delete(ctx context.Context, id int64) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, p := range r.store.patients {
		if p.PatientID == id {
			r.store.patients = append(r.store.patients[:i], r.store.patients[i+1:]...)
			return nil
		}
	}
	return entities.ErrPatientNotFound
}

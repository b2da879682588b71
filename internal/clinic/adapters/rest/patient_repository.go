package rest

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"clinicdesk/internal/clinic/domain/entities"
	"clinicdesk/internal/clinic/ports/repositories"
	"clinicdesk/pkg/logger"
)

// PatientRepository implements repositories.PatientRepository against an
// upstream REST API.
type PatientRepository struct {
	client *Client
}

// NewPatientRepository creates a REST-backed patient repository.
func NewPatientRepository(client *Client) repositories.PatientRepository {
	return &PatientRepository{client: client}
}

// GetAll fetches the full patient list.
func (r *PatientRepository) GetAll(ctx context.Context) ([]*entities.Patient, error) {
	log := logger.Log(ctx).With(zap.String("repository", "patient"), zap.String("method", "GetAll"))

	var patients []*entities.Patient
	resp, err := r.client.http.R().
		SetContext(ctx).
		SetResult(&patients).
		Get("/patients")
	if err != nil {
		log.Error(ctx, "upstream request failed", zap.Error(err))
		return nil, fmt.Errorf("fetching patient list: %w", err)
	}
	if resp.IsError() {
		log.Error(ctx, "upstream returned error", zap.Int("status", resp.StatusCode()))
		return nil, httpError(resp)
	}

	return patients, nil
}

// GetByID fetches one patient; an upstream 404 means absent, not an error.
func (r *PatientRepository) GetByID(ctx context.Context, id int64) (*entities.Patient, error) {
	log := logger.Log(ctx).With(zap.String("repository", "patient"), zap.String("method", "GetByID"))

	var patient entities.Patient
	resp, err := r.client.http.R().
		SetContext(ctx).
		SetResult(&patient).
		Get("/patients/" + strconv.FormatInt(id, 10))
	if err != nil {
		log.Error(ctx, "upstream request failed", zap.Error(err))
		return nil, fmt.Errorf("fetching patient: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		log.Error(ctx, "upstream returned error", zap.Int("status", resp.StatusCode()))
		return nil, httpError(resp)
	}

	return &patient, nil
}

// GetByAppointmentDate fetches the patients occupying the given date.
func (r *PatientRepository) GetByAppointmentDate(ctx context.Context, date string) ([]*entities.Patient, error) {
	log := logger.Log(ctx).With(zap.String("repository", "patient"), zap.String("method", "GetByAppointmentDate"))

	var patients []*entities.Patient
	resp, err := r.client.http.R().
		SetContext(ctx).
		SetQueryParam("appointment_date", date).
		SetResult(&patients).
		Get("/patients")
	if err != nil {
		log.Error(ctx, "upstream request failed", zap.Error(err))
		return nil, fmt.Errorf("fetching patients by appointment date: %w", err)
	}
	if resp.IsError() {
		log.Error(ctx, "upstream returned error", zap.Int("status", resp.StatusCode()))
		return nil, httpError(resp)
	}

	return patients, nil
}

// Create posts the record and returns the persisted version with its id.
func (r *PatientRepository) Create(ctx context.Context, patient *entities.Patient) (*entities.Patient, error) {
	log := logger.Log(ctx).With(zap.String("repository", "patient"), zap.String("method", "Create"))

	var created entities.Patient
	resp, err := r.client.http.R().
		SetContext(ctx).
		SetBody(patient).
		SetResult(&created).
		Post("/patients")
	if err != nil {
		log.Error(ctx, "upstream request failed", zap.Error(err))
		return nil, fmt.Errorf("creating patient: %w", err)
	}
	if resp.IsError() {
		log.Error(ctx, "upstream returned error", zap.Int("status", resp.StatusCode()))
		return nil, httpError(resp)
	}

	return &created, nil
}

// Update replaces the record; an upstream 404 maps to the not-found sentinel.
func (r *PatientRepository) Update(ctx context.Context, patient *entities.Patient) (*entities.Patient, error) {
	log := logger.Log(ctx).With(zap.String("repository", "patient"), zap.String("method", "Update"))

	var updated entities.Patient
	resp, err := r.client.http.R().
		SetContext(ctx).
		SetBody(patient).
		SetResult(&updated).
		Put("/patients/" + strconv.FormatInt(patient.PatientID, 10))
	if err != nil {
		log.Error(ctx, "upstream request failed", zap.Error(err))
		return nil, fmt.Errorf("updating patient: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, entities.ErrPatientNotFound
	}
	if resp.IsError() {
		log.Error(ctx, "upstream returned error", zap.Int("status", resp.StatusCode()))
		return nil, httpError(resp)
	}

	return &updated, nil
}

// Delete removes the record; an upstream 404 maps to the not-found sentinel.
func (r *PatientRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "patient"), zap.String("method", "Delete"))

	resp, err := r.client.http.R().
		SetContext(ctx).
		Delete("/patients/" + strconv.FormatInt(id, 10))
	if err != nil {
		log.Error(ctx, "upstream request failed", zap.Error(err))
		return fmt.Errorf("deleting patient: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return entities.ErrPatientNotFound
	}
	if resp.IsError() {
		log.Error(ctx, "upstream returned error", zap.Int("status", resp.StatusCode()))
		return httpError(resp)
	}

	return nil
}

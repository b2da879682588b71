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

// StaffRepository implements repositories.StaffRepository against an upstream
// REST API. Upstream responses never carry password hashes, so records read
// through this repository cannot back interactive logins.
type StaffRepository struct {
	client *Client
}

// NewStaffRepository creates a REST-backed staff repository.
func NewStaffRepository(client *Client) repositories.StaffRepository {
	return &StaffRepository{client: client}
}

// GetAll fetches the full staff list.
func (r *StaffRepository) GetAll(ctx context.Context) ([]*entities.Staff, error) {
	log := logger.Log(ctx).With(zap.String("repository", "staff"), zap.String("method", "GetAll"))

	var members []*entities.Staff
	resp, err := r.client.http.R().
		SetContext(ctx).
		SetResult(&members).
		Get("/staff")
	if err != nil {
		log.Error(ctx, "upstream request failed", zap.Error(err))
		return nil, fmt.Errorf("fetching staff list: %w", err)
	}
	if resp.IsError() {
		log.Error(ctx, "upstream returned error", zap.Int("status", resp.StatusCode()))
		return nil, httpError(resp)
	}

	return members, nil
}

// GetByID fetches one staff member; an upstream 404 means absent.
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*entities.Staff, error) {
	log := logger.Log(ctx).With(zap.String("repository", "staff"), zap.String("method", "GetByID"))

	var staff entities.Staff
	resp, err := r.client.http.R().
		SetContext(ctx).
		SetResult(&staff).
		Get("/staff/" + strconv.FormatInt(id, 10))
	if err != nil {
		log.Error(ctx, "upstream request failed", zap.Error(err))
		return nil, fmt.Errorf("fetching staff: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		log.Error(ctx, "upstream returned error", zap.Int("status", resp.StatusCode()))
		return nil, httpError(resp)
	}

	return &staff, nil
}

// FindByUsername fetches one staff member by username; an upstream 404 means
// absent.
func (r *StaffRepository) FindByUsername(ctx context.Context, username string) (*entities.Staff, error) {
	log := logger.Log(ctx).With(zap.String("repository", "staff"), zap.String("method", "FindByUsername"))

	var staff entities.Staff
	resp, err := r.client.http.R().
		SetContext(ctx).
		SetResult(&staff).
		Get("/staff/by-username/" + username)
	if err != nil {
		log.Error(ctx, "upstream request failed", zap.Error(err))
		return nil, fmt.Errorf("fetching staff by username: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if resp.IsError() {
		log.Error(ctx, "upstream returned error", zap.Int("status", resp.StatusCode()))
		return nil, httpError(resp)
	}

	return &staff, nil
}

// Create posts the record and returns the persisted version with its id.
func (r *StaffRepository) Create(ctx context.Context, staff *entities.Staff) (*entities.Staff, error) {
	log := logger.Log(ctx).With(zap.String("repository", "staff"), zap.String("method", "Create"))

	var created entities.Staff
	resp, err := r.client.http.R().
		SetContext(ctx).
		SetBody(staff).
		SetResult(&created).
		Post("/staff")
	if err != nil {
		log.Error(ctx, "upstream request failed", zap.Error(err))
		return nil, fmt.Errorf("creating staff: %w", err)
	}
	if resp.IsError() {
		log.Error(ctx, "upstream returned error", zap.Int("status", resp.StatusCode()))
		return nil, httpError(resp)
	}

	return &created, nil
}

// Update replaces the record; an upstream 404 maps to the not-found sentinel.
func (r *StaffRepository) Update(ctx context.Context, staff *entities.Staff) (*entities.Staff, error) {
	log := logger.Log(ctx).With(zap.String("repository", "staff"), zap.String("method", "Update"))

	var updated entities.Staff
	resp, err := r.client.http.R().
		SetContext(ctx).
		SetBody(staff).
		SetResult(&updated).
		Put("/staff/" + strconv.FormatInt(staff.StaffID, 10))
	if err != nil {
		log.Error(ctx, "upstream request failed", zap.Error(err))
		return nil, fmt.Errorf("updating staff: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, entities.ErrStaffNotFound
	}
	if resp.IsError() {
		log.Error(ctx, "upstream returned error", zap.Int("status", resp.StatusCode()))
		return nil, httpError(resp)
	}

	return &updated, nil
}

// Delete removes the record; an upstream 404 maps to the not-found sentinel.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "staff"), zap.String("method", "Delete"))

	resp, err := r.client.http.R().
		SetContext(ctx).
		Delete("/staff/" + strconv.FormatInt(id, 10))
	if err != nil {
		log.Error(ctx, "upstream request failed", zap.Error(err))
		return fmt.Errorf("deleting staff: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return entities.ErrStaffNotFound
	}
	if resp.IsError() {
		log.Error(ctx, "upstream returned error", zap.Int("status", resp.StatusCode()))
		return httpError(resp)
	}

	return nil
}

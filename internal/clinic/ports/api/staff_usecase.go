package api

import (
	"context"

	"clinicdesk/internal/clinic/app/dto"
	"clinicdesk/internal/clinic/domain/entities"
)

// StaffUseCase is the application port for staff management operations.
type StaffUseCase interface {
	Add(ctx context.Context, req *dto.CreateStaffRequest) (*entities.Staff, error)

	Update(ctx context.Context, req *dto.UpdateStaffRequest) (*entities.Staff, error)

	Delete(ctx context.Context, id int64) error

	GetByID(ctx context.Context, id int64) (*entities.Staff, error)

	GetByUsername(ctx context.Context, username string) (*entities.Staff, error)

	List(ctx context.Context) ([]*entities.Staff, error)
}

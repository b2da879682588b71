package repositories

import (
	"context"

	"clinicdesk/internal/clinic/domain/entities"
)

// StaffRepository abstracts staff persistence. FindByUsername and GetByID
// return (nil, nil) when no record matches; Update and Delete return
// entities.ErrStaffNotFound when the target is missing.
type StaffRepository interface {
	GetAll(ctx context.Context) ([]*entities.Staff, error)
	GetByID(ctx context.Context, id int64) (*entities.Staff, error)
	FindByUsername(ctx context.Context, username string) (*entities.Staff, error)
	Create(ctx context.Context, staff *entities.Staff) (*entities.Staff, error)
	Update(ctx context.Context, staff *entities.Staff) (*entities.Staff, error)
	Delete(ctx context.Context, id int64) error
}

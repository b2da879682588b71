package memory

import (
	"context"

	"clinicdesk/internal/clinic/domain/entities"
	"clinicdesk/internal/clinic/ports/repositories"
)

// StaffRepository implements repositories.StaffRepository against a Store.
type StaffRepository struct {
	store *Store
}

// NewStaffRepository creates a staff repository backed by the given store.
func NewStaffRepository(store *Store) repositories.StaffRepository {
	return &StaffRepository{store: store}
}

// GetAll returns copies of every staff record.
func (r *StaffRepository) GetAll(ctx context.Context) ([]*entities.Staff, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entities.Staff, 0, len(r.store.staff))
	for _, s := range r.store.staff {
		out = append(out, cloneStaff(s))
	}
	return out, nil
}

// GetByID returns the staff member with the given id, or (nil, nil) when absent.
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*entities.Staff, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, s := range r.store.staff {
		if s.StaffID == id {
			return cloneStaff(s), nil
		}
	}
	return nil, nil
}

// FindByUsername returns the staff member with the given username, or
// (nil, nil) when absent.
func (r *StaffRepository) FindByUsername(ctx context.Context, username string) (*entities.Staff, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, s := range r.store.staff {
		if s.Username == username {
			return cloneStaff(s), nil
		}
	}
	return nil, nil
}

// Create assigns the next unused id and stores the record.
func (r *StaffRepository) Create(ctx context.Context, staff *entities.Staff) (*entities.Staff, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := cloneStaff(staff)
	created.StaffID = r.store.nextStaffID
	r.store.nextStaffID++
	r.store.staff = append(r.store.staff, created)

	return cloneStaff(created), nil
}

// Update replaces the record matching by id.
func (r *StaffRepository) Update(ctx context.Context, staff *entities.Staff) (*entities.Staff, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, s := range r.store.staff {
		if s.StaffID == staff.StaffID {
			r.store.staff[i] = cloneStaff(staff)
			return cloneStaff(staff), nil
		}
	}
	return nil, entities.ErrStaffNotFound
}

// Delete removes the record matching by id.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, s := range r.store.staff {
		if s.StaffID == id {
			r.store.staff = append(r.store.staff[:i], r.store.staff[i+1:]...)
			return nil
		}
	}
	return entities.ErrStaffNotFound
}

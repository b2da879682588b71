package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"clinicdesk/internal/clinic/domain/entities"
	"clinicdesk/internal/clinic/domain/services"
	"clinicdesk/internal/clinic/ports/repositories"
	"clinicdesk/pkg/logger"
)

// StaffRepository implements repositories.StaffRepository on Postgres.
type StaffRepository struct {
	pool PgxPoolInterface
}

// NewStaffRepository creates a staff repository on the given pool.
func NewStaffRepository(pool PgxPoolInterface) repositories.StaffRepository {
	return &StaffRepository{pool: pool}
}

const staffColumns = `staff_id, username, password_hash, name_surname, phone_number, birthday, gender, email, role`

func scanStaff(row pgx.Row) (*entities.Staff, error) {
	var s entities.Staff
	var birthday time.Time
	err := row.Scan(
		&s.StaffID,
		&s.Username,
		&s.PasswordHash,
		&s.NameSurname,
		&s.PhoneNumber,
		&birthday,
		&s.Gender,
		&s.Email,
		&s.Role,
	)
	if err != nil {
		return nil, err
	}
	s.Birthday = birthday.Format(isoDateLayout)
	return &s, nil
}

// GetAll returns all staff records ordered by id.
func (r *StaffRepository) GetAll(ctx context.Context) ([]*entities.Staff, error) {
	log := logger.Log(ctx).With(zap.String("repository", "staff"), zap.String("method", "GetAll"))

	rows, err := r.pool.Query(ctx,
		`SELECT `+staffColumns+` FROM staff ORDER BY staff_id`)
	if err != nil {
		log.Error(ctx, "failed to list staff", zap.Error(err))
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	members := make([]*entities.Staff, 0)
	for rows.Next() {
		var s entities.Staff
		var birthday time.Time
		err := rows.Scan(
			&s.StaffID,
			&s.Username,
			&s.PasswordHash,
			&s.NameSurname,
			&s.PhoneNumber,
			&birthday,
			&s.Gender,
			&s.Email,
			&s.Role,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		s.Birthday = birthday.Format(isoDateLayout)
		members = append(members, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return members, nil
}

// GetByID returns the staff member with the given id, or (nil, nil) when absent.
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*entities.Staff, error) {
	log := logger.Log(ctx).With(zap.String("repository", "staff"), zap.String("method", "GetByID"))

	staff, err := scanStaff(r.pool.QueryRow(ctx,
		`SELECT `+staffColumns+` FROM staff WHERE staff_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "staff not found", zap.Int64("staffID", id))
			return nil, nil
		}
		log.Error(ctx, "failed to get staff", zap.Error(err))
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	return staff, nil
}

// FindByUsername returns the staff member with the given username, or
// (nil, nil) when absent.
func (r *StaffRepository) FindByUsername(ctx context.Context, username string) (*entities.Staff, error) {
	log := logger.Log(ctx).With(zap.String("repository", "staff"), zap.String("method", "FindByUsername"))

	staff, err := scanStaff(r.pool.QueryRow(ctx,
		`SELECT `+staffColumns+` FROM staff WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "staff not found", zap.String("username", username))
			return nil, nil
		}
		log.Error(ctx, "failed to find staff by username", zap.Error(err))
		return nil, fmt.Errorf("failed to find staff by username: %w", err)
	}

	return staff, nil
}

// Create inserts the record and returns it with the assigned id.
func (r *StaffRepository) Create(ctx context.Context, staff *entities.Staff) (*entities.Staff, error) {
	log := logger.Log(ctx).With(zap.String("repository", "staff"), zap.String("method", "Create"))

	birthday, err := parseTimestamp(staff.Birthday)
	if err != nil {
		return nil, fmt.Errorf("parsing birthday: %w", err)
	}

	created, err := scanStaff(r.pool.QueryRow(ctx,
		`INSERT INTO staff (username, password_hash, name_surname, phone_number, birthday, gender, email, role)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING `+staffColumns,
		staff.Username, staff.PasswordHash, staff.NameSurname, staff.PhoneNumber, birthday, staff.Gender, staff.Email, staff.Role))
	if err != nil {
		if constraintViolated(err, constraintStaffUsername) {
			log.Debug(ctx, "username already taken", zap.String("username", staff.Username))
			return nil, services.ErrUsernameTaken
		}
		log.Error(ctx, "failed to create staff", zap.Error(err))
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}

	log.Debug(ctx, "staff created", zap.Int64("staffID", created.StaffID))
	return created, nil
}

// Update replaces the full record matching by id.
func (r *StaffRepository) Update(ctx context.Context, staff *entities.Staff) (*entities.Staff, error) {
	log := logger.Log(ctx).With(zap.String("repository", "staff"), zap.String("method", "Update"))

	birthday, err := parseTimestamp(staff.Birthday)
	if err != nil {
		return nil, fmt.Errorf("parsing birthday: %w", err)
	}

	updated, err := scanStaff(r.pool.QueryRow(ctx,
		`UPDATE staff
         SET username = $1, password_hash = $2, name_surname = $3, phone_number = $4,
             birthday = $5, gender = $6, email = $7, role = $8
         WHERE staff_id = $9
         RETURNING `+staffColumns,
		staff.Username, staff.PasswordHash, staff.NameSurname, staff.PhoneNumber, birthday, staff.Gender, staff.Email, staff.Role, staff.StaffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "staff not found", zap.Int64("staffID", staff.StaffID))
			return nil, entities.ErrStaffNotFound
		}
		if constraintViolated(err, constraintStaffUsername) {
			log.Debug(ctx, "username already taken", zap.String("username", staff.Username))
			return nil, services.ErrUsernameTaken
		}
		log.Error(ctx, "failed to update staff", zap.Error(err))
		return nil, fmt.Errorf("failed to update staff: %w", err)
	}

	return updated, nil
}

// Delete removes the record matching by id.
func (r *StaffRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "staff"), zap.String("method", "Delete"))

	result, err := r.pool.Exec(ctx, `DELETE FROM staff WHERE staff_id = $1`, id)
	if err != nil {
		log.Error(ctx, "failed to delete staff", zap.Error(err))
		return fmt.Errorf("failed to delete staff: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "staff not found", zap.Int64("staffID", id))
		return entities.ErrStaffNotFound
	}

	return nil
}

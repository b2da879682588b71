// Package postgres provides PostgreSQL implementations of the clinic
// repositories.
package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"clinicdesk/internal/clinic/ports/repositories"
)

// PgxPoolInterface is the subset of pgxpool.Pool the repositories use,
// extracted so tests can substitute pgxmock.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// Unique-constraint names the schema declares; violations are translated to
// the matching domain conflict errors.
const (
	constraintStaffUsername      = "staff_username_key"
	constraintPatientAppointment = "patients_appointment_date_key"
)

const uniqueViolationCode = "23505"

func constraintViolated(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraint
	}
	return false
}

const (
	isoDateLayout = "2006-01-02"
)

// parseTimestamp accepts the two date shapes the API carries: a bare ISO date
// or a full RFC 3339 timestamp.
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(isoDateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// RepositoryFactory builds the clinic repositories on a shared pool.
type RepositoryFactory struct {
	pool PgxPoolInterface
}

// NewRepositoryFactory creates a repository factory.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// PatientRepository returns the patient repository.
func (f *RepositoryFactory) PatientRepository() repositories.PatientRepository {
	return NewPatientRepository(f.pool)
}

// StaffRepository returns the staff repository.
func (f *RepositoryFactory) StaffRepository() repositories.StaffRepository {
	return NewStaffRepository(f.pool)
}

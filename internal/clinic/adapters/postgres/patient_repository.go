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

// PatientRepository implements repositories.PatientRepository on Postgres.
type PatientRepository struct {
	pool PgxPoolInterface
}

// NewPatientRepository creates a patient repository on the given pool.
func NewPatientRepository(pool PgxPoolInterface) repositories.PatientRepository {
	return &PatientRepository{pool: pool}
}

const patientColumns = `patient_id, name_surname, phone_number, birthday, gender, appointment_date, course_count, first_visit_date`

type patientRow struct {
	patientID       int64
	nameSurname     string
	phoneNumber     string
	birthday        time.Time
	gender          string
	appointmentDate *time.Time
	courseCount     int
	firstVisitDate  time.Time
}

func (row *patientRow) toEntity() *entities.Patient {
	p := &entities.Patient{
		PatientID:      row.patientID,
		NameSurname:    row.nameSurname,
		PhoneNumber:    row.phoneNumber,
		Birthday:       row.birthday.Format(isoDateLayout),
		Gender:         row.gender,
		CourseCount:    row.courseCount,
		FirstVisitDate: row.firstVisitDate.Format(isoDateLayout),
	}
	if row.appointmentDate != nil {
		date := row.appointmentDate.UTC().Format(time.RFC3339)
		p.AppointmentDate = &date
	}
	return p
}

func scanPatient(row pgx.Row) (*entities.Patient, error) {
	var r patientRow
	err := row.Scan(
		&r.patientID,
		&r.nameSurname,
		&r.phoneNumber,
		&r.birthday,
		&r.gender,
		&r.appointmentDate,
		&r.courseCount,
		&r.firstVisitDate,
	)
	if err != nil {
		return nil, err
	}
	return r.toEntity(), nil
}

// patientArgs converts the entity's string dates into column values.
func patientArgs(patient *entities.Patient) (birthday time.Time, appointment *time.Time, firstVisit time.Time, err error) {
	birthday, err = parseTimestamp(patient.Birthday)
	if err != nil {
		return time.Time{}, nil, time.Time{}, fmt.Errorf("parsing birthday: %w", err)
	}
	firstVisit, err = parseTimestamp(patient.FirstVisitDate)
	if err != nil {
		return time.Time{}, nil, time.Time{}, fmt.Errorf("parsing first visit date: %w", err)
	}
	if patient.AppointmentDate != nil {
		t, parseErr := parseTimestamp(*patient.AppointmentDate)
		if parseErr != nil {
			return time.Time{}, nil, time.Time{}, fmt.Errorf("parsing appointment date: %w", parseErr)
		}
		appointment = &t
	}
	return birthday, appointment, firstVisit, nil
}

// GetAll returns all patient records ordered by id.
func (r *PatientRepository) GetAll(ctx context.Context) ([]*entities.Patient, error) {
	log := logger.Log(ctx).With(zap.String("repository", "patient"), zap.String("method", "GetAll"))

	rows, err := r.pool.Query(ctx,
		`SELECT `+patientColumns+` FROM patients ORDER BY patient_id`)
	if err != nil {
		log.Error(ctx, "failed to list patients", zap.Error(err))
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	return collectPatients(rows)
}

func collectPatients(rows pgx.Rows) ([]*entities.Patient, error) {
	patients := make([]*entities.Patient, 0)
	for rows.Next() {
		var row patientRow
		err := rows.Scan(
			&row.patientID,
			&row.nameSurname,
			&row.phoneNumber,
			&row.birthday,
			&row.gender,
			&row.appointmentDate,
			&row.courseCount,
			&row.firstVisitDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, row.toEntity())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return patients, nil
}

// GetByID returns the patient with the given id, or (nil, nil) when absent.
func (r *PatientRepository) GetByID(ctx context.Context, id int64) (*entities.Patient, error) {
	log := logger.Log(ctx).With(zap.String("repository", "patient"), zap.String("method", "GetByID"))

	patient, err := scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientColumns+` FROM patients WHERE patient_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "patient not found", zap.Int64("patientID", id))
			return nil, nil
		}
		log.Error(ctx, "failed to get patient", zap.Error(err))
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	return patient, nil
}

// GetByAppointmentDate returns patients whose appointment falls on the given
// YYYY-MM-DD date.
func (r *PatientRepository) GetByAppointmentDate(ctx context.Context, date string) ([]*entities.Patient, error) {
	log := logger.Log(ctx).With(zap.String("repository", "patient"), zap.String("method", "GetByAppointmentDate"))

	rows, err := r.pool.Query(ctx,
		`SELECT `+patientColumns+` FROM patients
         WHERE appointment_date IS NOT NULL AND (appointment_date AT TIME ZONE 'UTC')::date = $1::date
         ORDER BY patient_id`,
		date)
	if err != nil {
		log.Error(ctx, "failed to query patients by appointment date", zap.Error(err))
		return nil, fmt.Errorf("failed to query patients by appointment date: %w", err)
	}
	defer rows.Close()

	return collectPatients(rows)
}

// Create inserts the record and returns it with the assigned id.
func (r *PatientRepository) Create(ctx context.Context, patient *entities.Patient) (*entities.Patient, error) {
	log := logger.Log(ctx).With(zap.String("repository", "patient"), zap.String("method", "Create"))

	birthday, appointment, firstVisit, err := patientArgs(patient)
	if err != nil {
		return nil, err
	}

	created, err := scanPatient(r.pool.QueryRow(ctx,
		`INSERT INTO patients (name_surname, phone_number, birthday, gender, appointment_date, course_count, first_visit_date)
         VALUES ($1, $2, $3, $4, $5, $6, $7)
         RETURNING `+patientColumns,
		patient.NameSurname, patient.PhoneNumber, birthday, patient.Gender, appointment, patient.CourseCount, firstVisit))
	if err != nil {
		if constraintViolated(err, constraintPatientAppointment) {
			log.Debug(ctx, "appointment slot already taken")
			return nil, services.ErrAppointmentTaken
		}
		log.Error(ctx, "failed to create patient", zap.Error(err))
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	log.Debug(ctx, "patient created", zap.Int64("patientID", created.PatientID))
	return created, nil
}

// Update replaces the full record matching by id.
func (r *PatientRepository) Update(ctx context.Context, patient *entities.Patient) (*entities.Patient, error) {
	log := logger.Log(ctx).With(zap.String("repository", "patient"), zap.String("method", "Update"))

	birthday, appointment, firstVisit, err := patientArgs(patient)
	if err != nil {
		return nil, err
	}

	updated, err := scanPatient(r.pool.QueryRow(ctx,
		`UPDATE patients
         SET name_surname = $1, phone_number = $2, birthday = $3, gender = $4,
             appointment_date = $5, course_count = $6, first_visit_date = $7
         WHERE patient_id = $8
         RETURNING `+patientColumns,
		patient.NameSurname, patient.PhoneNumber, birthday, patient.Gender, appointment, patient.CourseCount, firstVisit, patient.PatientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "patient not found", zap.Int64("patientID", patient.PatientID))
			return nil, entities.ErrPatientNotFound
		}
		if constraintViolated(err, constraintPatientAppointment) {
			log.Debug(ctx, "appointment slot already taken")
			return nil, services.ErrAppointmentTaken
		}
		log.Error(ctx, "failed to update patient", zap.Error(err))
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	return updated, nil
}

// Delete removes the record matching by id.
func (r *PatientRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "patient"), zap.String("method", "Delete"))

	result, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE patient_id = $1`, id)
	if err != nil {
		log.Error(ctx, "failed to delete patient", zap.Error(err))
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "patient not found", zap.Int64("patientID", id))
		return entities.ErrPatientNotFound
	}

	return nil
}

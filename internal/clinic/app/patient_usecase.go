// Package app implements the application use cases of the clinic: validation
// followed by delegation to the repository ports.
package app

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"clinicdesk/internal/clinic/app/dto"
	"clinicdesk/internal/clinic/domain/entities"
	"clinicdesk/internal/clinic/domain/services"
	"clinicdesk/internal/clinic/ports/api"
	"clinicdesk/internal/clinic/ports/repositories"
	"clinicdesk/pkg/logger"
)

const (
	methodAddPatient        = "AddPatient"
	methodUpdatePatient     = "UpdatePatient"
	methodDeletePatient     = "DeletePatient"
	methodGetPatientByID    = "GetPatientByID"
	methodGetPatientList    = "GetPatientList"
	methodGetByAppointment  = "GetPatientsByAppointmentDate"
	msgAddingPatient        = "adding patient"
	msgUpdatingPatient      = "updating patient"
	msgPatientCreated       = "patient created"
	msgPatientUpdated       = "patient updated"
	msgPatientDeleted       = "patient deleted"
	msgAppointmentConflict  = "appointment slot already occupied"
	msgInvalidPatientInput  = "invalid patient input"
	msgErrCheckAvailability = "failed to check appointment availability"

	errCtxValidatingPhone       = "validating phone number"
	errCtxValidatingBirthday    = "validating birthday"
	errCtxValidatingCourseCount = "validating course count"
	errCtxValidatingAppointment = "validating appointment date"
	errCtxCheckingAppointment   = "checking appointment availability"
	errCtxAppointmentTaken      = "appointment date taken"
	errCtxCreatingPatient       = "creating patient"
	errCtxUpdatingPatient       = "updating patient"
	errCtxDeletingPatient       = "deleting patient"
	errCtxFetchingPatient       = "fetching patient"
	errCtxListingPatients       = "listing patients"
)

// PatientUseCaseImpl implements api.PatientUseCase.
type PatientUseCaseImpl struct {
	patientRepo repositories.PatientRepository
}

// NewPatientUseCase creates the patient use cases on the given repository.
func NewPatientUseCase(patientRepo repositories.PatientRepository) api.PatientUseCase {
	return &PatientUseCaseImpl{patientRepo: patientRepo}
}

// Add validates the request, checks the appointment slot when one is
// requested, and creates the patient.
func (u *PatientUseCaseImpl) Add(ctx context.Context, req *dto.CreatePatientRequest) (*entities.Patient, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAddPatient))
	log.Debug(ctx, msgAddingPatient)

	patient := &entities.Patient{
		NameSurname:     req.NameSurname,
		PhoneNumber:     req.PhoneNumber,
		Birthday:        req.Birthday,
		Gender:          req.Gender,
		AppointmentDate: req.AppointmentDate,
		CourseCount:     req.CourseCount,
		FirstVisitDate:  req.FirstVisitDate,
	}

	if err := u.validatePatient(ctx, patient); err != nil {
		log.Debug(ctx, msgInvalidPatientInput, zap.Error(err))
		return nil, err
	}

	if patient.AppointmentDate != nil {
		if err := u.ensureAppointmentFree(ctx, *patient.AppointmentDate, 0); err != nil {
			return nil, err
		}
	}

	created, err := u.patientRepo.Create(ctx, patient)
	if err != nil {
		log.Error(ctx, "failed to create patient", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingPatient, err)
	}

	log.Info(ctx, msgPatientCreated, zap.Int64("patientID", created.PatientID))
	return created, nil
}

// Update validates the request, re-checks slot availability excluding the
// patient's own id, and replaces the record.
func (u *PatientUseCaseImpl) Update(ctx context.Context, req *dto.UpdatePatientRequest) (*entities.Patient, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdatePatient), zap.Int64("patientID", req.PatientID))
	log.Debug(ctx, msgUpdatingPatient)

	patient := &entities.Patient{
		PatientID:       req.PatientID,
		NameSurname:     req.NameSurname,
		PhoneNumber:     req.PhoneNumber,
		Birthday:        req.Birthday,
		Gender:          req.Gender,
		AppointmentDate: req.AppointmentDate,
		CourseCount:     req.CourseCount,
		FirstVisitDate:  req.FirstVisitDate,
	}

	if err := u.validatePatient(ctx, patient); err != nil {
		log.Debug(ctx, msgInvalidPatientInput, zap.Error(err))
		return nil, err
	}

	if patient.AppointmentDate != nil {
		if err := u.ensureAppointmentFree(ctx, *patient.AppointmentDate, patient.PatientID); err != nil {
			return nil, err
		}
	}

	updated, err := u.patientRepo.Update(ctx, patient)
	if err != nil {
		log.Debug(ctx, "failed to update patient", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingPatient, err)
	}

	log.Info(ctx, msgPatientUpdated)
	return updated, nil
}

// Delete removes the patient by id.
func (u *PatientUseCaseImpl) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeletePatient), zap.Int64("patientID", id))

	if err := u.patientRepo.Delete(ctx, id); err != nil {
		log.Debug(ctx, "failed to delete patient", zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingPatient, err)
	}

	log.Info(ctx, msgPatientDeleted)
	return nil
}

// GetByID returns the patient, or (nil, nil) when absent.
func (u *PatientUseCaseImpl) GetByID(ctx context.Context, id int64) (*entities.Patient, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetPatientByID), zap.Int64("patientID", id))

	patient, err := u.patientRepo.GetByID(ctx, id)
	if err != nil {
		log.Error(ctx, "failed to fetch patient", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingPatient, err)
	}
	return patient, nil
}

// List returns all patients sorted ascending by id.
func (u *PatientUseCaseImpl) List(ctx context.Context) ([]*entities.Patient, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetPatientList))

	patients, err := u.patientRepo.GetAll(ctx)
	if err != nil {
		log.Error(ctx, "failed to list patients", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingPatients, err)
	}

	sort.Slice(patients, func(i, j int) bool {
		return patients[i].PatientID < patients[j].PatientID
	})
	return patients, nil
}

// ListByAppointmentDate returns the patients occupying the given date.
func (u *PatientUseCaseImpl) ListByAppointmentDate(ctx context.Context, date string) ([]*entities.Patient, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetByAppointment), zap.String("date", date))

	normalized, err := services.NormalizeAppointmentDate(date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingAppointment, err)
	}

	patients, err := u.patientRepo.GetByAppointmentDate(ctx, normalized)
	if err != nil {
		log.Error(ctx, "failed to list patients by appointment date", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingPatients, err)
	}
	return patients, nil
}

func (u *PatientUseCaseImpl) validatePatient(_ context.Context, patient *entities.Patient) error {
	if !services.ValidatePhoneNumber(patient.PhoneNumber) {
		return fmt.Errorf("%s: %w", errCtxValidatingPhone, services.ErrInvalidPhoneNumber)
	}
	if !services.ValidateBirthday(patient.Birthday) {
		return fmt.Errorf("%s: %w", errCtxValidatingBirthday, services.ErrInvalidBirthday)
	}
	if !services.ValidateCourseCount(patient.CourseCount) {
		return fmt.Errorf("%s: %w", errCtxValidatingCourseCount, services.ErrNegativeCourseCount)
	}
	if patient.AppointmentDate != nil && !services.ValidateAppointmentDate(*patient.AppointmentDate) {
		return fmt.Errorf("%s: %w", errCtxValidatingAppointment, services.ErrEmptyAppointmentDate)
	}
	return nil
}

// ensureAppointmentFree fails with services.ErrAppointmentTaken when another
// patient already occupies the date; excludeID removes the record being
// updated from the conflict set.
func (u *PatientUseCaseImpl) ensureAppointmentFree(ctx context.Context, appointmentDate string, excludeID int64) error {
	log := logger.Log(ctx)

	normalized, err := services.NormalizeAppointmentDate(appointmentDate)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtxValidatingAppointment, err)
	}

	existing, err := u.patientRepo.GetByAppointmentDate(ctx, normalized)
	if err != nil {
		log.Error(ctx, msgErrCheckAvailability, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCheckingAppointment, err)
	}

	for _, p := range existing {
		if p.PatientID != excludeID {
			log.Debug(ctx, msgAppointmentConflict, zap.String("date", normalized), zap.Int64("occupiedBy", p.PatientID))
			return fmt.Errorf("%s: %w", errCtxAppointmentTaken, services.ErrAppointmentTaken)
		}
	}
	return nil
}

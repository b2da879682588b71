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
	portservices "clinicdesk/internal/clinic/ports/services"
	"clinicdesk/pkg/logger"
)

const (
	methodAddStaff           = "AddStaff"
	methodUpdateStaff        = "UpdateStaff"
	methodDeleteStaff        = "DeleteStaff"
	methodGetStaffByID       = "GetStaffByID"
	methodGetStaffByUsername = "GetStaffByUsername"
	methodGetStaffList       = "GetStaffList"
	msgAddingStaff           = "adding staff member"
	msgUpdatingStaff         = "updating staff member"
	msgStaffCreated          = "staff member created"
	msgStaffUpdated          = "staff member updated"
	msgStaffDeleted          = "staff member deleted"
	msgUsernameConflict      = "username already registered"
	msgInvalidStaffInput     = "invalid staff input"

	errCtxValidatingEmail    = "validating email"
	errCtxValidatingUsername = "validating username"
	errCtxCheckingUsername   = "checking username availability"
	errCtxUsernameTaken      = "username taken"
	errCtxHashingPassword    = "hashing password"
	errCtxCreatingStaff      = "creating staff member"
	errCtxUpdatingStaff      = "updating staff member"
	errCtxDeletingStaff      = "deleting staff member"
	errCtxFetchingStaff      = "fetching staff member"
	errCtxListingStaff       = "listing staff members"
)

// StaffUseCaseImpl implements api.StaffUseCase.
type StaffUseCaseImpl struct {
	staffRepo   repositories.StaffRepository
	passwordSvc portservices.PasswordService
}

// NewStaffUseCase creates the staff use cases on the given repository and
// password service.
func NewStaffUseCase(staffRepo repositories.StaffRepository, passwordSvc portservices.PasswordService) api.StaffUseCase {
	return &StaffUseCaseImpl{staffRepo: staffRepo, passwordSvc: passwordSvc}
}

// Add validates the request, claims the username, hashes the password and
// creates the staff member. The username check runs before any write so a
// conflicting request leaves the store untouched.
func (u *StaffUseCaseImpl) Add(ctx context.Context, req *dto.CreateStaffRequest) (*entities.Staff, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAddStaff), zap.String("username", req.Username))
	log.Debug(ctx, msgAddingStaff)

	if err := u.validateStaff(req.PhoneNumber, req.Birthday, req.Email, req.Username); err != nil {
		log.Debug(ctx, msgInvalidStaffInput, zap.Error(err))
		return nil, err
	}

	existing, err := u.staffRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		log.Error(ctx, "failed to check username availability", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUsername, err)
	}
	if existing != nil {
		log.Debug(ctx, msgUsernameConflict)
		return nil, fmt.Errorf("%s: %w", errCtxUsernameTaken, services.ErrUsernameTaken)
	}

	hash, err := u.passwordSvc.Hash(ctx, req.Password)
	if err != nil {
		log.Error(ctx, "failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	staff := &entities.Staff{
		NameSurname:  req.NameSurname,
		PhoneNumber:  req.PhoneNumber,
		Birthday:     req.Birthday,
		Gender:       req.Gender,
		Email:        req.Email,
		Role:         req.Role,
		Username:     req.Username,
		PasswordHash: hash,
	}

	created, err := u.staffRepo.Create(ctx, staff)
	if err != nil {
		log.Error(ctx, "failed to create staff member", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingStaff, err)
	}

	log.Info(ctx, msgStaffCreated, zap.Int64("staffID", created.StaffID))
	return created, nil
}

// Update validates the request and replaces the record. An empty password
// keeps the stored credential; a non-empty one is re-hashed.
func (u *StaffUseCaseImpl) Update(ctx context.Context, req *dto.UpdateStaffRequest) (*entities.Staff, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateStaff), zap.Int64("staffID", req.StaffID))
	log.Debug(ctx, msgUpdatingStaff)

	if err := u.validateStaff(req.PhoneNumber, req.Birthday, req.Email, req.Username); err != nil {
		log.Debug(ctx, msgInvalidStaffInput, zap.Error(err))
		return nil, err
	}

	current, err := u.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		log.Error(ctx, "failed to fetch staff member", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingStaff, err)
	}
	if current == nil {
		log.Debug(ctx, "staff member not found")
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingStaff, entities.ErrStaffNotFound)
	}

	byName, err := u.staffRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		log.Error(ctx, "failed to check username availability", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUsername, err)
	}
	if byName != nil && byName.StaffID != req.StaffID {
		log.Debug(ctx, msgUsernameConflict)
		return nil, fmt.Errorf("%s: %w", errCtxUsernameTaken, services.ErrUsernameTaken)
	}

	hash := current.PasswordHash
	if req.Password != "" {
		hash, err = u.passwordSvc.Hash(ctx, req.Password)
		if err != nil {
			log.Error(ctx, "failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
		}
	}

	staff := &entities.Staff{
		StaffID:      req.StaffID,
		NameSurname:  req.NameSurname,
		PhoneNumber:  req.PhoneNumber,
		Birthday:     req.Birthday,
		Gender:       req.Gender,
		Email:        req.Email,
		Role:         req.Role,
		Username:     req.Username,
		PasswordHash: hash,
	}

	updated, err := u.staffRepo.Update(ctx, staff)
	if err != nil {
		log.Debug(ctx, "failed to update staff member", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingStaff, err)
	}

	log.Info(ctx, msgStaffUpdated)
	return updated, nil
}

// Delete removes the staff member by id.
func (u *StaffUseCaseImpl) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteStaff), zap.Int64("staffID", id))

	if err := u.staffRepo.Delete(ctx, id); err != nil {
		log.Debug(ctx, "failed to delete staff member", zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingStaff, err)
	}

	log.Info(ctx, msgStaffDeleted)
	return nil
}

// GetByID returns the staff member, or (nil, nil) when absent.
func (u *StaffUseCaseImpl) GetByID(ctx context.Context, id int64) (*entities.Staff, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetStaffByID), zap.Int64("staffID", id))

	staff, err := u.staffRepo.GetByID(ctx, id)
	if err != nil {
		log.Error(ctx, "failed to fetch staff member", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingStaff, err)
	}
	return staff, nil
}

// GetByUsername returns the staff member, or (nil, nil) when absent.
func (u *StaffUseCaseImpl) GetByUsername(ctx context.Context, username string) (*entities.Staff, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetStaffByUsername), zap.String("username", username))

	staff, err := u.staffRepo.FindByUsername(ctx, username)
	if err != nil {
		log.Error(ctx, "failed to fetch staff member", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingStaff, err)
	}
	return staff, nil
}

// List returns all staff members sorted ascending by id.
func (u *StaffUseCaseImpl) List(ctx context.Context) ([]*entities.Staff, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetStaffList))

	staff, err := u.staffRepo.GetAll(ctx)
	if err != nil {
		log.Error(ctx, "failed to list staff members", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingStaff, err)
	}

	sort.Slice(staff, func(i, j int) bool {
		return staff[i].StaffID < staff[j].StaffID
	})
	return staff, nil
}

func (u *StaffUseCaseImpl) validateStaff(phone, birthday, email, username string) error {
	if !services.ValidatePhoneNumber(phone) {
		return fmt.Errorf("%s: %w", errCtxValidatingPhone, services.ErrInvalidPhoneNumber)
	}
	if !services.ValidateBirthday(birthday) {
		return fmt.Errorf("%s: %w", errCtxValidatingBirthday, services.ErrInvalidBirthday)
	}
	if !services.ValidateEmail(email) {
		return fmt.Errorf("%s: %w", errCtxValidatingEmail, services.ErrInvalidEmail)
	}
	if !services.ValidateUsername(username) {
		return fmt.Errorf("%s: %w", errCtxValidatingUsername, services.ErrEmptyUsername)
	}
	return nil
}

// Package respond maps use case errors to HTTP responses.
package respond

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"clinicdesk/internal/clinic/domain/entities"
	"clinicdesk/internal/clinic/domain/services"
)

// Error sends a JSON error body with the given status.
func Error(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// StatusFromError picks the HTTP status for a use case error. Validation
// failures map to 400, conflicts to 409, missing records to 404 and
// everything else to 500.
func StatusFromError(err error) int {
	switch {
	case isValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrAppointmentTaken),
		errors.Is(err, services.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, entities.ErrPatientNotFound),
		errors.Is(err, entities.ErrStaffNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, services.ErrInvalidPhoneNumber) ||
		errors.Is(err, services.ErrInvalidBirthday) ||
		errors.Is(err, services.ErrNegativeCourseCount) ||
		errors.Is(err, services.ErrEmptyAppointmentDate) ||
		errors.Is(err, services.ErrInvalidAppointmentDate) ||
		errors.Is(err, services.ErrInvalidEmail) ||
		errors.Is(err, services.ErrEmptyUsername)
}

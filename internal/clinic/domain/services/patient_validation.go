package services

import (
	"strings"

	"clinicdesk/internal/clinic/domain/valueobjects"
)

// ValidatePhoneNumber reports whether the value is a well-formed 10-digit
// phone number.
func ValidatePhoneNumber(phoneNumber string) bool {
	_, err := valueobjects.NewPhoneNumber(phoneNumber)
	return err == nil
}

// ValidateBirthday reports whether the value parses to a date that is not in
// the future.
func ValidateBirthday(birthday string) bool {
	_, err := valueobjects.NewDateOfBirth(birthday)
	return err == nil
}

// ValidateCourseCount reports whether the treatment course count is usable.
func ValidateCourseCount(courseCount int) bool {
	return courseCount >= 0
}

// ValidateAppointmentDate reports whether an appointment date was supplied.
// Format checking happens where the date is normalized for the conflict query.
func ValidateAppointmentDate(appointmentDate string) bool {
	return strings.TrimSpace(appointmentDate) != ""
}

// Package services holds the stateless validation predicates and the shared
// domain error taxonomy for clinic use cases.
package services

import "errors"

// Validation errors surface as form-level messages.
var (
	ErrInvalidPhoneNumber     = errors.New("telephone number must be 10 digits")
	ErrInvalidBirthday        = errors.New("birthday cannot be in the future")
	ErrNegativeCourseCount    = errors.New("course count cannot be negative")
	ErrEmptyAppointmentDate   = errors.New("please select an appointment date")
	ErrInvalidAppointmentDate = errors.New("appointment date is not a valid date")
	ErrInvalidEmail           = errors.New("email address is not valid")
	ErrEmptyUsername          = errors.New("username cannot be empty")
)

// Conflict errors mean the write would collide with an existing record.
var (
	ErrAppointmentTaken = errors.New("the selected appointment date is already taken")
	ErrUsernameTaken    = errors.New("the selected username is already taken")
)

// ErrInvalidCredentials is reserved for transport layers; the login use case
// itself signals a mismatch with a nil result, not an error.
var ErrInvalidCredentials = errors.New("invalid username or password")

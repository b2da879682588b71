// Package valueobjects defines immutable, self-validating wrappers around
// primitive clinic fields.
package valueobjects

import (
	"errors"
	"regexp"
)

// ErrInvalidPhoneNumber is returned when a phone number is not exactly 10 digits.
var ErrInvalidPhoneNumber = errors.New("phone number must be exactly 10 digits")

var phoneNumberRegex = regexp.MustCompile(`^\d{10}$`)

// PhoneNumber is a validated 10-digit phone number.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber validates and wraps a raw phone number string.
func NewPhoneNumber(value string) (PhoneNumber, error) {
	if !phoneNumberRegex.MatchString(value) {
		return PhoneNumber{}, ErrInvalidPhoneNumber
	}
	return PhoneNumber{value: value}, nil
}

// String returns the raw digit string.
func (p PhoneNumber) String() string {
	return p.value
}

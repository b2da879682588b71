package services

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail reports whether the value looks like an email address.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateUsername reports whether a username was supplied.
func ValidateUsername(username string) bool {
	return strings.TrimSpace(username) != ""
}

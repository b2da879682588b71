package entities

import (
	"errors"
	"strings"
)

// Staff domain errors.
var (
	ErrStaffNotFound = errors.New("staff not found")
)

// RoleManager is the role granting staff-management rights. Role strings are
// free-form and compared case-insensitively.
const RoleManager = "manager"

// Staff is a clinic staff record. PasswordHash holds the bcrypt hash of the
// credential and is never serialized.
type Staff struct {
	StaffID      int64  `json:"staffId"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	NameSurname  string `json:"nameSurname"`
	PhoneNumber  string `json:"phoneNumber"`
	Birthday     string `json:"birthday"`
	Gender       string `json:"gender"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}

// IsManager reports whether the staff member holds the manager role.
func (s *Staff) IsManager() bool {
	return strings.EqualFold(s.Role, RoleManager)
}

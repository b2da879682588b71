package dto

import (
	"time"

	"clinicdesk/internal/clinic/domain/entities"
)

// CreateStaffRequest carries the fields for registering a staff member.
type CreateStaffRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	NameSurname string `json:"nameSurname"`
	PhoneNumber string `json:"phoneNumber"`
	Birthday    string `json:"birthday"`
	Gender      string `json:"gender"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// UpdateStaffRequest carries the replacement record for a staff member. An
// empty Password keeps the stored credential.
type UpdateStaffRequest struct {
	StaffID     int64  `json:"staffId"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	NameSurname string `json:"nameSurname"`
	PhoneNumber string `json:"phoneNumber"`
	Birthday    string `json:"birthday"`
	Gender      string `json:"gender"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// LoginRequest carries staff credentials. Credentials travel only in the
// request body, never in the URL.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued access token and the authenticated record.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	ExpiresAt   time.Time       `json:"expires_at"`
	Staff       *entities.Staff `json:"staff"`
}

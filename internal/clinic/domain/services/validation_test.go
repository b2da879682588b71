package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicdesk/internal/clinic/domain/services"
)

func TestValidatePhoneNumber(t *testing.T) {
	assert.True(t, services.ValidatePhoneNumber("0812345678"))
	assert.False(t, services.ValidatePhoneNumber("12345"))
	assert.False(t, services.ValidatePhoneNumber("081234567x"))
	assert.False(t, services.ValidatePhoneNumber(""))
}

func TestValidateBirthday(t *testing.T) {
	assert.True(t, services.ValidateBirthday("1988-04-12"))
	assert.True(t, services.ValidateBirthday("1988-04-12T00:00:00Z"))
	assert.False(t, services.ValidateBirthday("2999-01-01"))
	assert.False(t, services.ValidateBirthday("yesterday"))
	assert.False(t, services.ValidateBirthday(""))
}

func TestValidateCourseCount(t *testing.T) {
	assert.True(t, services.ValidateCourseCount(0))
	assert.True(t, services.ValidateCourseCount(12))
	assert.False(t, services.ValidateCourseCount(-1))
}

func TestValidateAppointmentDate(t *testing.T) {
	assert.True(t, services.ValidateAppointmentDate("2025-11-20T09:00:00Z"))
	assert.False(t, services.ValidateAppointmentDate(""))
	assert.False(t, services.ValidateAppointmentDate("   "))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, services.ValidateEmail("dr.lee@clinic.com"))
	assert.True(t, services.ValidateEmail("nurse.joy+shift@clinic.co.uk"))
	assert.False(t, services.ValidateEmail("not-an-email"))
	assert.False(t, services.ValidateEmail("missing@tld"))
	assert.False(t, services.ValidateEmail(""))
}

func TestValidateUsername(t *testing.T) {
	assert.True(t, services.ValidateUsername("admin"))
	assert.False(t, services.ValidateUsername(""))
	assert.False(t, services.ValidateUsername("   "))
}

func TestNormalizeAppointmentDate(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expected    string
		expectedErr error
	}{
		{
			name:     "rfc3339 timestamp",
			value:    "2025-11-20T09:00:00Z",
			expected: "2025-11-20",
		},
		{
			name:     "date only",
			value:    "2025-11-20",
			expected: "2025-11-20",
		},
		{
			name:     "timestamp with offset normalized to utc",
			value:    "2025-11-21T01:30:00+05:00",
			expected: "2025-11-20",
		},
		{
			name:        "garbage input",
			value:       "soon",
			expectedErr: services.ErrInvalidAppointmentDate,
		},
		{
			name:        "empty input",
			value:       "",
			expectedErr: services.ErrInvalidAppointmentDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized, err := services.NormalizeAppointmentDate(tt.value)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, normalized)
		})
	}
}

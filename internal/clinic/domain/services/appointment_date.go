package services

import "time"

const isoDateLayout = "2006-01-02"

// NormalizeAppointmentDate reduces an appointment date (date-only or RFC 3339)
// to its YYYY-MM-DD date part, the granularity at which slots conflict.
func NormalizeAppointmentDate(value string) (string, error) {
	if t, err := time.Parse(isoDateLayout, value); err == nil {
		return t.Format(isoDateLayout), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "", ErrInvalidAppointmentDate
	}
	return t.UTC().Format(isoDateLayout), nil
}

package valueobjects

import (
	"errors"
	"time"
)

// Date-of-birth validation errors.
var (
	ErrUnparsableDate = errors.New("invalid date format")
	ErrFutureBirthday = errors.New("birthday cannot be in the future")
)

// isoDateLayout is the date-only layout used throughout the clinic API.
const isoDateLayout = "2006-01-02"

// DateOfBirth is a validated birth date guaranteed not to lie in the future.
type DateOfBirth struct {
	value time.Time
}

// NewDateOfBirth parses a date string (date-only or RFC 3339) and rejects
// unparsable values and dates after the current instant.
func NewDateOfBirth(value string) (DateOfBirth, error) {
	return newDateOfBirthAt(value, time.Now())
}

func newDateOfBirthAt(value string, now time.Time) (DateOfBirth, error) {
	parsed, err := parseDate(value)
	if err != nil {
		return DateOfBirth{}, ErrUnparsableDate
	}
	if parsed.After(now) {
		return DateOfBirth{}, ErrFutureBirthday
	}
	return DateOfBirth{value: parsed}, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(isoDateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, ErrUnparsableDate
	}
	return t, nil
}

// Value returns the parsed birth date.
func (d DateOfBirth) Value() time.Time {
	return d.value
}

// ISODate renders the birth date as YYYY-MM-DD.
func (d DateOfBirth) ISODate() string {
	return d.value.Format(isoDateLayout)
}

// AgeAt returns the whole-year calendar age at the given instant: the year
// difference, decremented when the month/day precedes the birth month/day.
func (d DateOfBirth) AgeAt(at time.Time) int {
	age := at.Year() - d.value.Year()

	monthDiff := int(at.Month()) - int(d.value.Month())
	dayDiff := at.Day() - d.value.Day()
	if monthDiff < 0 || (monthDiff == 0 && dayDiff < 0) {
		age--
	}

	return age
}

// Age returns the whole-year calendar age as of now.
func (d DateOfBirth) Age() int {
	return d.AgeAt(time.Now())
}

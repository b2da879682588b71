// Package entities defines the core domain records of the clinic.
package entities

import (
	"errors"
	"time"

	"clinicdesk/internal/clinic/domain/valueobjects"
)

// Patient domain errors.
var (
	ErrPatientNotFound = errors.New("patient not found")
)

// Patient is a clinic patient record. The id is assigned by the datasource on
// create; AppointmentDate is nil when no visit is scheduled.
type Patient struct {
	PatientID       int64   `json:"patientId"`
	NameSurname     string  `json:"nameSurname"`
	PhoneNumber     string  `json:"phoneNumber"`
	Birthday        string  `json:"birthday"`
	Gender          string  `json:"gender"`
	AppointmentDate *string `json:"appointmentDate"`
	CourseCount     int     `json:"courseCount"`
	FirstVisitDate  string  `json:"firstVisitDate"`
}

// AgeAt derives the patient's whole-year calendar age at the given instant.
// It returns an error when the stored birthday does not parse.
func (p *Patient) AgeAt(at time.Time) (int, error) {
	dob, err := valueobjects.NewDateOfBirth(p.Birthday)
	if err != nil {
		return 0, err
	}
	return dob.AgeAt(at), nil
}

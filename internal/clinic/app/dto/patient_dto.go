// Package dto contains the data transfer objects passed into the use cases.
package dto

// CreatePatientRequest carries the fields for registering a patient. The id
// is assigned by the datasource.
type CreatePatientRequest struct {
	NameSurname     string  `json:"nameSurname"`
	PhoneNumber     string  `json:"phoneNumber"`
	Birthday        string  `json:"birthday"`
	Gender          string  `json:"gender"`
	AppointmentDate *string `json:"appointmentDate"`
	CourseCount     int     `json:"courseCount"`
	FirstVisitDate  string  `json:"firstVisitDate"`
}

// UpdatePatientRequest carries the full replacement record for a patient.
type UpdatePatientRequest struct {
	PatientID       int64   `json:"patientId"`
	NameSurname     string  `json:"nameSurname"`
	PhoneNumber     string  `json:"phoneNumber"`
	Birthday        string  `json:"birthday"`
	Gender          string  `json:"gender"`
	AppointmentDate *string `json:"appointmentDate"`
	CourseCount     int     `json:"courseCount"`
	FirstVisitDate  string  `json:"firstVisitDate"`
}

package reports_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"clinicdesk/internal/clinic/domain/entities"
	"clinicdesk/internal/clinic/reports"
)

func TestGeneratePatientExport(t *testing.T) {
	appointment := "2025-11-20T09:00:00Z"
	reference := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	workbook, err := reports.GeneratePatientExport([]*entities.Patient{
		{
			PatientID:       1,
			NameSurname:     "Alice Tan",
			PhoneNumber:     "0812345678",
			Birthday:        "1988-04-12",
			Gender:          "Female",
			AppointmentDate: &appointment,
			CourseCount:     3,
			FirstVisitDate:  "2024-01-15",
		},
		{
			PatientID:      2,
			NameSurname:    "Bob Cruz",
			PhoneNumber:    "0823456789",
			Birthday:       "1975-11-02",
			Gender:         "Male",
			CourseCount:    5,
			FirstVisitDate: "2023-12-10",
		},
	}, reference)
	require.NoError(t, err)
	require.NotEmpty(t, workbook)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Patients", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Name Surname", header)

	name, err := f.GetCellValue("Patients", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Alice Tan", name)

	age, err := f.GetCellValue("Patients", "E2")
	require.NoError(t, err)
	assert.Equal(t, "37", age)

	slot, err := f.GetCellValue("Patients", "G2")
	require.NoError(t, err)
	assert.Equal(t, appointment, slot)

	// Bob has no appointment; the cell stays empty.
	emptySlot, err := f.GetCellValue("Patients", "G3")
	require.NoError(t, err)
	assert.Empty(t, emptySlot)
}

func TestGeneratePatientExportEmptyRoster(t *testing.T) {
	workbook, err := reports.GeneratePatientExport(nil, time.Now())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(workbook))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Patients")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

// Package reports builds spreadsheet exports of clinic data.
package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"clinicdesk/internal/clinic/domain/entities"
)

const patientSheetName = "Patients"

var patientHeaders = []string{
	"ID",
	"Name Surname",
	"Phone Number",
	"Birthday",
	"Age",
	"Gender",
	"Appointment Date",
	"Course Count",
	"First Visit Date",
}

var patientColumnWidths = []float64{8, 28, 16, 14, 8, 10, 22, 14, 16}

// GeneratePatientExport renders the patient roster as an xlsx workbook.
// Ages are computed as of the given reference time.
func GeneratePatientExport(patients []*entities.Patient, now time.Time) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(patientSheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range patientHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(patientSheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(patientSheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i, width := range patientColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(patientSheetName, col, col, width); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for rowIdx, patient := range patients {
		row := rowIdx + 2

		appointment := ""
		if patient.AppointmentDate != nil {
			appointment = *patient.AppointmentDate
		}

		age := ""
		if years, err := patient.AgeAt(now); err == nil {
			age = fmt.Sprintf("%d", years)
		}

		values := []interface{}{
			patient.PatientID,
			patient.NameSurname,
			patient.PhoneNumber,
			patient.Birthday,
			age,
			patient.Gender,
			appointment,
			patient.CourseCount,
			patient.FirstVisitDate,
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(patientSheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SetPanes(patientSheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// Package reports contains the HTTP handlers for spreadsheet exports.
package reports

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"clinicdesk/internal/clinic/app/http/respond"
	"clinicdesk/internal/clinic/ports/api"
	"clinicdesk/internal/clinic/reports"
	"clinicdesk/pkg/logger"
)

const (
	LogHandlerPatientExport = "report handler: patient export"

	ErrorFailedToServeRequest = "failed to serve request"

	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	patientExportName = "patients.xlsx"
)

// Handler contains the HTTP handlers for exports.
type Handler struct {
	patientUseCase api.PatientUseCase
}

// NewHandler creates the report handler.
func NewHandler(patientUseCase api.PatientUseCase) *Handler {
	return &Handler{patientUseCase: patientUseCase}
}

// PatientExport streams the patient roster as an xlsx download.
func (h *Handler) PatientExport(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerPatientExport)

	patients, err := h.patientUseCase.List(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	workbook, err := reports.GeneratePatientExport(patients, time.Now())
	if err != nil {
		log.Error(requestCtx, "failed to generate patient export", zap.Error(err))
		return respond.Error(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", patientExportName))

	if err := ctx.Status(http.StatusOK).Send(workbook); err != nil {
		return fmt.Errorf("sending workbook: %w", err)
	}
	return nil
}

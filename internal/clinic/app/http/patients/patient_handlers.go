// Package patients contains the HTTP handlers for patient records.
package patients

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"clinicdesk/internal/clinic/app/dto"
	"clinicdesk/internal/clinic/app/http/respond"
	"clinicdesk/internal/clinic/ports/api"
	"clinicdesk/internal/clinic/ports/cache"
	"clinicdesk/pkg/logger"
)

const (
	LogHandlerList   = "patient handler: list"
	LogHandlerGet    = "patient handler: get"
	LogHandlerCreate = "patient handler: create"
	LogHandlerUpdate = "patient handler: update"
	LogHandlerDelete = "patient handler: delete"

	ErrorInvalidRequest       = "invalid request"
	ErrorInvalidPatientID     = "invalid patient id"
	ErrorPatientNotFound      = "patient not found"
	ErrorFailedToServeRequest = "failed to serve request"

	listCacheKey = "patients:all"
)

// Handler contains the HTTP handlers for patient records.
type Handler struct {
	patientUseCase api.PatientUseCase
	cache          cache.Cache
}

// NewHandler creates the patient handler. The cache may be nil, in which case
// list responses are always rebuilt.
func NewHandler(patientUseCase api.PatientUseCase, cache cache.Cache) *Handler {
	return &Handler{patientUseCase: patientUseCase, cache: cache}
}

// List returns all patients, optionally filtered by ?appointment_date=.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	if date := ctx.Query("appointment_date"); date != "" {
		patients, err := h.patientUseCase.ListByAppointmentDate(requestCtx, date)
		if err != nil {
			log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
			return respond.Error(ctx, respond.StatusFromError(err), err.Error())
		}
		if err := ctx.Status(http.StatusOK).JSON(patients); err != nil {
			return fmt.Errorf("sending response: %w", err)
		}
		return nil
	}

	if h.cache != nil {
		if cached, err := h.cache.Get(requestCtx, listCacheKey); err == nil && cached != "" {
			ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			if err := ctx.Status(http.StatusOK).SendString(cached); err != nil {
				return fmt.Errorf("sending cached response: %w", err)
			}
			return nil
		}
	}

	patients, err := h.patientUseCase.List(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if h.cache != nil {
		if body, err := json.Marshal(patients); err == nil {
			if err := h.cache.Set(requestCtx, listCacheKey, string(body), 0); err != nil {
				log.Debug(requestCtx, "failed to cache patient list", zap.Error(err))
			}
		}
	}

	if err := ctx.Status(http.StatusOK).JSON(patients); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Get returns a single patient by id.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGet)

	id, err := parseID(ctx)
	if err != nil {
		return respond.Error(ctx, http.StatusBadRequest, ErrorInvalidPatientID)
	}

	patient, err := h.patientUseCase.GetByID(requestCtx, id)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}
	if patient == nil {
		return respond.Error(ctx, http.StatusNotFound, ErrorPatientNotFound)
	}

	if err := ctx.Status(http.StatusOK).JSON(patient); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Create adds a new patient.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	var req dto.CreatePatientRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Error(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	created, err := h.patientUseCase.Add(requestCtx, &req)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, respond.StatusFromError(err), err.Error())
	}

	h.invalidateListCache(ctx)

	if err := ctx.Status(http.StatusCreated).JSON(created); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Update replaces the patient identified by the path id.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	id, err := parseID(ctx)
	if err != nil {
		return respond.Error(ctx, http.StatusBadRequest, ErrorInvalidPatientID)
	}

	var req dto.UpdatePatientRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Error(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}
	req.PatientID = id

	updated, err := h.patientUseCase.Update(requestCtx, &req)
	if err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, respond.StatusFromError(err), err.Error())
	}

	h.invalidateListCache(ctx)

	if err := ctx.Status(http.StatusOK).JSON(updated); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Delete removes the patient identified by the path id.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDelete)

	id, err := parseID(ctx)
	if err != nil {
		return respond.Error(ctx, http.StatusBadRequest, ErrorInvalidPatientID)
	}

	if err := h.patientUseCase.Delete(requestCtx, id); err != nil {
		log.Debug(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, respond.StatusFromError(err), err.Error())
	}

	h.invalidateListCache(ctx)

	return ctx.SendStatus(http.StatusNoContent)
}

func (h *Handler) invalidateListCache(ctx fiber.Ctx) {
	if h.cache == nil {
		return
	}
	requestCtx := ctx.Context()
	if err := h.cache.Delete(requestCtx, listCacheKey); err != nil {
		logger.Log(requestCtx).Debug(requestCtx, "failed to invalidate patient list cache", zap.Error(err))
	}
}

func parseID(ctx fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing patient id: %w", err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("parsing patient id: %w", strconv.ErrRange)
	}
	return id, nil
}

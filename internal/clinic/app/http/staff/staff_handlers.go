// Package staff contains the HTTP handlers for staff records.
package staff

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
	LogHandlerList          = "staff handler: list"
	LogHandlerGet           = "staff handler: get"
	LogHandlerGetByUsername = "staff handler: get by username"
	LogHandlerCreate        = "staff handler: create"
	LogHandlerUpdate        = "staff handler: update"
	LogHandlerDelete        = "staff handler: delete"

	ErrorInvalidRequest       = "invalid request"
	ErrorInvalidStaffID       = "invalid staff id"
	ErrorStaffNotFound        = "staff member not found"
	ErrorFailedToServeRequest = "failed to serve request"

	listCacheKey = "staff:all"
)

// Handler contains the HTTP handlers for staff records.
type Handler struct {
	staffUseCase api.StaffUseCase
	cache        cache.Cache
}

// NewHandler creates the staff handler. The cache may be nil.
func NewHandler(staffUseCase api.StaffUseCase, cache cache.Cache) *Handler {
	return &Handler{staffUseCase: staffUseCase, cache: cache}
}

// List returns all staff members.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	if h.cache != nil {
		if cached, err := h.cache.Get(requestCtx, listCacheKey); err == nil && cached != "" {
			ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			if err := ctx.Status(http.StatusOK).SendString(cached); err != nil {
				return fmt.Errorf("sending cached response: %w", err)
			}
			return nil
		}
	}

	staff, err := h.staffUseCase.List(requestCtx)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}

	if h.cache != nil {
		if body, err := json.Marshal(staff); err == nil {
			if err := h.cache.Set(requestCtx, listCacheKey, string(body), 0); err != nil {
				log.Debug(requestCtx, "failed to cache staff list", zap.Error(err))
			}
		}
	}

	if err := ctx.Status(http.StatusOK).JSON(staff); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Get returns a single staff member by id.
func (h *Handler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGet)

	id, err := parseID(ctx)
	if err != nil {
		return respond.Error(ctx, http.StatusBadRequest, ErrorInvalidStaffID)
	}

	staff, err := h.staffUseCase.GetByID(requestCtx, id)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}
	if staff == nil {
		return respond.Error(ctx, http.StatusNotFound, ErrorStaffNotFound)
	}

	if err := ctx.Status(http.StatusOK).JSON(staff); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetByUsername returns a single staff member by username.
func (h *Handler) GetByUsername(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetByUsername)

	username := ctx.Params("username")
	if username == "" {
		return respond.Error(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	staff, err := h.staffUseCase.GetByUsername(requestCtx, username)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}
	if staff == nil {
		return respond.Error(ctx, http.StatusNotFound, ErrorStaffNotFound)
	}

	if err := ctx.Status(http.StatusOK).JSON(staff); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Create adds a new staff member.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	var req dto.CreateStaffRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Error(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Password == "" {
		return respond.Error(ctx, http.StatusBadRequest, "password is required")
	}

	created, err := h.staffUseCase.Add(requestCtx, &req)
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

// Update replaces the staff member identified by the path id.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	id, err := parseID(ctx)
	if err != nil {
		return respond.Error(ctx, http.StatusBadRequest, ErrorInvalidStaffID)
	}

	var req dto.UpdateStaffRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Error(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}
	req.StaffID = id

	updated, err := h.staffUseCase.Update(requestCtx, &req)
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

// Delete removes the staff member identified by the path id.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDelete)

	id, err := parseID(ctx)
	if err != nil {
		return respond.Error(ctx, http.StatusBadRequest, ErrorInvalidStaffID)
	}

	if err := h.staffUseCase.Delete(requestCtx, id); err != nil {
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
		logger.Log(requestCtx).Debug(requestCtx, "failed to invalidate staff list cache", zap.Error(err))
	}
}

func parseID(ctx fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing staff id: %w", err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("parsing staff id: %w", strconv.ErrRange)
	}
	return id, nil
}

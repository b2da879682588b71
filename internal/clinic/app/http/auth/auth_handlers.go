// Package auth contains the HTTP handlers for authentication.
package auth

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"clinicdesk/internal/clinic/app/dto"
	"clinicdesk/internal/clinic/app/http/respond"
	"clinicdesk/internal/clinic/ports/api"
	"clinicdesk/pkg/logger"
)

const (
	LogHandlerLogin = "auth handler: login"

	ErrorInvalidRequest       = "invalid request"
	ErrorMissingCredentials   = "username and password are required"
	ErrorInvalidCredentials   = "invalid username or password"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Handler contains the HTTP handlers for authentication.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler creates the authentication handler.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{authUseCase: authUseCase}
}

// Login authenticates the posted credentials and returns an access token.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return respond.Error(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Username == "" || req.Password == "" {
		return respond.Error(ctx, http.StatusBadRequest, ErrorMissingCredentials)
	}

	response, err := h.authUseCase.Login(requestCtx, &req)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return respond.Error(ctx, http.StatusInternalServerError, ErrorFailedToServeRequest)
	}
	if response == nil {
		return respond.Error(ctx, http.StatusUnauthorized, ErrorInvalidCredentials)
	}

	if err := ctx.Status(http.StatusOK).JSON(response); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

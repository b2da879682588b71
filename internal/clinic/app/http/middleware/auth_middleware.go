package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"clinicdesk/internal/clinic/app/http/respond"
	"clinicdesk/internal/clinic/domain/entities"
	portservices "clinicdesk/internal/clinic/ports/services"
	"clinicdesk/pkg/logger"
)

// ClaimsKey is the fiber locals key holding the authenticated token claims.
const ClaimsKey = "staffClaims"

const (
	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
	ErrorManagerRequired    = "manager role required"
)

// NewAuthMiddleware validates the Bearer token and stores its claims in the
// request locals.
func NewAuthMiddleware(tokenSvc portservices.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return respond.Error(ctx, fiber.StatusUnauthorized, ErrorNoAuthHeader)
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return respond.Error(ctx, fiber.StatusUnauthorized, ErrorInvalidTokenFormat)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokenSvc.ValidateAccessToken(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return respond.Error(ctx, fiber.StatusUnauthorized, ErrorInvalidToken)
		}

		ctx.Locals(ClaimsKey, claims)

		return ctx.Next()
	}
}

// NewManagerMiddleware allows only staff with the manager role through. It
// must run after NewAuthMiddleware.
func NewManagerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "manager"))

		claims, ok := ctx.Locals(ClaimsKey).(*portservices.Claims)
		if !ok || claims == nil {
			log.Debug(requestCtx, ErrorInvalidToken)
			return respond.Error(ctx, fiber.StatusUnauthorized, ErrorInvalidToken)
		}

		if !strings.EqualFold(claims.Role, entities.RoleManager) {
			log.Debug(requestCtx, ErrorManagerRequired, zap.String("role", claims.Role))
			return respond.Error(ctx, fiber.StatusForbidden, ErrorManagerRequired)
		}

		return ctx.Next()
	}
}

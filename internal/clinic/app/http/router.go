// Package http wires the fiber application for the clinic service.
package http

import (
	"github.com/gofiber/fiber/v3"

	"clinicdesk/internal/clinic/app/http/auth"
	"clinicdesk/internal/clinic/app/http/middleware"
	"clinicdesk/internal/clinic/app/http/patients"
	"clinicdesk/internal/clinic/app/http/reports"
	"clinicdesk/internal/clinic/app/http/staff"
	"clinicdesk/internal/clinic/ports/api"
	"clinicdesk/internal/clinic/ports/cache"
	portservices "clinicdesk/internal/clinic/ports/services"
)

// SetupRouter configures the routes and middleware chain. The cache may be
// nil when response caching is disabled.
func SetupRouter(
	app *fiber.App,
	authUseCase api.AuthUseCase,
	patientUseCase api.PatientUseCase,
	staffUseCase api.StaffUseCase,
	tokenSvc portservices.TokenService,
	responseCache cache.Cache,
) {
	authHandler := auth.NewHandler(authUseCase)
	patientHandler := patients.NewHandler(patientUseCase, responseCache)
	staffHandler := staff.NewHandler(staffUseCase, responseCache)
	reportHandler := reports.NewHandler(patientUseCase)

	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	apiV1 := app.Group("/api/v1")

	// Public routes.
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/login", authHandler.Login)

	requireAuth := middleware.NewAuthMiddleware(tokenSvc)
	requireManager := middleware.NewManagerMiddleware()

	// Patient routes require a valid token.
	patientRoutes := apiV1.Group("/patients")
	patientRoutes.Use(requireAuth)
	patientRoutes.Get("/", patientHandler.List)
	patientRoutes.Post("/", patientHandler.Create)
	patientRoutes.Get("/:id", patientHandler.Get)
	patientRoutes.Put("/:id", patientHandler.Update)
	patientRoutes.Delete("/:id", patientHandler.Delete)

	// Staff reads require a token; staff mutations require the manager role.
	staffRoutes := apiV1.Group("/staff")
	staffRoutes.Use(requireAuth)
	staffRoutes.Get("/", staffHandler.List)
	staffRoutes.Get("/by-username/:username", staffHandler.GetByUsername)
	staffRoutes.Get("/:id", staffHandler.Get)
	staffRoutes.Post("/", staffHandler.Create, requireManager)
	staffRoutes.Put("/:id", staffHandler.Update, requireManager)
	staffRoutes.Delete("/:id", staffHandler.Delete, requireManager)

	// Exports.
	reportRoutes := apiV1.Group("/reports")
	reportRoutes.Use(requireAuth)
	reportRoutes.Get("/patients.xlsx", reportHandler.PatientExport)

	// Fallback for unknown routes.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}

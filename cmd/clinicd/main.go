package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"clinicdesk/internal/clinic/adapters/cache"
	"clinicdesk/internal/clinic/adapters/memory"
	pgadapter "clinicdesk/internal/clinic/adapters/postgres"
	"clinicdesk/internal/clinic/adapters/rest"
	"clinicdesk/internal/clinic/adapters/services"
	"clinicdesk/internal/clinic/app"
	httpServer "clinicdesk/internal/clinic/app/http"
	"clinicdesk/internal/clinic/config"
	portcache "clinicdesk/internal/clinic/ports/cache"
	"clinicdesk/internal/clinic/ports/repositories"
	"clinicdesk/pkg/db/postgres"
	"clinicdesk/pkg/logger"
	"clinicdesk/pkg/shutdown"
)

// Environment variables read before configuration is loaded.
const (
	EnvLoggerMode  = "CLINIC_LOGGER_MODE"
	EnvLoggerLevel = "CLINIC_LOGGER_LEVEL"
)

// Error messages.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrUnknownBackend       = "unknown storage backend"
	ErrConnectDatabase      = "failed to connect to database"
	ErrApplyMigrations      = "failed to apply migrations"
	ErrCreateRedisClient    = "failed to create redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Sync errors that are safe to ignore on process exit.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Service messages.
const (
	LogServiceStarted      = "clinic service started"
	LogServiceShutdownDone = "clinic service shutdown complete"
	LogInitStorage         = "initializing storage backend"
	LogInitCache           = "initializing response cache"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitStorage, zap.String("backend", cfg.Storage.Backend))

		var (
			patientRepo repositories.PatientRepository
			staffRepo   repositories.StaffRepository
			closeStore  func(context.Context) error
		)

		switch cfg.Storage.Backend {
		case config.StorageMemory:
			store := memory.NewStore(memory.WithLatency(cfg.Storage.Latency))
			patientRepo = memory.NewPatientRepository(store)
			staffRepo = memory.NewStaffRepository(store)

		case config.StoragePostgres:
			migrationsURL, err := postgres.MigrationsURL(cfg.Postgres.MigrationsPath)
			if err != nil {
				log.Error(ctx, ErrApplyMigrations, zap.Error(err))
				exitCode = 1
				return
			}
			if err := postgres.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), migrationsURL); err != nil {
				log.Error(ctx, ErrApplyMigrations, zap.Error(err))
				exitCode = 1
				return
			}

			db, err := postgres.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
			if err != nil {
				log.Error(ctx, ErrConnectDatabase, zap.Error(err))
				exitCode = 1
				return
			}

			factory := pgadapter.NewRepositoryFactory(db.Pool())
			patientRepo = factory.PatientRepository()
			staffRepo = factory.StaffRepository()
			closeStore = func(ctx context.Context) error {
				db.Close(ctx)
				return nil
			}

		case config.StorageRest:
			client := rest.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.RequestTimeout)
			if cfg.Upstream.AuthToken != "" {
				client.SetAuthToken(cfg.Upstream.AuthToken)
			}
			patientRepo = rest.NewPatientRepository(client)
			staffRepo = rest.NewStaffRepository(client)

		default:
			log.Error(ctx, ErrUnknownBackend, zap.String("backend", cfg.Storage.Backend))
			exitCode = 1
			return
		}

		var responseCache portcache.Cache
		if cfg.Redis.Enabled {
			log.Info(ctx, LogInitCache)
			responseCache, err = cache.NewRedisCache(ctx, &cfg.Redis)
			if err != nil {
				log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
				exitCode = 1
				return
			}
		}

		log.Info(ctx, LogInitUseCases)
		passwordSvc := services.NewBcrypt(cfg.JWT.BCryptCost)
		tokenSvc := services.NewJWT(cfg.JWT.SecretKey, cfg.JWT.GetAccessTokenTTL())

		patientUseCase := app.NewPatientUseCase(patientRepo)
		staffUseCase := app.NewStaffUseCase(staffRepo, passwordSvc)
		authUseCase := app.NewAuthUseCase(staffRepo, passwordSvc, tokenSvc)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpServer.SetupRouter(fiberApp, authUseCase, patientUseCase, staffUseCase, tokenSvc, responseCache)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.Shutdown()
			},
			func(ctx context.Context) error {
				if responseCache != nil {
					log.Info(ctx, "closing redis connection")
					return responseCache.Close()
				}
				return nil
			},
			func(ctx context.Context) error {
				if closeStore != nil {
					log.Info(ctx, "closing database connection")
					return closeStore(ctx)
				}
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

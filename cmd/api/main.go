// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

// Command api is the entry point for the attendance HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/F0ch1s/asistencia-jovenes/internal/api"
	"github.com/F0ch1s/asistencia-jovenes/internal/attendee"
	"github.com/F0ch1s/asistencia-jovenes/internal/event"
	"github.com/F0ch1s/asistencia-jovenes/internal/intake"
	"github.com/F0ch1s/asistencia-jovenes/internal/operator"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/config"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/constants"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/migration"
	pgstore "github.com/F0ch1s/asistencia-jovenes/internal/platform/postgres"
	redisstore "github.com/F0ch1s/asistencia-jovenes/internal/platform/redis"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/sec"
	"github.com/F0ch1s/asistencia-jovenes/internal/records"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	operatorRepository := operator.NewRepository(pool)
	sessionRepository := operator.NewSessionRepository(pool)
	operatorService := operator.NewService(operatorRepository, sessionRepository, jwtSvc)
	authHandler := operator.NewHandler(operatorService)

	eventRepository := event.NewPostgresRepository(pool)
	eventService := event.NewService(eventRepository, log)
	eventHandler := event.NewHandler(eventService)

	attendeeRepository := attendee.NewRepository(pool)
	gateway := intake.NewPostgresGateway(pool, attendeeRepository)
	lookup := intake.NewCachedLookup(intake.NewPostgresLookup(pool, attendeeRepository), rdb, cfg.LookupTTL)
	intakeService := intake.NewService(gateway, lookup)
	intakeHandler := intake.NewHandler(intakeService)

	recordsRepository := records.NewRepository(pool)
	recordsService := records.NewService(recordsRepository, log)
	recordsHandler := records.NewHandler(recordsService)

	// ── 9. Background Cleanup ─────────────────────────────────────────────
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()
	go sessionCleanupLoop(appCtx, sessionRepository, log)

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Event:     eventHandler,
		Intake:    intakeHandler,
		Records:   recordsHandler,
	}

	server := api.NewServer(appCtx, cfg, log, jwtSvc, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// sessionCleanupLoop periodically deletes expired refresh sessions so the
// sessions table does not grow without bound.
func sessionCleanupLoop(ctx context.Context, sessions operator.SessionRepository, log *slog.Logger) {
	ticker := time.NewTicker(constants.SessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sessions.DeleteExpired(ctx); err != nil {
				log.Error("session_cleanup_failed", slog.Any("error", err))
			}
		}
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}

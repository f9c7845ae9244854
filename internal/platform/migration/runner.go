// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

// Package migration runs the schema migrations at startup so the server
// never serves traffic against an out-of-date database.
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers the "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunUp applies every pending UP migration found under migrationsPath.
//
// A dirty database (a migration that died halfway) is refused outright:
// attendance rows must never be written against a half-applied schema, so
// recovery is left to an operator with the migrate CLI.
func RunUp(dsn string, migrationsPath string, logger *slog.Logger) error {
	migrator, err := migrate.New("file://"+migrationsPath, pgx5DSN(dsn))
	if err != nil {
		return fmt.Errorf("migration: init failed: %w", err)
	}
	defer closeMigrator(migrator, logger)

	migrator.Log = &slogBridge{logger: logger}

	version, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration: version check failed: %w", err)
	}
	if dirty {
		return fmt.Errorf("migration: schema dirty at version %d, manual intervention required", version)
	}

	logger.Info("migration_started", slog.Int("current_version", int(version)))

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("migration_already_up_to_date")
			return nil
		}
		return fmt.Errorf("migration: up failed: %w", err)
	}

	applied, _, _ := migrator.Version()
	logger.Info("migration_successful",
		slog.Int("from_version", int(version)),
		slog.Int("to_version", int(applied)),
	)
	return nil
}

func closeMigrator(migrator *migrate.Migrate, logger *slog.Logger) {
	sourceErr, dbErr := migrator.Close()
	if sourceErr != nil {
		logger.Error("migration_source_close_failed", slog.Any("error", sourceErr))
	}
	if dbErr != nil {
		logger.Error("migration_db_close_failed", slog.Any("error", dbErr))
	}
}

// pgx5DSN rewrites a postgres:// or postgresql:// URL to the pgx5://
// scheme golang-migrate's pgx/v5 driver registers. Anything else passes
// through untouched.
func pgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}

// slogBridge adapts golang-migrate's logger interface to slog.
type slogBridge struct {
	logger  *slog.Logger
	verbose bool
}

func (b *slogBridge) Printf(format string, args ...any) {
	b.logger.Debug(fmt.Sprintf(format, args...))
}

func (b *slogBridge) Verbose() bool {
	return b.verbose
}

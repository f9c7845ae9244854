// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/F0ch1s/asistencia-jovenes/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful
// [apperr.AppError]. It hides internal database details from the client
// while classifying the error type.
//
// # Classification
//
//  1. pgx.ErrNoRows       → NOT_FOUND
//  2. SQLSTATE 23505      → CONFLICT (unique violation, e.g. an attendee
//     linked to the same event twice)
//  3. SQLSTATE 23503      → UNPROCESSABLE (foreign key violation: linking
//     requires both the attendee and the event rows to already exist)
//  4. anything else       → PERSISTENCE_ERROR with the cause retained for logs
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("Already registered")
		case pgerrcode.ForeignKeyViolation:
			return apperr.Unprocessable("Referenced record does not exist")
		}
	}

	return apperr.Persistence(fmt.Errorf("%s: %w", action, err))
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Stores use this to give duplicate rows a precise message
// before falling back to [Wrap].
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

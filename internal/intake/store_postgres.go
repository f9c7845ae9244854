// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package intake

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/F0ch1s/asistencia-jovenes/internal/attendee"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/apperr"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/ctxutil"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/dberr"
	"github.com/F0ch1s/asistencia-jovenes/pkg/uuidv7"
)

// PostgresGateway implements [Gateway] over the attendees and registrations
// tables. It owns the registrations table (the event↔attendee link rows);
// attendee rows go through the attendee repository so search keys and column
// mapping live in one place.
type PostgresGateway struct {
	pool      *pgxpool.Pool
	attendees attendee.Repository
}

// NewPostgresGateway creates the production gateway.
func NewPostgresGateway(pool *pgxpool.Pool, attendees attendee.Repository) *PostgresGateway {
	return &PostgresGateway{pool: pool, attendees: attendees}
}

// ResolveOperator returns the authenticated operator's ID from ctx.
//
// Resolution happens here, at write time, rather than when the form was
// built: an expired session fails the whole submission before any row is
// touched.
func (g *PostgresGateway) ResolveOperator(ctx context.Context) (string, error) {
	claims := ctxutil.GetOperator(ctx)
	if claims == nil || claims.OperatorID == "" {
		return "", apperr.Unauthorized("Operator session could not be resolved")
	}
	return claims.OperatorID, nil
}

// CreateAttendee persists a new attendee row.
func (g *PostgresGateway) CreateAttendee(ctx context.Context, a *attendee.Attendee) error {
	if err := g.attendees.Create(ctx, a); err != nil {
		return apperr.Persistence(fmt.Errorf("postgres_create_attendee_failed: %w", err))
	}
	return nil
}

// LinkAttendee inserts the registration row tying an attendee to an event.
// Registering the same attendee for the same event twice is a conflict.
func (g *PostgresGateway) LinkAttendee(ctx context.Context, eventID, attendeeID, registeredBy string) error {
	const query = `
		INSERT INTO registrations (id, eventid, attendeeid, registeredby, createdat)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := g.pool.Exec(ctx, query, uuidv7.New(), eventID, attendeeID, registeredBy, time.Now())
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Already registered for this event")
		}
		// FK violations (unknown event or attendee id) map to 422 here.
		return dberr.Wrap(err, "postgres_link_attendee_failed")
	}
	return nil
}

// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package records

import (
	"context"

	"github.com/F0ch1s/asistencia-jovenes/internal/attendee"
)

// Repository reads the attendees registered for an event.
type Repository interface {
	// ListRegistered returns every attendee linked to the event, ordered by
	// family then given names.
	//
	// Returns [apperr.NotFound] when the event does not exist.
	ListRegistered(ctx context.Context, eventID string) ([]*attendee.Attendee, error)
}

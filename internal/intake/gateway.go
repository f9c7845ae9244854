// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package intake

import (
	"context"

	"github.com/F0ch1s/asistencia-jovenes/internal/attendee"
)

// Option is a selectable entry in a lookup list.
type Option struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// Gateway is everything a form needs from the outside world to complete a
// registration. The operator performing the write is resolved from the
// request context immediately before persisting, never captured at form
// construction, so a form outliving a login session can never stamp rows
// with a stale operator.
type Gateway interface {
	// ResolveOperator returns the ID of the authenticated operator carried
	// by ctx, or an authentication error when none is present.
	ResolveOperator(ctx context.Context) (string, error)

	// CreateAttendee persists a new attendee row.
	CreateAttendee(ctx context.Context, a *attendee.Attendee) error

	// LinkAttendee records that the attendee is registered for the event.
	// A duplicate pair surfaces as a conflict error.
	LinkAttendee(ctx context.Context, eventID, attendeeID, registeredBy string) error
}

// LookupProvider serves the option lists the form's pickers are built from.
// Implementations may serve a recent snapshot; the pickers tolerate a few
// minutes of staleness.
type LookupProvider interface {
	Events(ctx context.Context) ([]Option, error)
	Attendees(ctx context.Context, search string) ([]Option, error)
}

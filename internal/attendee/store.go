// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package attendee

import "context"

// Repository defines the data access contract for attendee records.
//
// # Implementations
//
// The canonical implementation is PostgreSQL (store_postgres.go). The intake
// persistence gateway composes it for its create-then-link sequence.
type Repository interface {
	// Create persists a brand-new attendee row.
	//
	// The caller is responsible for generating and setting the ID before
	// calling this method.
	Create(ctx context.Context, a *Attendee) error

	// FindByID returns the attendee with the given ID.
	//
	// Returns [apperr.NotFound] if the attendee does not exist.
	FindByID(ctx context.Context, id string) (*Attendee, error)

	// List returns attendees whose folded display name contains the search
	// key, plus the total count. An empty search matches everyone.
	List(ctx context.Context, search string, limit, offset int) ([]*Attendee, int, error)
}

// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package intake

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/F0ch1s/asistencia-jovenes/internal/attendee"
)

// attendeeLookupLimit caps the attendee picker list. The picker is meant
// for narrowing by name, not for paging through the full roster.
const attendeeLookupLimit = 20

// PostgresLookup implements [LookupProvider] straight from the database.
// Wrap it in [CachedLookup] to absorb the picker traffic during check-in.
type PostgresLookup struct {
	pool      *pgxpool.Pool
	attendees attendee.Repository
}

func NewPostgresLookup(pool *pgxpool.Pool, attendees attendee.Repository) *PostgresLookup {
	return &PostgresLookup{pool: pool, attendees: attendees}
}

// Events returns every event, newest first, as picker options.
func (l *PostgresLookup) Events(ctx context.Context) ([]Option, error) {
	const query = `
		SELECT id, name
		FROM events
		ORDER BY eventdate DESC, name ASC`

	rows, err := l.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_lookup_events_failed: %w", err)
	}
	defer rows.Close()

	options := make([]Option, 0)
	for rows.Next() {
		var opt Option
		if err := rows.Scan(&opt.ID, &opt.DisplayName); err != nil {
			return nil, fmt.Errorf("postgres_lookup_events_scan_failed: %w", err)
		}
		options = append(options, opt)
	}
	return options, rows.Err()
}

// Attendees returns attendees whose folded name contains the folded search
// term, so "muñoz" and "Munoz" find the same rows. The fold happens inside
// the attendee repository's search-key matching.
func (l *PostgresLookup) Attendees(ctx context.Context, search string) ([]Option, error) {
	matches, _, err := l.attendees.List(ctx, search, attendeeLookupLimit, 0)
	if err != nil {
		return nil, err
	}

	options := make([]Option, 0, len(matches))
	for _, a := range matches {
		options = append(options, Option{ID: a.ID, DisplayName: a.DisplayName()})
	}
	return options, nil
}

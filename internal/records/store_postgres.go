// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package records

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/F0ch1s/asistencia-jovenes/internal/attendee"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/apperr"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListRegistered joins registrations to attendees for one event.
func (repository *PostgresRepository) ListRegistered(ctx context.Context, eventID string) ([]*attendee.Attendee, error) {
	// Existence first, so an empty event and an unknown event answer
	// differently.
	const existsQuery = `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`

	var exists bool
	if err := repository.pool.QueryRow(ctx, existsQuery, eventID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("postgres_records_repo_event_check_failed: %w", err)
	}
	if !exists {
		return nil, apperr.NotFound("Event")
	}

	const query = `
		SELECT
			a.id, a.givennames, a.familynames, a.age, a.category, a.subprofile,
			a.phone, a.phonedeclined, a.email, a.emaildeclined,
			a.socialhandle, a.handledeclined, a.firsttime, a.registeredby, a.createdat
		FROM registrations r
		JOIN attendees a ON a.id = r.attendeeid
		WHERE r.eventid = $1
		ORDER BY a.familynames ASC, a.givennames ASC`

	rows, err := repository.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("postgres_records_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var attendees []*attendee.Attendee
	for rows.Next() {
		a := &attendee.Attendee{}
		if err := rows.Scan(
			&a.ID, &a.GivenNames, &a.FamilyNames, &a.Age, &a.Category, &a.SubProfile,
			&a.Phone, &a.PhoneDeclined, &a.Email, &a.EmailDeclined,
			&a.SocialHandle, &a.HandleDeclined, &a.FirstTime, &a.RegisteredBy, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_records_repo_scan_failed: %w", err)
		}
		attendees = append(attendees, a)
	}

	return attendees, rows.Err()
}

// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package attendee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/F0ch1s/asistencia-jovenes/internal/platform/apperr"
	"github.com/F0ch1s/asistencia-jovenes/pkg/searchkey"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// attendeeColumns is the scan list shared by every read query.
const attendeeColumns = `
	id, givennames, familynames, age, category, subprofile,
	phone, phonedeclined, email, emaildeclined,
	socialhandle, handledeclined, firsttime, registeredby, createdat`

// Create persists a new attendee record.
//
// # Parameters
//   - ctx: Context for the database operation.
//   - a: The attendee entity to persist.
func (repository *PostgresRepository) Create(ctx context.Context, a *Attendee) error {
	const query = `
		INSERT INTO attendees (
			id, givennames, familynames, age, category, subprofile,
			phone, phonedeclined, email, emaildeclined,
			socialhandle, handledeclined, firsttime, registeredby,
			searchkey, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(ctx, query,
		a.ID,
		a.GivenNames,
		a.FamilyNames,
		a.Age,
		a.Category,
		a.SubProfile,
		a.Phone,
		a.PhoneDeclined,
		a.Email,
		a.EmailDeclined,
		a.SocialHandle,
		a.HandleDeclined,
		a.FirstTime,
		a.RegisteredBy,
		searchkey.From(a.DisplayName()),
		a.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_attendee_repo_create_failed: %w", err)
	}

	return nil
}

// FindByID retrieves an attendee record by its unique ID.
//
// # Returns
//
// Returns [*Attendee] if found, or [apperr.NotFound] if no record exists.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Attendee, error) {
	query := `SELECT` + attendeeColumns + ` FROM attendees WHERE id = $1`

	a := &Attendee{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.GivenNames,
		&a.FamilyNames,
		&a.Age,
		&a.Category,
		&a.SubProfile,
		&a.Phone,
		&a.PhoneDeclined,
		&a.Email,
		&a.EmailDeclined,
		&a.SocialHandle,
		&a.HandleDeclined,
		&a.FirstTime,
		&a.RegisteredBy,
		&a.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Attendee")
		}
		return nil, fmt.Errorf("postgres_attendee_repo_find_by_id_failed: %w", err)
	}

	return a, nil
}

// List retrieves attendees matching the folded search key, newest first.
//
// An empty search matches every attendee. The total count is returned
// alongside the page for pagination metadata.
func (repository *PostgresRepository) List(ctx context.Context, search string, limit, offset int) ([]*Attendee, int, error) {
	pattern := "%" + searchkey.From(search) + "%"

	const countQuery = `SELECT COUNT(*) FROM attendees WHERE searchkey LIKE $1`

	var total int
	if err := repository.pool.QueryRow(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_attendee_repo_count_failed: %w", err)
	}

	query := `SELECT` + attendeeColumns + `
		FROM attendees
		WHERE searchkey LIKE $1
		ORDER BY familynames, givennames
		LIMIT $2 OFFSET $3`

	rows, err := repository.pool.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_attendee_repo_list_failed: %w", err)
	}
	defer rows.Close()

	var attendees []*Attendee
	for rows.Next() {
		a := &Attendee{}
		if err := rows.Scan(
			&a.ID,
			&a.GivenNames,
			&a.FamilyNames,
			&a.Age,
			&a.Category,
			&a.SubProfile,
			&a.Phone,
			&a.PhoneDeclined,
			&a.Email,
			&a.EmailDeclined,
			&a.SocialHandle,
			&a.HandleDeclined,
			&a.FirstTime,
			&a.RegisteredBy,
			&a.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("postgres_attendee_repo_scan_failed: %w", err)
		}
		attendees = append(attendees, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_attendee_repo_rows_failed: %w", err)
	}

	return attendees, total, nil
}

// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package event

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/F0ch1s/asistencia-jovenes/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListEvents(ctx context.Context, f Filter, limit, offset int) ([]*Event, int, error) {
	query := `
		SELECT id, name, to_char(eventdate, 'YYYY-MM-DD'), createdby, createdat
		FROM events`
	countQuery := `SELECT count(*) FROM events`

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		query += ` WHERE name ILIKE $1`
		countQuery += ` WHERE name ILIKE $1`
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += ` ORDER BY eventdate DESC, name ASC LIMIT $` + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_events")
	}

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_events")
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(&e.ID, &e.Name, &e.EventDate, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_event")
		}
		events = append(events, e)
	}

	return events, total, rows.Err()
}

func (repository *PostgresRepository) GetEvent(ctx context.Context, id string) (*Event, error) {
	const query = `
		SELECT id, name, to_char(eventdate, 'YYYY-MM-DD'), createdby, createdat
		FROM events
		WHERE id = $1`

	e := &Event{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.EventDate, &e.CreatedBy, &e.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_event")
	}
	return e, nil
}

func (repository *PostgresRepository) CreateEvent(ctx context.Context, e *Event) error {
	const query = `
		INSERT INTO events (id, name, eventdate, createdby, createdat)
		VALUES ($1, $2, $3::date, $4, $5)`

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := repository.db.Exec(ctx, query, e.ID, e.Name, e.EventDate, e.CreatedBy, e.CreatedAt)
	return dberr.Wrap(err, "create_event")
}

func itos(i int) string {
	return strconv.Itoa(i)
}

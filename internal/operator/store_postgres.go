// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package operator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/F0ch1s/asistencia-jovenes/internal/platform/apperr"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/dberr"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const operatorColumns = `id, username, passwordhash, displayname, role, isactive, createdat`

// Create persists a new operator record.
func (repository *PostgresRepository) Create(ctx context.Context, op *Operator) error {
	const query = `
		INSERT INTO operators (id, username, passwordhash, displayname, role, isactive, createdat)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if op.CreatedAt.IsZero() {
		op.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(ctx, query,
		op.ID,
		op.Username,
		op.PasswordHash,
		op.DisplayName,
		op.Role,
		op.IsActive,
		op.CreatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Username is already taken")
		}
		return fmt.Errorf("postgres_operator_repo_create_failed: %w", err)
	}

	return nil
}

// FindByID retrieves an operator record by ID.
//
// # Returns
//
// Returns [*Operator] if found, or [apperr.NotFound] if no account exists.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (*Operator, error) {
	const query = `
		SELECT ` + operatorColumns + `
		FROM operators
		WHERE id = $1`

	op := &Operator{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&op.ID,
		&op.Username,
		&op.PasswordHash,
		&op.DisplayName,
		&op.Role,
		&op.IsActive,
		&op.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Operator")
		}
		return nil, fmt.Errorf("postgres_operator_repo_find_by_id_failed: %w", err)
	}

	return op, nil
}

// FindByUsername retrieves an operator record by their unique username.
func (repository *PostgresRepository) FindByUsername(ctx context.Context, username string) (*Operator, error) {
	const query = `
		SELECT ` + operatorColumns + `
		FROM operators
		WHERE username = $1`

	op := &Operator{}
	err := repository.pool.QueryRow(ctx, query, username).Scan(
		&op.ID,
		&op.Username,
		&op.PasswordHash,
		&op.DisplayName,
		&op.Role,
		&op.IsActive,
		&op.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Operator")
		}
		return nil, fmt.Errorf("postgres_operator_repo_find_by_username_failed: %w", err)
	}

	return op, nil
}

// SetActive flips the account's login gate.
func (repository *PostgresRepository) SetActive(ctx context.Context, id string, active bool) error {
	const query = `UPDATE operators SET isactive = $2 WHERE id = $1`

	cmd, err := repository.pool.Exec(ctx, query, id, active)
	if err != nil {
		return fmt.Errorf("postgres_operator_repo_set_active_failed: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Operator")
	}
	return nil
}

// # Session Repository

// PostgresSessionRepository implements the SessionRepository interface using pgx.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new PostgreSQL implementation of the SessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

// Create persists a new refresh-token session.
func (repository *PostgresSessionRepository) Create(ctx context.Context, session *Session) error {
	const query = `
		INSERT INTO sessions (id, operatorid, tokenhash, useragent, ipaddress, expiresat, isrevoked, createdat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(ctx, query,
		session.ID,
		session.OperatorID,
		session.TokenHash,
		session.UserAgent,
		session.IPAddress,
		session.ExpiresAt,
		session.IsRevoked,
		session.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_session_repo_create_failed: %w", err)
	}

	return nil
}

// FindByTokenHash returns the live session matching the token hash.
//
// Expired and revoked sessions are filtered in the query so the caller
// never has to re-check them.
func (repository *PostgresSessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*Session, error) {
	const query = `
		SELECT id, operatorid, tokenhash, useragent, ipaddress, expiresat, isrevoked, createdat
		FROM sessions
		WHERE tokenhash = $1 AND isrevoked = FALSE AND expiresat > NOW()`

	session := &Session{}
	err := repository.pool.QueryRow(ctx, query, tokenHash).Scan(
		&session.ID,
		&session.OperatorID,
		&session.TokenHash,
		&session.UserAgent,
		&session.IPAddress,
		&session.ExpiresAt,
		&session.IsRevoked,
		&session.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Session")
		}
		return nil, fmt.Errorf("postgres_session_repo_find_failed: %w", err)
	}

	return session, nil
}

// Revoke marks a specific session as permanently invalidated.
func (repository *PostgresSessionRepository) Revoke(ctx context.Context, sessionID string) error {
	const query = `UPDATE sessions SET isrevoked = TRUE WHERE id = $1`

	if _, err := repository.pool.Exec(ctx, query, sessionID); err != nil {
		return fmt.Errorf("postgres_session_repo_revoke_failed: %w", err)
	}
	return nil
}

// RevokeAll revokes every active session belonging to the operator.
func (repository *PostgresSessionRepository) RevokeAll(ctx context.Context, operatorID string) error {
	const query = `UPDATE sessions SET isrevoked = TRUE WHERE operatorid = $1 AND isrevoked = FALSE`

	if _, err := repository.pool.Exec(ctx, query, operatorID); err != nil {
		return fmt.Errorf("postgres_session_repo_revoke_all_failed: %w", err)
	}
	return nil
}

// DeleteExpired physically removes sessions past their expiry.
func (repository *PostgresSessionRepository) DeleteExpired(ctx context.Context) error {
	const query = `DELETE FROM sessions WHERE expiresat < NOW()`

	if _, err := repository.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("postgres_session_repo_delete_expired_failed: %w", err)
	}
	return nil
}

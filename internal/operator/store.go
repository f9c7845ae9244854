// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package operator

import "context"

// Repository defines the data access contract for operator accounts.
type Repository interface {
	// FindByID returns the operator with the given ID.
	//
	// Returns [apperr.NotFound] if the operator does not exist.
	FindByID(ctx context.Context, id string) (*Operator, error)

	// FindByUsername returns the operator with the given username.
	//
	// Returns [apperr.NotFound] if the username is unknown.
	FindByUsername(ctx context.Context, username string) (*Operator, error)

	// Create persists a brand-new operator account.
	//
	// Returns a wrapped error if the username unique constraint fails.
	Create(ctx context.Context, op *Operator) error

	// SetActive flips the account's login gate.
	SetActive(ctx context.Context, id string, active bool) error
}

// SessionRepository defines the data access contract for refresh-token
// sessions.
type SessionRepository interface {
	// Create persists a new tracking session for an authenticated login.
	Create(ctx context.Context, session *Session) error

	// FindByTokenHash returns the active session matching the token hash.
	//
	// Returns [apperr.NotFound] if the session is invalid, expired, or revoked.
	FindByTokenHash(ctx context.Context, tokenHash string) (*Session, error)

	// Revoke marks a specific session as permanently invalidated.
	Revoke(ctx context.Context, sessionID string) error

	// RevokeAll revokes every active session belonging to the operator.
	// Used when an account is deactivated.
	RevokeAll(ctx context.Context, operatorID string) error

	// DeleteExpired physically removes sessions whose ExpiresAt is in the
	// past. Called by a periodic background cleanup worker.
	DeleteExpired(ctx context.Context) error
}

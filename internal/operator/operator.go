// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

// Package operator manages the encargados who run event check-in: their
// accounts, credentials, and refresh-token sessions.
//
// # Architecture
//
// Entities here have no dependencies on outer layers (databases, HTTP,
// frameworks). Authorization levels live in [sec.OperatorRole] so the HTTP
// middleware can enforce them without importing this package.
package operator

import (
	"time"

	"github.com/F0ch1s/asistencia-jovenes/internal/platform/sec"
)

// Operator represents a staff member allowed to register attendees.
//
// # Rules
//   - Username is unique and URL-safe.
//   - PasswordHash is generated via Bcrypt exclusively via the Service.
//   - IsActive gates login; deactivation is the kill switch for departed staff.
type Operator struct {
	ID           string           `json:"id"`
	Username     string           `json:"username"`
	PasswordHash string           `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string           `json:"display_name"`
	Role         sec.OperatorRole `json:"role"`
	IsActive     bool             `json:"is_active"`
	CreatedAt    time.Time        `json:"created_at"`
}

// Session represents an active refresh-token session.
//
// # Security Concept
//
// Access tokens (JWT) are stateless and cannot be revoked before expiry.
// Short-lived JWTs are paired with long-lived sessions stored in the
// database; revoking a session logs the operator out globally.
type Session struct {
	ID         string    `json:"id"`
	OperatorID string    `json:"operator_id"`
	TokenHash  string    `json:"-"` // Hashed refresh token. Omitted for security.
	UserAgent  string    `json:"user_agent"`
	IPAddress  string    `json:"ip_address"`
	ExpiresAt  time.Time `json:"expires_at"`
	IsRevoked  bool      `json:"is_revoked"`
	CreatedAt  time.Time `json:"created_at"`
}

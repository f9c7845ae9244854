// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

// Package operator's service implements the account and session use cases.
// It is technology-agnostic and does not know about HTTP or SQL.
package operator

import (
	"context"
	"fmt"
	"time"

	"github.com/F0ch1s/asistencia-jovenes/internal/platform/apperr"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/constants"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/sec"
	"github.com/F0ch1s/asistencia-jovenes/pkg/uuidv7"
)

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the operator.
	GenerateAccessToken(operatorID, displayName, role string, timeToLive time.Duration) (string, error)
}

// Service implements operator authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing or login
// logic must be reviewed before merging.
type Service struct {
	operatorRepository Repository
	sessionRepository  SessionRepository
	tokenProvider      TokenProvider
}

// NewService constructs a new [Service] with its dependencies.
func NewService(
	operatorRepo Repository,
	sessionRepo SessionRepository,
	tokenProv TokenProvider,
) *Service {
	return &Service{
		operatorRepository: operatorRepo,
		sessionRepository:  sessionRepo,
		tokenProvider:      tokenProv,
	}
}

// EnrollInput holds the data required to enroll a new operator.
type EnrollInput struct {
	Username    string
	Password    string
	DisplayName string
	Role        sec.OperatorRole
}

// Enroll validates, hashes, and persists a new operator account.
//
// # Business Rules
//   - Usernames must be unique.
//   - Only admins reach this path (enforced at the HTTP layer).
//   - New accounts start active.
func (service *Service) Enroll(ctx context.Context, input EnrollInput) (*Operator, error) {
	// ── 1. Uniqueness Check ───────────────────────────────────────────────

	_, err := service.operatorRepository.FindByUsername(ctx, input.Username)
	if err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	// ── 2. Security ───────────────────────────────────────────────────────

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("operator_service_hash_failed: %w", err)
	}

	// ── 3. Entity Construction ────────────────────────────────────────────

	role := input.Role
	if role == "" {
		role = sec.RoleStaff
	}

	op := &Operator{
		ID:           uuidv7.New(), // Time-sortable ID to prevent PG index fragmentation.
		Username:     input.Username,
		PasswordHash: hashedPassword,
		DisplayName:  input.DisplayName,
		Role:         role,
		IsActive:     true,
	}

	// ── 4. Persistence ────────────────────────────────────────────────────

	if err := service.operatorRepository.Create(ctx, op); err != nil {
		return nil, fmt.Errorf("operator_service_enroll_failed: %w", err)
	}

	return op, nil
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username  string
	Password  string
	UserAgent string
	IPAddress string
}

// LoginSession represents a successfully established operator session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	Operator              *Operator
}

// Login validates operator credentials and issues security tokens.
//
// # Flow
//  1. Lookup the operator by username.
//  2. Verify the password hash using Bcrypt.
//  3. Issue a short-lived JWT and a long-lived refresh session.
//
// Returns [apperr.Unauthorized] with a generic message on any credential
// failure to prevent username enumeration.
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginSession, error) {
	// ── 1. Fetch Operator ─────────────────────────────────────────────────

	op, err := service.operatorRepository.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// ── 2. Security Verification ──────────────────────────────────────────

	// Bcrypt comparison is constant-time.
	if !sec.CheckPasswordHash(input.Password, op.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !op.IsActive {
		return nil, apperr.Forbidden("Account is deactivated")
	}

	// ── 3. Token Issuance ─────────────────────────────────────────────────

	accessToken, err := service.tokenProvider.GenerateAccessToken(
		op.ID, op.DisplayName, string(op.Role), constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("operator_service_token_generation_failed: %w", err)
	}

	// ── 4. Refresh Session ────────────────────────────────────────────────

	refreshToken, err := sec.GenerateSecureToken(32)
	if err != nil {
		return nil, fmt.Errorf("operator_service_refresh_token_failed: %w", err)
	}

	expiresAt := time.Now().Add(constants.RefreshSessionTTL)
	session := &Session{
		ID:         uuidv7.New(),
		OperatorID: op.ID,
		TokenHash:  sec.HashToken(refreshToken),
		UserAgent:  input.UserAgent,
		IPAddress:  input.IPAddress,
		ExpiresAt:  expiresAt,
		IsRevoked:  false,
	}

	if err := service.sessionRepository.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("operator_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		Operator:              op,
	}, nil
}

// Logout permanently revokes the operator's active session so the tracked
// refresh token can never be used again.
func (service *Service) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := sec.HashToken(refreshToken)
	session, err := service.sessionRepository.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		// Session already gone or invalid; logout stays idempotent.
		return nil
	}

	if err := service.sessionRepository.Revoke(ctx, session.ID); err != nil {
		return fmt.Errorf("operator_service_logout_failed: %w", err)
	}

	return nil
}

// RefreshSession implements refresh token rotation: verify the existing
// token, revoke it to prevent replay, issue a fresh pair.
func (service *Service) RefreshSession(ctx context.Context, refreshToken, userAgent, ipAddress string) (*LoginSession, error) {
	// ── 1. Find Existing Session ──────────────────────────────────────────

	tokenHash := sec.HashToken(refreshToken)
	session, err := service.sessionRepository.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	// ── 2. Rotation ───────────────────────────────────────────────────────

	if err := service.sessionRepository.Revoke(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("operator_service_refresh_revoke_failed: %w", err)
	}

	// ── 3. Find Operator ──────────────────────────────────────────────────

	op, err := service.operatorRepository.FindByID(ctx, session.OperatorID)
	if err != nil || !op.IsActive {
		return nil, apperr.Unauthorized("Operator not found or deactivated")
	}

	// ── 4. Issue New Tokens ───────────────────────────────────────────────

	accessToken, err := service.tokenProvider.GenerateAccessToken(
		op.ID, op.DisplayName, string(op.Role), constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("operator_service_refresh_access_token_failed: %w", err)
	}

	newRefreshToken, err := sec.GenerateSecureToken(32)
	if err != nil {
		return nil, fmt.Errorf("operator_service_refresh_secure_token_failed: %w", err)
	}

	expiresAt := time.Now().Add(constants.RefreshSessionTTL)
	newSession := &Session{
		ID:         uuidv7.New(),
		OperatorID: op.ID,
		TokenHash:  sec.HashToken(newRefreshToken),
		UserAgent:  userAgent,
		IPAddress:  ipAddress,
		ExpiresAt:  expiresAt,
		IsRevoked:  false,
	}

	if err := service.sessionRepository.Create(ctx, newSession); err != nil {
		return nil, fmt.Errorf("operator_service_refresh_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          newRefreshToken,
		RefreshTokenExpiresAt: expiresAt,
		Operator:              op,
	}, nil
}

// Deactivate flips an operator's account off and revokes every session.
func (service *Service) Deactivate(ctx context.Context, operatorID string) error {
	if err := service.operatorRepository.SetActive(ctx, operatorID, false); err != nil {
		return err
	}
	if err := service.sessionRepository.RevokeAll(ctx, operatorID); err != nil {
		return fmt.Errorf("operator_service_deactivate_revoke_failed: %w", err)
	}
	return nil
}

// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package operator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/F0ch1s/asistencia-jovenes/internal/platform/apperr"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/sec"
)

type memoryRepository struct {
	operators map[string]*Operator // keyed by username
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{operators: make(map[string]*Operator)}
}

func (r *memoryRepository) FindByID(ctx context.Context, id string) (*Operator, error) {
	for _, op := range r.operators {
		if op.ID == id {
			return op, nil
		}
	}
	return nil, apperr.NotFound("Operator")
}

func (r *memoryRepository) FindByUsername(ctx context.Context, username string) (*Operator, error) {
	if op, ok := r.operators[username]; ok {
		return op, nil
	}
	return nil, apperr.NotFound("Operator")
}

func (r *memoryRepository) Create(ctx context.Context, op *Operator) error {
	r.operators[op.Username] = op
	return nil
}

func (r *memoryRepository) SetActive(ctx context.Context, id string, active bool) error {
	for _, op := range r.operators {
		if op.ID == id {
			op.IsActive = active
			return nil
		}
	}
	return apperr.NotFound("Operator")
}

type memorySessions struct {
	sessions map[string]*Session // keyed by token hash
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: make(map[string]*Session)}
}

func (r *memorySessions) Create(ctx context.Context, s *Session) error {
	r.sessions[s.TokenHash] = s
	return nil
}

func (r *memorySessions) FindByTokenHash(ctx context.Context, tokenHash string) (*Session, error) {
	s, ok := r.sessions[tokenHash]
	if !ok || s.IsRevoked || s.ExpiresAt.Before(time.Now()) {
		return nil, apperr.NotFound("Session")
	}
	return s, nil
}

func (r *memorySessions) Revoke(ctx context.Context, sessionID string) error {
	for _, s := range r.sessions {
		if s.ID == sessionID {
			s.IsRevoked = true
			return nil
		}
	}
	return nil
}

func (r *memorySessions) RevokeAll(ctx context.Context, operatorID string) error {
	for _, s := range r.sessions {
		if s.OperatorID == operatorID {
			s.IsRevoked = true
		}
	}
	return nil
}

func (r *memorySessions) DeleteExpired(ctx context.Context) error { return nil }

type staticTokens struct{}

func (staticTokens) GenerateAccessToken(operatorID, displayName, role string, ttl time.Duration) (string, error) {
	return "jwt-" + operatorID, nil
}

func newTestService(t *testing.T) (*Service, *memoryRepository, *memorySessions) {
	t.Helper()
	repo := newMemoryRepository()
	sessions := newMemorySessions()
	return NewService(repo, sessions, staticTokens{}), repo, sessions
}

func enrollTestOperator(t *testing.T, service *Service) *Operator {
	t.Helper()
	op, err := service.Enroll(context.Background(), EnrollInput{
		Username:    "carla",
		Password:    "correct-horse",
		DisplayName: "Carla",
	})
	require.NoError(t, err)
	return op
}

/*
TestService_Enroll verifies hashing, default role, and username uniqueness.
*/
func TestService_Enroll(t *testing.T) {
	service, repo, _ := newTestService(t)

	op := enrollTestOperator(t, service)

	assert.NotEmpty(t, op.ID)
	assert.Equal(t, sec.RoleStaff, op.Role)
	assert.True(t, op.IsActive)
	assert.NotEqual(t, "correct-horse", op.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("correct-horse", op.PasswordHash))
	assert.Len(t, repo.operators, 1)

	// Duplicate username is rejected
	_, err := service.Enroll(context.Background(), EnrollInput{
		Username: "carla", Password: "whatever-else", DisplayName: "Other",
	})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

/*
TestService_Login verifies the credential check and session issuance.
*/
func TestService_Login(t *testing.T) {
	service, _, sessions := newTestService(t)
	op := enrollTestOperator(t, service)

	session, err := service.Login(context.Background(), LoginInput{
		Username: "carla",
		Password: "correct-horse",
	})

	require.NoError(t, err)
	assert.Equal(t, "jwt-"+op.ID, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Len(t, sessions.sessions, 1)
}

/*
TestService_Login_BadCredentials verifies the generic unauthorized answer
for unknown usernames and wrong passwords alike.
*/
func TestService_Login_BadCredentials(t *testing.T) {
	service, _, _ := newTestService(t)
	enrollTestOperator(t, service)

	testCases := []struct {
		name  string
		input LoginInput
	}{
		{"unknown username", LoginInput{Username: "nobody", Password: "correct-horse"}},
		{"wrong password", LoginInput{Username: "carla", Password: "wrong"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), testCase.input)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "UNAUTHORIZED", appErr.Code)
			assert.Equal(t, "Invalid login credentials", appErr.Message)
		})
	}
}

/*
TestService_Login_DeactivatedAccount verifies deactivated operators cannot
log in even with correct credentials.
*/
func TestService_Login_DeactivatedAccount(t *testing.T) {
	service, _, _ := newTestService(t)
	op := enrollTestOperator(t, service)

	require.NoError(t, service.Deactivate(context.Background(), op.ID))

	_, err := service.Login(context.Background(), LoginInput{
		Username: "carla", Password: "correct-horse",
	})

	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
}

/*
TestService_RefreshSession verifies rotation: the old token dies, the new
one works once.
*/
func TestService_RefreshSession(t *testing.T) {
	service, _, _ := newTestService(t)
	enrollTestOperator(t, service)

	login, err := service.Login(context.Background(), LoginInput{
		Username: "carla", Password: "correct-horse",
	})
	require.NoError(t, err)

	rotated, err := service.RefreshSession(context.Background(), login.RefreshToken, "", "")
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, rotated.RefreshToken)

	// Replay of the consumed token is refused
	_, err = service.RefreshSession(context.Background(), login.RefreshToken, "", "")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

/*
TestService_Logout verifies revocation and idempotency.
*/
func TestService_Logout(t *testing.T) {
	service, _, _ := newTestService(t)
	enrollTestOperator(t, service)

	login, err := service.Login(context.Background(), LoginInput{
		Username: "carla", Password: "correct-horse",
	})
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), login.RefreshToken))

	// The session is dead
	_, err = service.RefreshSession(context.Background(), login.RefreshToken, "", "")
	require.Error(t, err)

	// Logging out again is still fine
	require.NoError(t, service.Logout(context.Background(), login.RefreshToken))
}

// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package operator

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/F0ch1s/asistencia-jovenes/internal/platform/constants"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/middleware"
	requestutil "github.com/F0ch1s/asistencia-jovenes/internal/platform/request"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/respond"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/sec"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/validate"
)

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the operator endpoints.
//
// # Endpoints
//   - POST /login       : Authenticates and returns a JWT plus refresh token.
//   - POST /refresh     : Rotates the refresh token.
//   - POST /logout      : Revokes the refresh session.
//   - POST /            : Enrolls a new operator (admin only).
//   - POST /{id}/deactivate : Kills an account and its sessions (admin only).
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)

	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAuth, middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.enroll)
		adminRoute.Post("/{id}/deactivate", handler.deactivate)
	})
}

// loginRequest represents the JSON payload expected for authentication.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	if input.Username == "" || input.Password == "" {
		respond.Error(writer, request, validate.RequiredError("username/password", "are required"))
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	session, err := handler.service.Login(request.Context(), LoginInput{
		Username:  input.Username,
		Password:  input.Password,
		UserAgent: request.UserAgent(),
		IPAddress: request.Header.Get(constants.HeaderXRealIP),
	})

	if err != nil {
		// 401 without leaking whether the username or the password was wrong.
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.OK(writer, map[string]any{
		"access_token":  session.AccessToken,
		"refresh_token": session.RefreshToken,
		"expires_at":    session.RefreshTokenExpiresAt,
		"operator":      session.Operator,
	})
}

// refreshRequest carries the refresh token to rotate.
type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.RefreshToken == "" {
		respond.Error(writer, request, validate.RequiredError("refresh_token", "is required"))
		return
	}

	session, err := handler.service.RefreshSession(request.Context(),
		input.RefreshToken, request.UserAgent(), request.Header.Get(constants.HeaderXRealIP))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"access_token":  session.AccessToken,
		"refresh_token": session.RefreshToken,
		"expires_at":    session.RefreshTokenExpiresAt,
	})
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Logout(request.Context(), input.RefreshToken); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// enrollRequest represents the JSON payload for creating an operator.
type enrollRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func (handler *Handler) enroll(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input enrollRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	validator := &validate.Validator{}
	validator.Required("username", input.Username).MinLen("username", input.Username, 3)
	validator.Required("password", input.Password).MinLen("password", input.Password, 8)
	validator.Required("display_name", input.DisplayName)
	if input.Role != "" {
		validator.OneOf("role", input.Role, string(sec.RoleAdmin), string(sec.RoleStaff))
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	op, err := handler.service.Enroll(request.Context(), EnrollInput{
		Username:    input.Username,
		Password:    input.Password,
		DisplayName: input.DisplayName,
		Role:        sec.OperatorRole(input.Role),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.Created(writer, op)
}

func (handler *Handler) deactivate(writer http.ResponseWriter, request *http.Request) {
	operatorID := requestutil.Param(request, "id")

	if err := handler.service.Deactivate(request.Context(), operatorID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package records

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/F0ch1s/asistencia-jovenes/internal/platform/middleware"
	requestutil "github.com/F0ch1s/asistencia-jovenes/internal/platform/request"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/respond"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the records view next to the event routes.
// The grouped view exposes contact data, so it stays admin-only.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.With(middleware.RequireAuth, middleware.RequireRole(sec.RoleAdmin)).
		Get("/{id}/records", handler.eventSummary)
}

func (handler *Handler) eventSummary(writer http.ResponseWriter, request *http.Request) {
	eventID := requestutil.Param(request, "id")

	summary, err := handler.service.EventSummary(request.Context(), eventID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}

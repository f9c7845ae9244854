// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/F0ch1s/asistencia-jovenes/internal/platform/middleware"
	requestutil "github.com/F0ch1s/asistencia-jovenes/internal/platform/request"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/respond"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/sec"
	"github.com/F0ch1s/asistencia-jovenes/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listEvents)
	router.Get("/{id}", handler.getEvent)

	// Creating events is an admin action; staff only register attendees.
	router.With(middleware.RequireRole(sec.RoleAdmin)).Post("/", handler.createEvent)
}

func (handler *Handler) listEvents(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	events, total, err := handler.service.ListEvents(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, events, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getEvent(writer http.ResponseWriter, request *http.Request) {
	eventID := requestutil.Param(request, "id")

	found, err := handler.service.GetEvent(request.Context(), eventID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) createEvent(writer http.ResponseWriter, request *http.Request) {
	operatorID, err := requestutil.RequiredOperatorID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Event
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateEvent(request.Context(), &input, operatorID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

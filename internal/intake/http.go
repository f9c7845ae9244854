// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package intake

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/F0ch1s/asistencia-jovenes/internal/platform/middleware"
	requestutil "github.com/F0ch1s/asistencia-jovenes/internal/platform/request"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the intake endpoints. Everything requires an
// authenticated operator: lookups feed the pickers, registrations persist.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Group(func(secure chi.Router) {
		secure.Use(middleware.RequireAuth)

		secure.Get("/lookups/events", handler.eventOptions)
		secure.Get("/lookups/attendees", handler.attendeeOptions)
		secure.Post("/registrations", handler.register)
	})
}

func (handler *Handler) eventOptions(writer http.ResponseWriter, request *http.Request) {
	options, err := handler.service.EventOptions(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, options)
}

func (handler *Handler) attendeeOptions(writer http.ResponseWriter, request *http.Request) {
	search := request.URL.Query().Get("q")

	options, err := handler.service.AttendeeOptions(request.Context(), search)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, options)
}

func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input RegistrationInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Register(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, result)
}

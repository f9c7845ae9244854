// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package event

import (
	"context"
	"log/slog"

	"github.com/F0ch1s/asistencia-jovenes/internal/platform/validate"
	"github.com/F0ch1s/asistencia-jovenes/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListEvents(ctx context.Context, filter Filter, limit, offset int) ([]*Event, int, error) {
	return service.repo.ListEvents(ctx, filter, limit, offset)
}

func (service *Service) GetEvent(ctx context.Context, id string) (*Event, error) {
	return service.repo.GetEvent(ctx, id)
}

// CreateEvent validates and persists a new event, stamping the creating
// operator.
func (service *Service) CreateEvent(ctx context.Context, e *Event, operatorID string) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, e.Name).MaxLen(FieldName, e.Name, 200)
	validator.Required(FieldEventDate, e.EventDate).Date(FieldEventDate, e.EventDate)

	if err := validator.Err(); err != nil {
		return err
	}

	e.ID = uuidv7.New()
	e.CreatedBy = operatorID

	if err := service.repo.CreateEvent(ctx, e); err != nil {
		return err
	}

	service.logger.Info("event_created",
		slog.String("event_id", e.ID),
		slog.String("name", e.Name),
		slog.String("operator_id", operatorID))
	return nil
}

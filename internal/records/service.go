// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package records

import (
	"context"
	"log/slog"
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

// EventSummary loads the event's registered attendees and aggregates them.
func (service *Service) EventSummary(ctx context.Context, eventID string) (Summary, error) {
	attendees, err := service.repo.ListRegistered(ctx, eventID)
	if err != nil {
		return Summary{}, err
	}

	summary := Aggregate(attendees)

	if dropped := len(attendees) - summary.Total; dropped > 0 {
		service.logger.Warn("records_rows_dropped",
			slog.String("event_id", eventID),
			slog.Int("dropped", dropped))
	}

	return summary, nil
}

// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package event

import "context"

type Repository interface {
	ListEvents(ctx context.Context, f Filter, limit, offset int) ([]*Event, int, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	CreateEvent(ctx context.Context, e *Event) error
}

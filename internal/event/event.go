// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package event

import "time"

// Event is one dated gathering attendees register against.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	EventDate string    `json:"event_date"` // YYYY-MM-DD
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// Filter holds the parameters for a paginated event search.
type Filter struct {
	Query string // substring match against name
}

const (
	FieldName      = "name"
	FieldEventDate = "event_date"
)

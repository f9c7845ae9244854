// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package intake

// Selection names who a submission is for: a brand-new attendee described by
// the draft, or an existing one picked from lookup. Exactly one variant is
// active at a time; the form swaps between them explicitly, so "mode" is
// never inferred from which fields happen to be filled.
type Selection interface {
	isSelection()
}

// NewAttendee submits the current draft as a new attendee row.
type NewAttendee struct {
	Draft *Draft
}

// ExistingAttendee links a previously registered attendee to the event.
type ExistingAttendee struct {
	AttendeeID  string
	DisplayName string
}

func (NewAttendee) isSelection()      {}
func (ExistingAttendee) isSelection() {}

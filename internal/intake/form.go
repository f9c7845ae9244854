// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

/*
Package intake implements the registration form: the draft an operator edits,
the three-state contact fields, the new-vs-existing attendee selection, and
the submission state machine that turns a valid draft into persisted rows.

# Submission lifecycle

A form is idle or submitting, nothing else. Submit refuses to start while a
previous submission is in flight, validates the draft with ordered
short-circuit checks, resolves the operator from the request context, and
only then writes: create the attendee (new-attendee mode) and link it to the
event. On success the person-specific fields reset while the event stays
selected, ready for the next registration of the same session.
*/
package intake

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

// ErrSubmissionInFlight is returned by Submit while a previous submission
// has not finished yet.
var ErrSubmissionInFlight = errors.New("intake: submission already in flight")

// minHandleLen is the shortest accepted social handle.
const minHandleLen = 3

// minNameLen is the shortest accepted name part, counted in runes after
// trimming.
const minNameLen = 2

// emailRegex accepts the plain local@domain.tld shape and nothing looser:
// no display names, no TLD-less domains.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// formState is the submission phase of a form.
type formState int

const (
	stateIdle formState = iota
	stateSubmitting
)

// ValidationError is a submit-time rule failure. The draft is left untouched
// so the operator can correct the named field and resubmit.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Result reports what a successful submission persisted.
type Result struct {
	AttendeeID string `json:"attendee_id"`
	EventID    string `json:"event_id"`
	// Created is true when a new attendee row was inserted, false when an
	// existing attendee was linked.
	Created bool `json:"created"`
}

// Form is the registration form for one operator session.
//
// # Concurrency
//
// Form is safe for concurrent use; a mutex serializes edits and enforces the
// single-flight submission guard.
type Form struct {
	gateway  Gateway
	notifier Notifier

	mu        sync.Mutex
	state     formState
	eventID   string
	draft     *Draft
	selection Selection
}

// NewForm returns an idle form with an empty draft in new-attendee mode.
func NewForm(gateway Gateway, notifier Notifier) *Form {
	f := &Form{
		gateway:  gateway,
		notifier: notifier,
		draft:    NewDraft(),
	}
	f.selection = NewAttendee{Draft: f.draft}
	return f
}

// SelectEvent sets the event the next submissions register against.
func (f *Form) SelectEvent(eventID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.eventID = eventID
}

// SelectedEvent returns the currently selected event ID, empty when none.
func (f *Form) SelectedEvent() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.eventID
}

// Draft exposes the editable draft. Callers mutate it through its setters;
// the form re-reads it at submit time.
func (f *Form) Draft() *Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SelectExistingAttendee switches the form to existing-attendee mode.
//
// The lookup is only offered to returning attendees, so the switch is
// refused while the draft still says "first time".
func (f *Form) SelectExistingAttendee(attendeeID, displayName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.draft.FirstTime {
		return &ValidationError{
			Field:   "attendee_id",
			Message: "Existing attendees can only be selected for returning visitors",
		}
	}
	f.selection = ExistingAttendee{AttendeeID: attendeeID, DisplayName: displayName}
	return nil
}

// ClearAttendeeSelection returns the form to new-attendee mode. The draft
// keeps whatever was typed before the existing attendee was picked.
func (f *Form) ClearAttendeeSelection() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selection = NewAttendee{Draft: f.draft}
}

// Selection returns the active submission target.
func (f *Form) Selection() Selection {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selection
}

// Submit validates the form and persists the registration.
//
// Exactly one submission runs at a time; concurrent calls get
// [ErrSubmissionInFlight] immediately. The operator is resolved from ctx
// right before the first write. In new-attendee mode the attendee row is
// created first and linked second; if the link fails after the create
// succeeded, the created row is kept, no compensating delete is attempted,
// and the error is reported so the operator can link the now-existing
// attendee instead.
func (f *Form) Submit(ctx context.Context) (Result, error) {
	f.mu.Lock()
	if f.state == stateSubmitting {
		f.mu.Unlock()
		return Result{}, ErrSubmissionInFlight
	}
	f.state = stateSubmitting
	eventID := f.eventID
	selection := f.selection
	f.mu.Unlock()

	result, err := f.submit(ctx, eventID, selection)

	f.mu.Lock()
	f.state = stateIdle
	if err == nil {
		// Same event, fresh person: the operator registers attendees
		// back to back during one event.
		f.draft = NewDraft()
		f.selection = NewAttendee{Draft: f.draft}
	}
	f.mu.Unlock()

	if err != nil {
		f.notifier.Notify(Notice{Level: NoticeError, Message: err.Error()})
		return Result{}, err
	}
	f.notifier.Notify(Notice{Level: NoticeSuccess, Message: "Registration saved"})
	return result, nil
}

func (f *Form) submit(ctx context.Context, eventID string, selection Selection) (Result, error) {
	// ── 1. Validate before touching identity or storage ──────────────────
	if err := validateSubmission(eventID, selection); err != nil {
		return Result{}, err
	}

	// ── 2. Resolve the operator; refuse to write without one ─────────────
	operatorID, err := f.gateway.ResolveOperator(ctx)
	if err != nil {
		return Result{}, err
	}

	// ── 3. Persist: create (new mode) then link ──────────────────────────
	switch sel := selection.(type) {
	case NewAttendee:
		row := sel.Draft.ToAttendee(operatorID)
		if err := f.gateway.CreateAttendee(ctx, row); err != nil {
			return Result{}, err
		}
		if err := f.gateway.LinkAttendee(ctx, eventID, row.ID, operatorID); err != nil {
			return Result{}, err
		}
		return Result{AttendeeID: row.ID, EventID: eventID, Created: true}, nil

	case ExistingAttendee:
		if err := f.gateway.LinkAttendee(ctx, eventID, sel.AttendeeID, operatorID); err != nil {
			return Result{}, err
		}
		return Result{AttendeeID: sel.AttendeeID, EventID: eventID, Created: false}, nil

	default:
		return Result{}, errors.New("intake: unknown selection variant")
	}
}

// validateSubmission applies the ordered submit-time checks. The first
// failing rule wins; later fields are not inspected.
func validateSubmission(eventID string, selection Selection) error {
	if eventID == "" {
		return &ValidationError{Field: "event_id", Message: "Select an event"}
	}

	// Existing-attendee mode reuses a row that already passed these checks.
	sel, ok := selection.(NewAttendee)
	if !ok {
		if existing, ok := selection.(ExistingAttendee); !ok || existing.AttendeeID == "" {
			return &ValidationError{Field: "attendee_id", Message: "Select an attendee"}
		}
		return nil
	}

	d := sel.Draft
	if utf8.RuneCountInString(strings.TrimSpace(d.GivenNames)) < minNameLen {
		return &ValidationError{Field: "given_names", Message: "Enter the given names"}
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.FamilyNames)) < minNameLen {
		return &ValidationError{Field: "family_names", Message: "Enter the family names"}
	}
	if d.Age <= 0 {
		return &ValidationError{Field: "age", Message: "Enter a valid age"}
	}
	if d.Category.RequiresSubProfile() && !d.Category.IsValidSubProfile(d.SubProfile) {
		return &ValidationError{Field: "sub_profile", Message: "Select a profile"}
	}
	if !d.Phone.IsDeclined() && len(d.Phone.Value()) != maxPhoneDigits {
		return &ValidationError{Field: "phone", Message: "Phone number must have 9 digits"}
	}
	// Email and handle are optional: shape rules apply only once something
	// was typed.
	if !d.Email.IsBlank() && !d.Email.IsDeclined() && !emailRegex.MatchString(d.Email.Value()) {
		return &ValidationError{Field: "email", Message: "Enter a valid email address"}
	}
	if !d.SocialHandle.IsBlank() && !d.SocialHandle.IsDeclined() && utf8.RuneCountInString(strings.TrimSpace(d.SocialHandle.Value())) < minHandleLen {
		return &ValidationError{Field: "social_handle", Message: "Social handle must have at least 3 characters"}
	}
	return nil
}

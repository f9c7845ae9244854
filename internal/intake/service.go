// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package intake

import (
	"context"
	"errors"

	"github.com/F0ch1s/asistencia-jovenes/internal/attendee"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/apperr"
)

// Service exposes the intake flow to transport handlers. Each registration
// request drives a fresh [Form] through the same path an interactive session
// takes: populate the draft, pick the selection, submit once.
type Service struct {
	gateway Gateway
	lookup  LookupProvider
}

// NewService creates the intake service.
func NewService(gateway Gateway, lookup LookupProvider) *Service {
	return &Service{gateway: gateway, lookup: lookup}
}

// AttendeePayload carries the raw field inputs for a new attendee. String
// fields arrive as typed, normalization happens through the draft setters.
type AttendeePayload struct {
	GivenNames     string `json:"given_names"`
	FamilyNames    string `json:"family_names"`
	AgeInput       string `json:"age_input"`
	SubProfile     string `json:"sub_profile"`
	PhoneInput     string `json:"phone_input"`
	PhoneDeclined  bool   `json:"phone_declined"`
	Email          string `json:"email"`
	EmailDeclined  bool   `json:"email_declined"`
	SocialHandle   string `json:"social_handle"`
	HandleDeclined bool   `json:"handle_declined"`
	FirstTime      bool   `json:"first_time"`
}

// RegistrationInput is one registration request. Exactly one of AttendeeID
// (link an existing attendee) or Attendee (create a new one) must be set.
type RegistrationInput struct {
	EventID    string           `json:"event_id"`
	AttendeeID string           `json:"attendee_id,omitempty"`
	Attendee   *AttendeePayload `json:"attendee,omitempty"`
}

// EventOptions returns the event picker list.
func (service *Service) EventOptions(ctx context.Context) ([]Option, error) {
	return service.lookup.Events(ctx)
}

// AttendeeOptions returns the attendee picker list for a search term.
func (service *Service) AttendeeOptions(ctx context.Context, search string) ([]Option, error) {
	return service.lookup.Attendees(ctx, search)
}

// Register runs one registration through a fresh form.
//
// Form-level rule failures come back as a 400 with the failing field named;
// everything past validation keeps its gateway error class (401 for an
// unresolvable operator, 409 for a duplicate link, 500 for rejected writes).
func (service *Service) Register(ctx context.Context, input RegistrationInput) (Result, error) {

	// ── 1. Exactly one submission target ──────────────────────────────────
	if (input.AttendeeID == "") == (input.Attendee == nil) {
		return Result{}, apperr.ValidationError(
			"Provide either an existing attendee or a new attendee, not both",
			apperr.FieldError{Field: "attendee", Message: "Exactly one of attendee_id or attendee is required"},
		)
	}

	// ── 2. Drive a fresh form ─────────────────────────────────────────────
	form := NewForm(service.gateway, NewLatestNotifier())
	form.SelectEvent(input.EventID)

	if input.Attendee != nil {
		applyPayload(form.Draft(), input.Attendee)
	} else {
		form.Draft().SetFirstTime(false)
		if err := form.SelectExistingAttendee(input.AttendeeID, ""); err != nil {
			return Result{}, translateFormError(err)
		}
	}

	// ── 3. Submit ─────────────────────────────────────────────────────────
	result, err := form.Submit(ctx)
	if err != nil {
		return Result{}, translateFormError(err)
	}
	return result, nil
}

// applyPayload pushes the raw payload through the draft setters so HTTP
// input gets the same normalization as interactive typing.
func applyPayload(draft *Draft, payload *AttendeePayload) {
	draft.SetFirstTime(payload.FirstTime)
	draft.SetGivenNames(payload.GivenNames)
	draft.SetFamilyNames(payload.FamilyNames)
	draft.SetAgeInput(payload.AgeInput)
	draft.SetSubProfile(attendee.SubProfile(payload.SubProfile))

	if payload.PhoneDeclined {
		draft.Phone.ToggleDeclined()
	} else {
		draft.SetPhoneInput(payload.PhoneInput)
	}
	if payload.EmailDeclined {
		draft.Email.ToggleDeclined()
	} else {
		draft.SetEmailInput(payload.Email)
	}
	if payload.HandleDeclined {
		draft.SocialHandle.ToggleDeclined()
	} else {
		draft.SetSocialHandleInput(payload.SocialHandle)
	}
}

// translateFormError maps form-level errors onto the API error taxonomy.
func translateFormError(err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return apperr.ValidationError(verr.Message,
			apperr.FieldError{Field: verr.Field, Message: verr.Message})
	}
	if errors.Is(err, ErrSubmissionInFlight) {
		return apperr.Conflict("A submission is already in progress")
	}
	return err
}

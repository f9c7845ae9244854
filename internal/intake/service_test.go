// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package intake

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/F0ch1s/asistencia-jovenes/internal/platform/apperr"
)

type stubLookup struct {
	events    []Option
	attendees []Option
}

func (l *stubLookup) Events(ctx context.Context) ([]Option, error) { return l.events, nil }
func (l *stubLookup) Attendees(ctx context.Context, search string) ([]Option, error) {
	return l.attendees, nil
}

/*
TestService_Register_ExactlyOneTarget verifies the request must name exactly
one of an existing attendee or a new attendee payload.
*/
func TestService_Register_ExactlyOneTarget(t *testing.T) {
	service := NewService(newSpyGateway(), &stubLookup{})

	testCases := []struct {
		name  string
		input RegistrationInput
	}{
		{"neither", RegistrationInput{EventID: "evt-1"}},
		{"both", RegistrationInput{
			EventID:    "evt-1",
			AttendeeID: "att-1",
			Attendee:   &AttendeePayload{},
		}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.Register(context.Background(), testCase.input)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

/*
TestService_Register_NewAttendee verifies a payload flows through the draft
normalization before persisting.
*/
func TestService_Register_NewAttendee(t *testing.T) {
	gateway := newSpyGateway()
	service := NewService(gateway, &stubLookup{})

	result, err := service.Register(context.Background(), RegistrationInput{
		EventID: "evt-1",
		Attendee: &AttendeePayload{
			GivenNames:     "Lucía",
			FamilyNames:    "Fernández",
			AgeInput:       "016",
			PhoneInput:     "(+51) 87654321",
			Email:          "lucia@example.com",
			SocialHandle:   "@lucia",
			HandleDeclined: false,
			FirstTime:      true,
		},
	})

	require.NoError(t, err)
	assert.True(t, result.Created)
	require.Len(t, gateway.created, 1)
	assert.Equal(t, 16, gateway.created[0].Age)
	assert.Equal(t, "518765432", gateway.created[0].Phone)
}

/*
TestService_Register_ValidationErrorsAre400 verifies form rule failures come
back as validation errors with the failing field named.
*/
func TestService_Register_ValidationErrorsAre400(t *testing.T) {
	service := NewService(newSpyGateway(), &stubLookup{})

	_, err := service.Register(context.Background(), RegistrationInput{
		EventID: "evt-1",
		Attendee: &AttendeePayload{
			GivenNames:  "Lucía",
			FamilyNames: "Fernández",
			AgeInput:    "0",
		},
	})

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	require.Len(t, appErr.Details, 1)
	assert.Equal(t, "age", appErr.Details[0].Field)
}

/*
TestService_Register_ExistingAttendee verifies linking an existing attendee
without a create.
*/
func TestService_Register_ExistingAttendee(t *testing.T) {
	gateway := newSpyGateway()
	service := NewService(gateway, &stubLookup{})

	result, err := service.Register(context.Background(), RegistrationInput{
		EventID:    "evt-1",
		AttendeeID: "att-7",
	})

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Empty(t, gateway.created)
	require.Len(t, gateway.linked, 1)
	assert.Equal(t, "att-7", gateway.linked[0][1])
}

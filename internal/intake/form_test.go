// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package intake

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/F0ch1s/asistencia-jovenes/internal/attendee"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/apperr"
)

const (
	timeoutEventually = 2 * time.Second
	tickEventually    = 5 * time.Millisecond
)

// spyGateway records calls and fails on demand.
type spyGateway struct {
	mu sync.Mutex

	operatorID  string
	resolveErr  error
	createErr   error
	linkErr     error
	created     []*attendee.Attendee
	linked      [][3]string // eventID, attendeeID, registeredBy
	releaseLink chan struct{}
}

func newSpyGateway() *spyGateway {
	return &spyGateway{operatorID: "op-1"}
}

func (g *spyGateway) ResolveOperator(ctx context.Context) (string, error) {
	if g.resolveErr != nil {
		return "", g.resolveErr
	}
	return g.operatorID, nil
}

func (g *spyGateway) CreateAttendee(ctx context.Context, a *attendee.Attendee) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return g.createErr
	}
	g.created = append(g.created, a)
	return nil
}

func (g *spyGateway) LinkAttendee(ctx context.Context, eventID, attendeeID, registeredBy string) error {
	if g.releaseLink != nil {
		<-g.releaseLink
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.linkErr != nil {
		return g.linkErr
	}
	g.linked = append(g.linked, [3]string{eventID, attendeeID, registeredBy})
	return nil
}

// fillValidDraft types a complete valid new attendee into the form.
func fillValidDraft(f *Form) {
	d := f.Draft()
	d.SetGivenNames("Lucía")
	d.SetFamilyNames("Fernández")
	d.SetAgeInput("16")
	d.SetPhoneInput("987654321")
	d.SetEmailInput("lucia@example.com")
	d.SetSocialHandleInput("@lucia")
}

/*
TestForm_SubmitNewAttendee verifies the happy path: create then link, both
stamped with the operator resolved at submit time.
*/
func TestForm_SubmitNewAttendee(t *testing.T) {
	gateway := newSpyGateway()
	notifier := NewLatestNotifier()
	form := NewForm(gateway, notifier)

	form.SelectEvent("evt-1")
	fillValidDraft(form)

	result, err := form.Submit(context.Background())

	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, "evt-1", result.EventID)

	require.Len(t, gateway.created, 1)
	require.Len(t, gateway.linked, 1)
	assert.Equal(t, gateway.created[0].ID, result.AttendeeID)
	assert.Equal(t, [3]string{"evt-1", result.AttendeeID, "op-1"}, gateway.linked[0])
	assert.Equal(t, "op-1", gateway.created[0].RegisteredBy)

	notice, ok := notifier.Latest()
	require.True(t, ok)
	assert.Equal(t, NoticeSuccess, notice.Level)
}

/*
TestForm_SuccessResetsPersonKeepsEvent verifies the form is ready for the
next registration of the same event after a success.
*/
func TestForm_SuccessResetsPersonKeepsEvent(t *testing.T) {
	gateway := newSpyGateway()
	form := NewForm(gateway, NewLatestNotifier())

	form.SelectEvent("evt-1")
	fillValidDraft(form)

	_, err := form.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "evt-1", form.SelectedEvent())
	assert.Empty(t, form.Draft().GivenNames)
	assert.Zero(t, form.Draft().Age)
	assert.IsType(t, NewAttendee{}, form.Selection())
}

/*
TestForm_ValidationOrder verifies the ordered short-circuit checks: the
first broken rule is reported, later fields are never inspected.
*/
func TestForm_ValidationOrder(t *testing.T) {
	testCases := []struct {
		name      string
		arrange   func(f *Form)
		wantField string
		wantMsg   string
	}{
		{
			name:      "no event selected",
			arrange:   func(f *Form) { fillValidDraft(f) },
			wantField: "event_id",
			wantMsg:   "Select an event",
		},
		{
			name: "missing given names before zero age",
			arrange: func(f *Form) {
				f.SelectEvent("evt-1")
				f.Draft().SetFamilyNames("Fernández")
				f.Draft().SetAgeInput("0")
			},
			wantField: "given_names",
			wantMsg:   "Enter the given names",
		},
		{
			name: "one-letter given names",
			arrange: func(f *Form) {
				f.SelectEvent("evt-1")
				fillValidDraft(f)
				f.Draft().SetGivenNames("A")
			},
			wantField: "given_names",
			wantMsg:   "Enter the given names",
		},
		{
			name: "one-letter family names after trim",
			arrange: func(f *Form) {
				f.SelectEvent("evt-1")
				fillValidDraft(f)
				f.Draft().SetFamilyNames("  B  ")
			},
			wantField: "family_names",
			wantMsg:   "Enter the family names",
		},
		{
			name: "zero age",
			arrange: func(f *Form) {
				f.SelectEvent("evt-1")
				fillValidDraft(f)
				f.Draft().SetAgeInput("0")
			},
			wantField: "age",
			wantMsg:   "Enter a valid age",
		},
		{
			name: "young adult without profile",
			arrange: func(f *Form) {
				f.SelectEvent("evt-1")
				fillValidDraft(f)
				f.Draft().SetAgeInput("20")
			},
			wantField: "sub_profile",
			wantMsg:   "Select a profile",
		},
		{
			name: "short phone",
			arrange: func(f *Form) {
				f.SelectEvent("evt-1")
				fillValidDraft(f)
				f.Draft().SetPhoneInput("12345")
			},
			wantField: "phone",
			wantMsg:   "Phone number must have 9 digits",
		},
		{
			name: "bad email",
			arrange: func(f *Form) {
				f.SelectEvent("evt-1")
				fillValidDraft(f)
				f.Draft().SetEmailInput("not-an-email")
			},
			wantField: "email",
			wantMsg:   "Enter a valid email address",
		},
		{
			name: "display-name email form",
			arrange: func(f *Form) {
				f.SelectEvent("evt-1")
				fillValidDraft(f)
				f.Draft().SetEmailInput("Ana <ana@example.com>")
			},
			wantField: "email",
			wantMsg:   "Enter a valid email address",
		},
		{
			name: "email without a dotted domain",
			arrange: func(f *Form) {
				f.SelectEvent("evt-1")
				fillValidDraft(f)
				f.Draft().SetEmailInput("ana@localhost")
			},
			wantField: "email",
			wantMsg:   "Enter a valid email address",
		},
		{
			name: "short handle",
			arrange: func(f *Form) {
				f.SelectEvent("evt-1")
				fillValidDraft(f)
				f.Draft().SetSocialHandleInput("@a")
			},
			wantField: "social_handle",
			wantMsg:   "Social handle must have at least 3 characters",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			gateway := newSpyGateway()
			form := NewForm(gateway, NewLatestNotifier())
			testCase.arrange(form)

			_, err := form.Submit(context.Background())

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, testCase.wantField, verr.Field)
			assert.Equal(t, testCase.wantMsg, verr.Message)

			// Nothing was written and the draft survived for correction
			assert.Empty(t, gateway.created)
			assert.Empty(t, gateway.linked)
		})
	}
}

/*
TestForm_DeclinedFieldsSkipValidation verifies declined contact fields pass
submission with no value at all.
*/
func TestForm_DeclinedFieldsSkipValidation(t *testing.T) {
	gateway := newSpyGateway()
	form := NewForm(gateway, NewLatestNotifier())

	form.SelectEvent("evt-1")
	d := form.Draft()
	d.SetGivenNames("Pedro")
	d.SetFamilyNames("Rojas")
	d.SetAgeInput("12")
	d.Phone.ToggleDeclined()
	d.Email.ToggleDeclined()
	d.SocialHandle.ToggleDeclined()

	_, err := form.Submit(context.Background())

	require.NoError(t, err)
	require.Len(t, gateway.created, 1)
	assert.True(t, gateway.created[0].PhoneDeclined)
	assert.True(t, gateway.created[0].EmailDeclined)
	assert.True(t, gateway.created[0].HandleDeclined)
}

/*
TestForm_BlankOptionalContactsPass verifies email and handle are optional:
an untouched, un-declined field submits fine. Only the shape of typed text
is checked.
*/
func TestForm_BlankOptionalContactsPass(t *testing.T) {
	gateway := newSpyGateway()
	form := NewForm(gateway, NewLatestNotifier())

	form.SelectEvent("evt-1")
	d := form.Draft()
	d.SetGivenNames("Ana")
	d.SetFamilyNames("Lopez")
	d.SetAgeInput("20")
	d.SetSubProfile(attendee.SubProfileUniversity)
	d.SetPhoneInput("987654321")

	result, err := form.Submit(context.Background())

	require.NoError(t, err)
	assert.True(t, result.Created)
	require.Len(t, gateway.created, 1)
	require.Len(t, gateway.linked, 1)
	assert.Empty(t, gateway.created[0].Email)
	assert.False(t, gateway.created[0].EmailDeclined)
	assert.Empty(t, gateway.created[0].SocialHandle)
	assert.False(t, gateway.created[0].HandleDeclined)
}

/*
TestForm_OutOfRangeAgePersists verifies any positive age submits: the
classifier's pre-adolescent fall-through is kept, and filtering such rows
is the records view's job, not the form's.
*/
func TestForm_OutOfRangeAgePersists(t *testing.T) {
	gateway := newSpyGateway()
	form := NewForm(gateway, NewLatestNotifier())

	form.SelectEvent("evt-1")
	fillValidDraft(form)
	form.Draft().SetAgeInput("30")

	_, err := form.Submit(context.Background())

	require.NoError(t, err)
	require.Len(t, gateway.created, 1)
	assert.Equal(t, 30, gateway.created[0].Age)
	assert.Equal(t, attendee.CategoryPreAdolescent, gateway.created[0].Category)
}

/*
TestForm_IdentityFailureBlocksWrites verifies that an unresolvable operator
stops the submission before any row is touched.
*/
func TestForm_IdentityFailureBlocksWrites(t *testing.T) {
	gateway := newSpyGateway()
	gateway.resolveErr = apperr.Unauthorized("Operator session could not be resolved")
	form := NewForm(gateway, NewLatestNotifier())

	form.SelectEvent("evt-1")
	fillValidDraft(form)

	_, err := form.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	assert.Empty(t, gateway.created)
	assert.Empty(t, gateway.linked)

	// The draft is retained for a retry after re-login
	assert.Equal(t, "Lucía", form.Draft().GivenNames)
}

/*
TestForm_LinkFailureKeepsCreatedAttendee verifies the documented partial
failure: the attendee row stays, no compensating delete, draft retained.
*/
func TestForm_LinkFailureKeepsCreatedAttendee(t *testing.T) {
	gateway := newSpyGateway()
	gateway.linkErr = apperr.Persistence(assert.AnError)
	form := NewForm(gateway, NewLatestNotifier())

	form.SelectEvent("evt-1")
	fillValidDraft(form)

	_, err := form.Submit(context.Background())

	require.Error(t, err)
	assert.Len(t, gateway.created, 1)
	assert.Empty(t, gateway.linked)
	assert.Equal(t, "Lucía", form.Draft().GivenNames)
}

/*
TestForm_ExistingAttendeeMode verifies linking without creating, and that
the mode is only reachable for returning attendees.
*/
func TestForm_ExistingAttendeeMode(t *testing.T) {
	gateway := newSpyGateway()
	form := NewForm(gateway, NewLatestNotifier())
	form.SelectEvent("evt-1")

	// 1. First-timers cannot pick an existing attendee
	err := form.SelectExistingAttendee("att-9", "Rojas, Pedro")
	require.Error(t, err)

	// 2. Returning attendee unlocks the picker
	form.Draft().SetFirstTime(false)
	require.NoError(t, form.SelectExistingAttendee("att-9", "Rojas, Pedro"))

	result, err := form.Submit(context.Background())

	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, "att-9", result.AttendeeID)
	assert.Empty(t, gateway.created)
	require.Len(t, gateway.linked, 1)
	assert.Equal(t, [3]string{"evt-1", "att-9", "op-1"}, gateway.linked[0])
}

/*
TestForm_SingleFlight verifies a second Submit is refused while the first
is still in flight.
*/
func TestForm_SingleFlight(t *testing.T) {
	gateway := newSpyGateway()
	gateway.releaseLink = make(chan struct{})
	form := NewForm(gateway, NewLatestNotifier())

	form.SelectEvent("evt-1")
	fillValidDraft(form)

	firstDone := make(chan error, 1)
	go func() {
		_, err := form.Submit(context.Background())
		firstDone <- err
	}()

	// Wait until the first submission is blocked inside the gateway
	assert.Eventually(t, func() bool {
		gateway.mu.Lock()
		defer gateway.mu.Unlock()
		return len(gateway.created) == 1
	}, timeoutEventually, tickEventually)

	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(gateway.releaseLink)
	require.NoError(t, <-firstDone)
}

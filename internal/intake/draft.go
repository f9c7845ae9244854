// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package intake

import (
	"strings"
	"time"

	"github.com/F0ch1s/asistencia-jovenes/internal/attendee"
	"github.com/F0ch1s/asistencia-jovenes/pkg/uuidv7"
)

// Field size limits applied while typing.
const (
	maxAgeDigits   = 2
	maxPhoneDigits = 9
)

// Draft is the transient attendee-shaped state a form accumulates before
// submission. The form owns it exclusively; it is discarded and rebuilt on
// a successful registration.
//
// Setters apply the per-keystroke normalization rules; the ordered
// submit-time checks live in [Form].
type Draft struct {
	GivenNames  string
	FamilyNames string

	// Age is the normalized numeric age; 0 means "not entered yet" and is
	// invalid for submission. Category always tracks it — see SetAgeInput.
	Age        int
	Category   attendee.Category
	SubProfile attendee.SubProfile

	Phone        Contact
	Email        Contact
	SocialHandle Contact

	// FirstTime reflects the "first time attending?" answer. Switching it to
	// false is what unlocks the existing-attendee lookup on the form.
	FirstTime bool
}

// NewDraft returns an empty draft in its initial state.
func NewDraft() *Draft {
	return &Draft{FirstTime: true}
}

// SetGivenNames stores the raw input. Trimming happens at validation so the
// operator can type interior spaces freely.
func (d *Draft) SetGivenNames(raw string) {
	d.GivenNames = raw
}

// SetFamilyNames stores the raw input.
func (d *Draft) SetFamilyNames(raw string) {
	d.FamilyNames = raw
}

// SetAgeInput normalizes a raw age keystroke sequence and reclassifies.
//
// # Normalization
//
//   - non-digits are stripped
//   - leading zeros are stripped
//   - at most two digits are kept
//   - empty input maps to age 0 (invalid for submission)
//
// # Reclassification
//
// Category is recomputed on every edit. If the new category is no longer
// young-adult, any previously chosen sub-profile is cleared so the
// sub-profile invariant can never be violated by editing the age after
// picking a profile.
func (d *Draft) SetAgeInput(raw string) {
	digits := keepDigits(raw)
	digits = strings.TrimLeft(digits, "0")
	if len(digits) > maxAgeDigits {
		digits = digits[:maxAgeDigits]
	}

	age := 0
	for _, r := range digits {
		age = age*10 + int(r-'0')
	}

	d.Age = age
	d.Category = attendee.ClassifyAge(age)

	if !d.Category.RequiresSubProfile() {
		d.SubProfile = attendee.SubProfileNone
	}
}

// SetSubProfile records the young-adult secondary classification.
//
// The value only sticks while the current category actually requires one;
// otherwise it is dropped, keeping category and sub-profile consistent.
func (d *Draft) SetSubProfile(sp attendee.SubProfile) {
	if !d.Category.RequiresSubProfile() {
		d.SubProfile = attendee.SubProfileNone
		return
	}
	d.SubProfile = sp
}

// SetPhoneInput normalizes a raw phone keystroke sequence: non-digits are
// stripped and anything past nine digits is ignored. Edits are dropped
// entirely while the field is declined.
func (d *Draft) SetPhoneInput(raw string) {
	if d.Phone.IsDeclined() {
		return
	}
	digits := keepDigits(raw)
	if len(digits) > maxPhoneDigits {
		digits = digits[:maxPhoneDigits]
	}
	d.Phone.Set(digits)
}

// SetEmailInput stores the raw email text. Shape is checked at submit.
func (d *Draft) SetEmailInput(raw string) {
	d.Email.Set(raw)
}

// SetSocialHandleInput stores the raw handle text.
func (d *Draft) SetSocialHandleInput(raw string) {
	d.SocialHandle.Set(raw)
}

// SetFirstTime records the "first time attending?" answer.
func (d *Draft) SetFirstTime(firstTime bool) {
	d.FirstTime = firstTime
}

// Reset returns every person-specific field to its initial state.
func (d *Draft) Reset() {
	*d = *NewDraft()
}

// ToAttendee materializes the draft as a persistable attendee row.
//
// The draft must have passed validation first; this method assigns the ID
// and stamps the registering operator without re-checking anything.
func (d *Draft) ToAttendee(registeredBy string) *attendee.Attendee {
	return &attendee.Attendee{
		ID:             uuidv7.New(),
		GivenNames:     strings.TrimSpace(d.GivenNames),
		FamilyNames:    strings.TrimSpace(d.FamilyNames),
		Age:            d.Age,
		Category:       d.Category,
		SubProfile:     d.SubProfile,
		Phone:          d.Phone.Value(),
		PhoneDeclined:  d.Phone.IsDeclined(),
		Email:          d.Email.Value(),
		EmailDeclined:  d.Email.IsDeclined(),
		SocialHandle:   d.SocialHandle.Value(),
		HandleDeclined: d.SocialHandle.IsDeclined(),
		FirstTime:      d.FirstTime,
		RegisteredBy:   registeredBy,
		CreatedAt:      time.Now(),
	}
}

// keepDigits strips every non-digit rune from s.
func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

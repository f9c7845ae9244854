// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/F0ch1s/asistencia-jovenes/internal/attendee"
)

/*
TestDraft_AgeInputNormalization verifies the per-keystroke age rules: strip
non-digits, strip leading zeros, keep at most two digits, empty means zero.
*/
func TestDraft_AgeInputNormalization(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		wantAge  int
		category attendee.Category
	}{
		{"plain", "16", 16, attendee.CategoryAdolescent},
		{"letters stripped", "1a6", 16, attendee.CategoryAdolescent},
		{"leading zeros stripped", "016", 16, attendee.CategoryAdolescent},
		{"capped at two digits", "191", 19, attendee.CategoryYoungAdult},
		{"empty is zero", "", 0, attendee.CategoryPreAdolescent},
		{"all junk is zero", "abc", 0, attendee.CategoryPreAdolescent},
		{"only zeros is zero", "000", 0, attendee.CategoryPreAdolescent},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			d := NewDraft()
			d.SetAgeInput(testCase.input)

			assert.Equal(t, testCase.wantAge, d.Age)
			assert.Equal(t, testCase.category, d.Category)
		})
	}
}

/*
TestDraft_SubProfileClearedOnReclassification verifies that editing the age
out of the young-adult band drops a previously chosen sub-profile.
*/
func TestDraft_SubProfileClearedOnReclassification(t *testing.T) {
	d := NewDraft()

	// 1. Young adult picks a profile
	d.SetAgeInput("20")
	d.SetSubProfile(attendee.SubProfileUniversity)
	assert.Equal(t, attendee.SubProfileUniversity, d.SubProfile)

	// 2. Age edits down to adolescent: the profile is gone
	d.SetAgeInput("16")
	assert.Equal(t, attendee.CategoryAdolescent, d.Category)
	assert.Equal(t, attendee.SubProfileNone, d.SubProfile)

	// 3. Back to young adult: the old profile does not reappear
	d.SetAgeInput("20")
	assert.Equal(t, attendee.SubProfileNone, d.SubProfile)
}

/*
TestDraft_SubProfileRejectedOutsideYoungAdult verifies a profile cannot be
attached to a category that does not carry one.
*/
func TestDraft_SubProfileRejectedOutsideYoungAdult(t *testing.T) {
	d := NewDraft()
	d.SetAgeInput("12")

	d.SetSubProfile(attendee.SubProfileProfessional)

	assert.Equal(t, attendee.SubProfileNone, d.SubProfile)
}

/*
TestDraft_PhoneInputNormalization verifies digits-only filtering and the
nine-digit cap, including mixed input typed in one paste.
*/
func TestDraft_PhoneInputNormalization(t *testing.T) {
	d := NewDraft()

	d.SetPhoneInput("12a3456789")
	assert.Equal(t, "123456789", d.Phone.Value())

	d.SetPhoneInput("1234567890123")
	assert.Equal(t, "123456789", d.Phone.Value())

	d.SetPhoneInput("(+51) 987-654-321")
	assert.Equal(t, "519876543", d.Phone.Value())
}

/*
TestDraft_PhoneEditsIgnoredWhileDeclined verifies declined phone fields drop
keystrokes entirely.
*/
func TestDraft_PhoneEditsIgnoredWhileDeclined(t *testing.T) {
	d := NewDraft()
	d.Phone.ToggleDeclined()

	d.SetPhoneInput("987654321")

	assert.True(t, d.Phone.IsDeclined())
	assert.Empty(t, d.Phone.Value())
}

/*
TestDraft_ToAttendee verifies the draft-to-row mapping, including name
trimming and the declined flags.
*/
func TestDraft_ToAttendee(t *testing.T) {
	d := NewDraft()
	d.SetGivenNames("  María José ")
	d.SetFamilyNames(" Quispe Mamani ")
	d.SetAgeInput("19")
	d.SetSubProfile(attendee.SubProfileUniversity)
	d.SetPhoneInput("987654321")
	d.Email.ToggleDeclined()
	d.SetSocialHandleInput("@mariajose")

	row := d.ToAttendee("op-123")

	assert.NotEmpty(t, row.ID)
	assert.Equal(t, "María José", row.GivenNames)
	assert.Equal(t, "Quispe Mamani", row.FamilyNames)
	assert.Equal(t, 19, row.Age)
	assert.Equal(t, attendee.CategoryYoungAdult, row.Category)
	assert.Equal(t, attendee.SubProfileUniversity, row.SubProfile)
	assert.Equal(t, "987654321", row.Phone)
	assert.False(t, row.PhoneDeclined)
	assert.True(t, row.EmailDeclined)
	assert.Empty(t, row.Email)
	assert.Equal(t, "@mariajose", row.SocialHandle)
	assert.Equal(t, "op-123", row.RegisteredBy)
	assert.False(t, row.CreatedAt.IsZero())
}

// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

// Package attendee defines the person records registered against events.
//
// # Architecture
//
// Entities in this package represent the "Truth" of the system. They have no
// dependencies on outer layers (databases, HTTP, the intake form). The form
// workflow that produces them lives in the intake package.
package attendee

import (
	"time"
)

// Attendee represents a person registered by an operator.
//
// # Rules
//   - GivenNames and FamilyNames are trimmed, at least 2 characters each.
//   - Age is 1-99; Category is always derived from it via [ClassifyAge].
//   - SubProfile is set if and only if Category is [CategoryYoungAdult].
//   - Contact fields carry an explicit declined flag: an empty value with
//     Declined=true means the person chose not to provide it, which is
//     different from a value that was simply never collected.
type Attendee struct {
	ID          string     `json:"id"`
	GivenNames  string     `json:"given_names"`
	FamilyNames string     `json:"family_names"`
	Age         int        `json:"age"`
	Category    Category   `json:"category"`
	SubProfile  SubProfile `json:"sub_profile,omitempty"`

	Phone          string `json:"phone,omitempty"`
	PhoneDeclined  bool   `json:"phone_declined,omitempty"`
	Email          string `json:"email,omitempty"`
	EmailDeclined  bool   `json:"email_declined,omitempty"`
	SocialHandle   string `json:"social_handle,omitempty"`
	HandleDeclined bool   `json:"social_handle_declined,omitempty"`

	FirstTime    bool      `json:"first_time"`
	RegisteredBy string    `json:"registered_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// DisplayName renders the lookup label: "familyNames, givenNames".
func (a *Attendee) DisplayName() string {
	return a.FamilyNames + ", " + a.GivenNames
}

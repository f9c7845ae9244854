// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package intake

// contactState distinguishes the three states an optional contact field can
// be in. An untouched field and a deliberately skipped one must render and
// validate differently, so a plain string cannot carry the distinction.
type contactState int

const (
	// contactEditable: the field holds whatever the operator typed so far
	// (possibly nothing). Validation applies to the value.
	contactEditable contactState = iota

	// contactDeclined: the respondent chose not to provide the field.
	// Validation is bypassed and edits are ignored until toggled back.
	contactDeclined
)

// Contact is a three-state optional contact field: untouched, filled, or
// explicitly declined.
//
// The zero value is an empty editable field.
type Contact struct {
	state contactState
	value string
}

// Provided constructs an editable Contact holding the given value.
func Provided(value string) Contact {
	return Contact{state: contactEditable, value: value}
}

// Declined constructs a Contact the respondent chose to skip.
func Declined() Contact {
	return Contact{state: contactDeclined}
}

// Set replaces the value. Edits are ignored while the field is declined.
func (c *Contact) Set(value string) {
	if c.state == contactDeclined {
		return
	}
	c.value = value
}

// ToggleDeclined flips the field between declined and an empty editable
// state. Toggling back never restores the prior text: the operator gets a
// clean field, not a stale value the respondent already refused to give.
func (c *Contact) ToggleDeclined() {
	if c.state == contactDeclined {
		*c = Contact{}
		return
	}
	*c = Contact{state: contactDeclined}
}

// Value returns the current text. It is empty while the field is declined.
func (c Contact) Value() string {
	if c.state == contactDeclined {
		return ""
	}
	return c.value
}

// IsDeclined reports whether the respondent skipped the field.
func (c Contact) IsDeclined() bool {
	return c.state == contactDeclined
}

// IsBlank reports whether the field is editable and empty.
func (c Contact) IsBlank() bool {
	return c.state == contactEditable && c.value == ""
}

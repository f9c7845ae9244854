// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestContact_SetIgnoredWhileDeclined verifies that edits do not leak into a
declined field.
*/
func TestContact_SetIgnoredWhileDeclined(t *testing.T) {
	c := Declined()

	c.Set("987654321")

	assert.True(t, c.IsDeclined())
	assert.Empty(t, c.Value())
}

/*
TestContact_ToggleRoundTrip verifies that declining a filled field and
toggling back yields a clean empty editable field, never the old text.
*/
func TestContact_ToggleRoundTrip(t *testing.T) {
	c := Provided("ana@example.com")

	// 1. Decline: the typed value is gone
	c.ToggleDeclined()
	assert.True(t, c.IsDeclined())
	assert.Empty(t, c.Value())

	// 2. Toggle back: editable again, still empty
	c.ToggleDeclined()
	assert.False(t, c.IsDeclined())
	assert.Empty(t, c.Value())
	assert.True(t, c.IsBlank())

	// 3. Editable once more
	c.Set("ana@example.com")
	assert.Equal(t, "ana@example.com", c.Value())
}

/*
TestContact_ToggleIsIdempotentPerState verifies repeated toggles alternate
between exactly two states.
*/
func TestContact_ToggleIsIdempotentPerState(t *testing.T) {
	var c Contact

	for i := 0; i < 4; i++ {
		c.ToggleDeclined()
		assert.Equal(t, i%2 == 0, c.IsDeclined())
	}
}

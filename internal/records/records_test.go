// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/F0ch1s/asistencia-jovenes/internal/attendee"
)

func row(id string, age int, sp attendee.SubProfile) *attendee.Attendee {
	return &attendee.Attendee{
		ID:          id,
		GivenNames:  "Test",
		FamilyNames: id,
		Age:         age,
		Category:    attendee.ClassifyAge(age),
		SubProfile:  sp,
	}
}

/*
TestAggregate_Grouping verifies the four disjoint groups and the total.
*/
func TestAggregate_Grouping(t *testing.T) {
	attendees := []*attendee.Attendee{
		row("a", 12, attendee.SubProfileNone),
		row("b", 13, attendee.SubProfileNone),
		row("c", 15, attendee.SubProfileNone),
		row("d", 19, attendee.SubProfileUniversity),
		row("e", 24, attendee.SubProfileProfessional),
	}

	summary := Aggregate(attendees)

	assert.Equal(t, 2, summary.PreAdolescents.Count)
	assert.Equal(t, 1, summary.Adolescents.Count)
	assert.Equal(t, 1, summary.University.Count)
	assert.Equal(t, 1, summary.Professionals.Count)
	assert.Equal(t, 5, summary.Total)

	require.Len(t, summary.University.Rows, 1)
	assert.Equal(t, "d", summary.University.Rows[0].AttendeeID)
}

/*
TestAggregate_SilentDrops verifies inconsistent rows vanish from every group
and from the total.
*/
func TestAggregate_SilentDrops(t *testing.T) {
	attendees := []*attendee.Attendee{
		row("ok", 12, attendee.SubProfileNone),
		row("too-young", 8, attendee.SubProfileNone),
		row("too-old", 30, attendee.SubProfileNone),
		row("ya-missing-profile", 20, attendee.SubProfileNone),
		{ // non-young-adult carrying a profile
			ID: "teen-with-profile", Age: 15,
			Category:   attendee.CategoryAdolescent,
			SubProfile: attendee.SubProfileUniversity,
		},
	}

	summary := Aggregate(attendees)

	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.PreAdolescents.Count)
	assert.Zero(t, summary.Adolescents.Count)
	assert.Zero(t, summary.University.Count)
	assert.Zero(t, summary.Professionals.Count)
}

/*
TestAggregate_Empty verifies an empty roster yields zeroed groups with
non-nil row slices, so JSON renders [] instead of null.
*/
func TestAggregate_Empty(t *testing.T) {
	summary := Aggregate(nil)

	assert.Zero(t, summary.Total)
	assert.NotNil(t, summary.PreAdolescents.Rows)
	assert.NotNil(t, summary.Adolescents.Rows)
	assert.NotNil(t, summary.University.Rows)
	assert.NotNil(t, summary.Professionals.Rows)
}

/*
TestAggregate_RegroupsFromAge verifies grouping follows the age boundaries
even when the stored category drifted (age edited after a data fix).
*/
func TestAggregate_RegroupsFromAge(t *testing.T) {
	stale := &attendee.Attendee{
		ID: "stale", Age: 16,
		Category:   attendee.CategoryPreAdolescent, // stale
		SubProfile: attendee.SubProfileNone,
	}

	summary := Aggregate([]*attendee.Attendee{stale})

	assert.Equal(t, 1, summary.Adolescents.Count)
	assert.Zero(t, summary.PreAdolescents.Count)
}

// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package attendee

// Category is the life-stage classification bucket derived from age.
//
// It is always a pure function of age — never independently settable when
// registering a new attendee. See [ClassifyAge].
type Category string

const (
	CategoryPreAdolescent Category = "pre_adolescent" // ages 11-13
	CategoryAdolescent    Category = "adolescent"     // ages 14-17
	CategoryYoungAdult    Category = "young_adult"    // ages 18-25, requires a sub-profile
)

// SubProfile is the secondary classification required for young adults.
type SubProfile string

const (
	SubProfileUniversity   SubProfile = "university"
	SubProfileProfessional SubProfile = "professional"

	// SubProfileNone marks the absence of a sub-profile. Valid exactly when
	// the category is not [CategoryYoungAdult].
	SubProfileNone SubProfile = ""
)

// ClassifyAge derives the life-stage category from an age.
//
// # Boundaries
//
//	11-13 → pre-adolescent
//	14-17 → adolescent
//	18-25 → young adult
//
// Ages outside these ranges fall through to pre-adolescent. That default
// looks unintentional but is the established behavior the records views
// depend on; such rows do persist, and the aggregator is what excludes
// them from every group. Flagged for a product decision rather than
// silently corrected here.
func ClassifyAge(age int) Category {
	switch {
	case age >= 14 && age <= 17:
		return CategoryAdolescent
	case age >= 18 && age <= 25:
		return CategoryYoungAdult
	default:
		return CategoryPreAdolescent
	}
}

// RequiresSubProfile reports whether the category demands a sub-profile.
func (c Category) RequiresSubProfile() bool {
	return c == CategoryYoungAdult
}

// IsValidSubProfile reports whether sp is an acceptable sub-profile for the
// category: one of the two known values for young adults, absent otherwise.
func (c Category) IsValidSubProfile(sp SubProfile) bool {
	if c.RequiresSubProfile() {
		return sp == SubProfileUniversity || sp == SubProfileProfessional
	}
	return sp == SubProfileNone
}

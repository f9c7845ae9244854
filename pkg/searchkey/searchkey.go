// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

// Package searchkey folds arbitrary Unicode names into plain ASCII search keys.
//
// # Usage
//
// Attendee and event lookups match on these keys so that "López" and "lopez"
// find the same person regardless of how the operator typed the name.
package searchkey

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// From converts an arbitrary Unicode string into a lowercase, accent-free key.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase and collapses interior whitespace to single spaces.
func From(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Collapse whitespace
	return strings.Join(strings.Fields(result), " ")
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

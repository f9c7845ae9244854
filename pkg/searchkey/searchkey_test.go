// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package searchkey_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/F0ch1s/asistencia-jovenes/pkg/searchkey"
)

/*
TestFrom verifies accent folding and whitespace collapsing.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain_ascii", "Lopez", "lopez"},
		{"accented", "López", "lopez"},
		{"tilde_n", "Muñoz", "munoz"},
		{"mixed_case_spacing", "  Ana   María ", "ana maria"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, searchkey.From(tt.input))
		})
	}
}

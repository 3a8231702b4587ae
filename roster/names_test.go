// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanNames(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"keeps order", []string{"Carol", "Alice", "Bob"}, []string{"Carol", "Alice", "Bob"}},
		{"trims", []string{"  Alice ", "\tBob\n"}, []string{"Alice", "Bob"}},
		{"drops blanks", []string{"", "Alice", "   ", "Bob"}, []string{"Alice", "Bob"}},
		{"keeps duplicates", []string{"Alice", " Alice"}, []string{"Alice", "Alice"}},
		{"all blank", []string{" ", ""}, []string{}},
		{"nil", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanNames(tt.input))
		})
	}
}

func TestFormatDisplayName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Alice", "Alice"},
		{"1. Alice", "Alice"},
		{"(2) Bob", "Bob"},
		{"3 - Carol", "Carol"},
		{"4: Dave", "Dave"},
		{"05) - Erin", "Erin"},
		{"[6] Frank", "Frank"},
		{"  7.Grace  ", "Grace"},
		{"Agent 007", "Agent 007"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDisplayName(tt.input))
		})
	}
}

func TestFirstDuplicate(t *testing.T) {
	name, ok := firstDuplicate([]string{"Alice", "Bob", "Carol", "Bob", "Alice"})
	assert.True(t, ok)
	assert.Equal(t, "Bob", name)

	_, ok = firstDuplicate([]string{"Alice", "alice", "Bob"})
	assert.False(t, ok)
}

/*
Copyright (c) 2025 fluidos-contrib
Distributed under the terms of the MIT license
*/

package stringutil

import (
	"strings"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "already valid",
			input:    "demo-solver",
			expected: "demo-solver",
		},
		{
			name:     "uppercase",
			input:    "Demo-Solver",
			expected: "demo-solver",
		},
		{
			name:     "invalid characters",
			input:    "demo_app.v2",
			expected: "demo-app-v2",
		},
		{
			name:     "leading and trailing junk",
			input:    "--demo--",
			expected: "demo",
		},
		{
			name:     "uuid",
			input:    "7f9c24e8-3b12-4e6f-9a1d-1c2b3d4e5f60",
			expected: "7f9c24e8-3b12-4e6f-9a1d-1c2b3d4e5f60",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.input); got != tt.expected {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSanitizeNameTruncates(t *testing.T) {
	long := strings.Repeat("a", 100)
	got := SanitizeName(long)

	if len(got) != 63 {
		t.Errorf("SanitizeName length = %d, want 63", len(got))
	}

	other := SanitizeName(strings.Repeat("a", 101))
	if got == other {
		t.Error("distinct long inputs must not collide after truncation")
	}
}

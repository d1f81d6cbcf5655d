// File: stringx_test.go
// Title: String Utility Tests
// Description: Table-driven tests for the string helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19

package stringx

import (
	"reflect"
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{" ", true},
		{" x ", false},
	}
	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if got := IsNotBlank(tt.input); got == tt.want {
			t.Errorf("IsNotBlank(%q) = %v, want %v", tt.input, got, !tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		want     string
	}{
		{"fits", "class", 10, "...", "class"},
		{"cut with ellipsis", "constructor", 8, "...", "const..."},
		{"ellipsis too long", "constructor", 2, "...", "co"},
		{"unicode", "äöüäöü", 4, "…", "äöü…"},
		{"zero", "class", 0, "...", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.want {
				t.Errorf("Truncate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"int", 6, "int   "},
		{"boolean", 4, "boolean"},
		{"ä", 3, "ä  "},
	}
	for _, tt := range tests {
		if got := PadRight(tt.input, tt.width, ' '); got != tt.want {
			t.Errorf("PadRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\r\nb\rc\nd")
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines() = %v, want %v", got, want)
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "x", "y"); got != "x" {
		t.Errorf("FirstNonBlank() = %q, want x", got)
	}
	if got := FirstNonBlank(" "); got != "" {
		t.Errorf("FirstNonBlank() = %q, want empty", got)
	}
}

package middleware

import (
	"strings"
	"testing"
)

func TestValidateIdea(t *testing.T) {
	tests := []struct {
		name    string
		idea    string
		wantErr bool
	}{
		{"valid", "A subscription box for artisanal coffee", false},
		{"exactly minimum length", strings.Repeat("x", MinIdeaLength), false},
		{"empty", "", true},
		{"whitespace only", "   \t\n", true},
		{"below minimum", "too short", true},
		{"padding does not count", "  short  ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdea(tt.idea)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdea(%q) error = %v, wantErr %v", tt.idea, err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"null bytes removed", "a\x00b", "ab"},
		{"control characters removed", "a\x07b\x1bc", "abc"},
		{"tabs and newlines kept", "a\tb\nc", "a\tb\nc"},
		{"surrounding whitespace trimmed", "  padded  ", "padded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeString(tt.in); got != tt.want {
				t.Errorf("SanitizeString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

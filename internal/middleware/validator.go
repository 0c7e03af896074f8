package middleware

import (
	"fmt"
	"strings"
)

// Input validation and sanitization utilities

// MinIdeaLength is the shortest idea description the API accepts. The
// orchestrator itself tolerates shorter strings; this guard lives at the
// presentation boundary.
const MinIdeaLength = 10

// ValidateIdea checks an idea description before any external call is made.
func ValidateIdea(idea string) error {
	trimmed := strings.TrimSpace(idea)
	if trimmed == "" {
		return fmt.Errorf("idea cannot be empty")
	}
	if len(trimmed) < MinIdeaLength {
		return fmt.Errorf("idea too short: minimum %d characters", MinIdeaLength)
	}
	return nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

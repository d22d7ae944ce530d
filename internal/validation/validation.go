package validation

import "strings"

// MaxMessageLength bounds a single chat message. Anything longer is a
// client error, not something to truncate silently.
const MaxMessageLength = 2000

// ValidateMessage checks that a chat message is non-empty after trimming
// and within the length bound.
func ValidateMessage(message string) bool {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return false
	}
	return len(message) <= MaxMessageLength
}

// NormalizeMessage lowercases, trims, and collapses internal whitespace
// so exact-phrase lookups are insensitive to spacing and case.
func NormalizeMessage(message string) string {
	return strings.Join(strings.Fields(strings.ToLower(message)), " ")
}

package fields

import (
	"context"
	"regexp"
	"strings"
)

// emailPattern is a simplified RFC 5322 matcher. RE2 has no backtracking, so
// the pattern cannot blow up on adversarial input.
var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// EmailStrategy extracts the candidate's email address by pattern matching.
// Deterministic: identical text always yields identical results, and when the
// document contains several addresses the first in document order wins.
type EmailStrategy struct{}

// NewEmailStrategy returns the pattern-based email strategy.
func NewEmailStrategy() *EmailStrategy { return &EmailStrategy{} }

// Field returns "email".
func (s *EmailStrategy) Field() string { return FieldEmail }

// Extract returns the first valid email address in document order, lowercased.
func (s *EmailStrategy) Extract(_ context.Context, text string) FieldResult {
	if strings.TrimSpace(text) == "" {
		return NotFound()
	}

	for _, match := range emailPattern.FindAllString(text, -1) {
		if isValidEmail(match) {
			return Found(strings.ToLower(match))
		}
	}
	return NotFound()
}

func isValidEmail(email string) bool {
	if len(email) < 6 || len(email) > 254 {
		return false
	}
	return strings.Count(email, "@") == 1
}

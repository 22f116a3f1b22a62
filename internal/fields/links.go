package fields

import (
	"context"
	"regexp"
	"strings"
)

var (
	linkedinPattern = regexp.MustCompile(`(?i)\bhttps?://(?:www\.)?linkedin\.com/in/[A-Za-z0-9%_-]+\b`)
	githubPattern   = regexp.MustCompile(`(?i)\bhttps?://(?:www\.)?github\.com/[A-Za-z0-9_-]+\b`)
)

// LinkStrategy extracts a profile URL by pattern matching. First occurrence
// in document order wins.
type LinkStrategy struct {
	field   string
	pattern *regexp.Regexp
}

// NewLinkStrategy returns a pattern-based URL strategy for the given field.
func NewLinkStrategy(field string, pattern *regexp.Regexp) *LinkStrategy {
	return &LinkStrategy{field: field, pattern: pattern}
}

// Field returns the configured field name.
func (s *LinkStrategy) Field() string { return s.field }

// Extract returns the first matching URL in document order.
func (s *LinkStrategy) Extract(_ context.Context, text string) FieldResult {
	if strings.TrimSpace(text) == "" {
		return NotFound()
	}
	if match := s.pattern.FindString(text); match != "" {
		return Found(match)
	}
	return NotFound()
}

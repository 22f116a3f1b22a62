package fields

import (
	"context"
	"regexp"
	"strings"
	"unicode"
)

// Name patterns in priority order: name followed by contact info, name alone
// on an opening line, then any leading capitalized pair or triple.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)\s*(?:\n|Email|Phone|Tel|\d)`),
	regexp.MustCompile(`(?m)^([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})\s*\n`),
	regexp.MustCompile(`(?m)^([A-Z][a-z]+\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`),
}

// Section headings and similar resume keywords that disqualify a candidate
// match from being a person's name.
var nameBlacklist = []string{
	"resume", "curriculum", "vitae", "profile", "summary",
	"objective", "experience", "education", "skills", "contact",
}

// NameStrategy extracts the candidate's name from the top of the document
// using prioritized patterns and a capitalized-words fallback.
type NameStrategy struct{}

// NewNameStrategy returns the pattern-based name strategy.
func NewNameStrategy() *NameStrategy { return &NameStrategy{} }

// Field returns "name".
func (s *NameStrategy) Field() string { return FieldName }

// Extract searches the first ten lines, where resumes place the name.
func (s *NameStrategy) Extract(_ context.Context, text string) FieldResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return NotFound()
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	searchText := strings.Join(lines, "\n")

	for _, pattern := range namePatterns {
		if match := pattern.FindStringSubmatch(searchText); match != nil {
			name := strings.TrimSpace(match[1])
			if isValidName(name) {
				return Found(name)
			}
		}
	}

	// Fallback: assume a two-word name among the first few capitalized words.
	var capitalized []string
	words := strings.Fields(searchText)
	if len(words) > 5 {
		words = words[:5]
	}
	for _, word := range words {
		if isCapitalizedAlpha(word) {
			capitalized = append(capitalized, word)
			if len(capitalized) == 2 {
				name := strings.Join(capitalized, " ")
				if isValidName(name) {
					return Found(name)
				}
				break
			}
		}
	}

	return NotFound()
}

func isValidName(name string) bool {
	if len(name) < 3 {
		return false
	}
	lower := strings.ToLower(name)
	for _, keyword := range nameBlacklist {
		if strings.Contains(lower, keyword) {
			return false
		}
	}
	words := strings.Fields(name)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, word := range words {
		runes := []rune(word)
		if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
			return false
		}
	}
	return true
}

func isCapitalizedAlpha(word string) bool {
	runes := []rune(word)
	if len(runes) == 0 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

package fields

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"resume-parser/internal/llm"
)

const educationSchemaDef = `{
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"institution": {"type": ["string", "null"]},
			"degree": {"type": ["string", "null"]},
			"field_of_study": {"type": ["string", "null"]},
			"graduation_date": {"type": ["string", "null"]},
			"gpa": {"type": ["string", "null"]}
		}
	}
}`

// EducationStrategy delegates education-history extraction to the LLM.
type EducationStrategy struct {
	client  llm.Client
	timeout time.Duration
	schema  *jsonschema.Schema
}

// NewEducationStrategy builds the delegated education strategy.
func NewEducationStrategy(client llm.Client, timeout time.Duration) *EducationStrategy {
	return &EducationStrategy{
		client:  client,
		timeout: timeout,
		schema:  mustCompileSchema(educationSchemaDef),
	}
}

// Field returns "education".
func (s *EducationStrategy) Field() string { return FieldEducation }

// Extract asks the model for a JSON array of education entries and validates
// the shape before accepting it.
func (s *EducationStrategy) Extract(ctx context.Context, text string) FieldResult {
	if strings.TrimSpace(text) == "" {
		return Failed(reasonEmptyInput)
	}

	resp, err := complete(ctx, s.client, s.timeout, llm.EducationPrompt(text))
	if err != nil {
		return Failed("llm call: " + err.Error())
	}

	raw, ok := extractJSONArray(resp)
	if !ok {
		return Failed("no JSON array in response")
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return Failed("invalid JSON in response: " + err.Error())
	}
	if err := s.schema.Validate(decoded); err != nil {
		return Failed("response does not match expected shape: " + err.Error())
	}

	var entries []EducationEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return Failed("invalid JSON in response: " + err.Error())
	}

	entries = dropEmptyEducation(entries)
	if len(entries) == 0 {
		return NotFound()
	}
	return Found(entries)
}

func dropEmptyEducation(entries []EducationEntry) []EducationEntry {
	kept := entries[:0]
	for _, e := range entries {
		if e.Institution == "" && e.Degree == "" && e.FieldOfStudy == "" && e.GraduationDate == "" {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

package fields

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"resume-parser/internal/llm"
)

// Experience entries are only meaningful with a company and title attached,
// so the schema requires both per entry.
const experienceSchemaDef = `{
	"type": "array",
	"items": {
		"type": "object",
		"properties": {
			"company": {"type": "string", "minLength": 1},
			"title": {"type": "string", "minLength": 1},
			"start_date": {"type": ["string", "null"]},
			"end_date": {"type": ["string", "null"]},
			"description": {"type": ["string", "null"]},
			"responsibilities": {"type": "array", "items": {"type": "string"}}
		},
		"required": ["company", "title"]
	}
}`

// ExperienceStrategy delegates work-history extraction to the LLM.
type ExperienceStrategy struct {
	client  llm.Client
	timeout time.Duration
	schema  *jsonschema.Schema
}

// NewExperienceStrategy builds the delegated experience strategy.
func NewExperienceStrategy(client llm.Client, timeout time.Duration) *ExperienceStrategy {
	return &ExperienceStrategy{
		client:  client,
		timeout: timeout,
		schema:  mustCompileSchema(experienceSchemaDef),
	}
}

// Field returns "experience".
func (s *ExperienceStrategy) Field() string { return FieldExperience }

// Extract asks the model for a JSON array of experience entries and validates
// the shape before accepting it.
func (s *ExperienceStrategy) Extract(ctx context.Context, text string) FieldResult {
	if strings.TrimSpace(text) == "" {
		return Failed(reasonEmptyInput)
	}

	resp, err := complete(ctx, s.client, s.timeout, llm.ExperiencePrompt(text))
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

	var entries []ExperienceEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return Failed("invalid JSON in response: " + err.Error())
	}
	if len(entries) == 0 {
		return NotFound()
	}
	return Found(entries)
}

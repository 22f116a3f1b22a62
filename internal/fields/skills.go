package fields

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"resume-parser/internal/llm"
)

const skillsSchemaDef = `{
	"type": "array",
	"items": {"type": "string"}
}`

// SkillsStrategy delegates skills extraction to the LLM and parses the
// response into an ordered, deduplicated list.
type SkillsStrategy struct {
	client  llm.Client
	timeout time.Duration
	schema  *jsonschema.Schema
}

// NewSkillsStrategy builds the delegated skills strategy.
func NewSkillsStrategy(client llm.Client, timeout time.Duration) *SkillsStrategy {
	return &SkillsStrategy{
		client:  client,
		timeout: timeout,
		schema:  mustCompileSchema(skillsSchemaDef),
	}
}

// Field returns "skills".
func (s *SkillsStrategy) Field() string { return FieldSkills }

// Extract asks the model for a JSON array of skills and validates the shape
// before accepting it. A response that cannot be parsed into the expected
// shape is a failure, never a fabricated value.
func (s *SkillsStrategy) Extract(ctx context.Context, text string) FieldResult {
	if strings.TrimSpace(text) == "" {
		return Failed(reasonEmptyInput)
	}

	resp, err := complete(ctx, s.client, s.timeout, llm.SkillsPrompt(text))
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

	var skills []string
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return Failed("invalid JSON in response: " + err.Error())
	}

	cleaned := cleanSkills(skills)
	if len(cleaned) == 0 {
		return NotFound()
	}
	return Found(cleaned)
}

// cleanSkills trims entries, drops empties, and deduplicates
// case-insensitively while preserving document order.
func cleanSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	cleaned := make([]string, 0, len(skills))
	for _, skill := range skills {
		trimmed := strings.TrimSpace(skill)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cleaned = append(cleaned, trimmed)
	}
	return cleaned
}

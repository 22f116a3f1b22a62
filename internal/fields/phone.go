package fields

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"resume-parser/internal/llm"
)

const phoneSchemaDef = `{
	"type": "object",
	"properties": {
		"phone": {"type": ["string", "null"]}
	},
	"required": ["phone"]
}`

// PhoneStrategy delegates phone extraction to the LLM, then normalizes the
// returned number.
type PhoneStrategy struct {
	client  llm.Client
	timeout time.Duration
	schema  *jsonschema.Schema
}

// NewPhoneStrategy builds the delegated phone strategy.
func NewPhoneStrategy(client llm.Client, timeout time.Duration) *PhoneStrategy {
	return &PhoneStrategy{
		client:  client,
		timeout: timeout,
		schema:  mustCompileSchema(phoneSchemaDef),
	}
}

// Field returns "phone".
func (s *PhoneStrategy) Field() string { return FieldPhone }

// Extract asks the model for {"phone": ...} and validates the shape before
// accepting. A null phone is NotFound, not a failure.
func (s *PhoneStrategy) Extract(ctx context.Context, text string) FieldResult {
	if strings.TrimSpace(text) == "" {
		return Failed(reasonEmptyInput)
	}

	resp, err := complete(ctx, s.client, s.timeout, llm.PhonePrompt(text))
	if err != nil {
		return Failed("llm call: " + err.Error())
	}

	raw, ok := extractJSONObject(resp)
	if !ok {
		return Failed("no JSON object in response")
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return Failed("invalid JSON in response: " + err.Error())
	}
	if err := s.schema.Validate(decoded); err != nil {
		return Failed("response does not match expected shape: " + err.Error())
	}

	var parsed struct {
		Phone *string `json:"phone"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Failed("invalid JSON in response: " + err.Error())
	}
	if parsed.Phone == nil || strings.TrimSpace(*parsed.Phone) == "" {
		return NotFound()
	}

	normalized, ok := normalizePhone(*parsed.Phone)
	if !ok {
		return NotFound()
	}
	return Found(normalized)
}

// normalizePhone prefers E.164 when the number parses as valid; otherwise it
// falls back to stripping separators, requiring at least ten digits.
func normalizePhone(raw string) (string, bool) {
	if num, err := phonenumbers.Parse(raw, "US"); err == nil && phonenumbers.IsValidNumber(num) {
		return phonenumbers.Format(num, phonenumbers.E164), true
	}

	var b strings.Builder
	digits := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			digits++
		} else if r == '+' && b.Len() == 0 {
			b.WriteRune(r)
		}
	}
	if digits < 10 {
		return "", false
	}
	return b.String(), true
}

package fields

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"
)

const testTimeout = 5 * time.Second

func TestSkillsExtract(t *testing.T) {
	cases := []struct {
		name     string
		response string
		outcome  Outcome
		want     []string
	}{
		{
			name:     "clean array",
			response: `["Go", "SQL", "Docker"]`,
			outcome:  OutcomeFound,
			want:     []string{"Go", "SQL", "Docker"},
		},
		{
			name:     "array wrapped in prose",
			response: "Here are the skills:\n[\"Python\", \"SQL\"]\n",
			outcome:  OutcomeFound,
			want:     []string{"Python", "SQL"},
		},
		{
			name:     "dedupe case insensitive preserving order",
			response: `["Go", "go", "SQL", " Go ", "sql"]`,
			outcome:  OutcomeFound,
			want:     []string{"Go", "SQL"},
		},
		{
			name:     "empty array is not found",
			response: `[]`,
			outcome:  OutcomeNotFound,
		},
		{
			name:     "blank entries dropped",
			response: `["", "  "]`,
			outcome:  OutcomeNotFound,
		},
		{
			name:     "no array in response",
			response: `I could not find any skills.`,
			outcome:  OutcomeFailed,
		},
		{
			name:     "truncated JSON",
			response: `["Go", "SQL"`,
			outcome:  OutcomeFailed,
		},
		{
			name:     "wrong element type rejected by schema",
			response: `[{"skill": "Go"}]`,
			outcome:  OutcomeFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSkillsStrategy(&stubClient{response: tc.response}, testTimeout)
			res := s.Extract(context.Background(), "resume text")
			if res.Outcome != tc.outcome {
				t.Fatalf("outcome = %q, want %q (reason: %s)", res.Outcome, tc.outcome, res.Reason)
			}
			if tc.outcome == OutcomeFound && !reflect.DeepEqual(res.Value, tc.want) {
				t.Fatalf("value = %v, want %v", res.Value, tc.want)
			}
		})
	}
}

func TestSkillsPromptTruncatesInput(t *testing.T) {
	client := &stubClient{response: `["Go"]`}
	s := NewSkillsStrategy(client, testTimeout)

	long := strings.Repeat("a", 10000)
	res := s.Extract(context.Background(), long)
	if res.Outcome != OutcomeFound {
		t.Fatalf("outcome = %q (reason: %s)", res.Outcome, res.Reason)
	}
	if len(client.prompts) != 1 {
		t.Fatalf("expected one prompt, got %d", len(client.prompts))
	}
	if !strings.Contains(client.prompts[0], strings.Repeat("a", 3000)) {
		t.Fatal("prompt should carry the leading 3000 characters of input")
	}
	if strings.Contains(client.prompts[0], strings.Repeat("a", 3001)) {
		t.Fatal("prompt should truncate input beyond 3000 characters")
	}
}

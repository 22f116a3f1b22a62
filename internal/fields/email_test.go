package fields

import (
	"context"
	"testing"
)

func TestEmailExtract(t *testing.T) {
	s := NewEmailStrategy()

	cases := []struct {
		name    string
		text    string
		outcome Outcome
		want    string
	}{
		{
			name:    "simple",
			text:    "Jane Doe\nEmail: jane.doe@corp.com\nPhone: 555-0100",
			outcome: OutcomeFound,
			want:    "jane.doe@corp.com",
		},
		{
			name:    "first of several wins",
			text:    "Contact: first@example.com or second@example.com",
			outcome: OutcomeFound,
			want:    "first@example.com",
		},
		{
			name:    "lowercased",
			text:    "Reach me at Jane.DOE@Corp.COM",
			outcome: OutcomeFound,
			want:    "jane.doe@corp.com",
		},
		{
			name:    "plus and percent allowed",
			text:    "jane+resume@sub.corp.io",
			outcome: OutcomeFound,
			want:    "jane+resume@sub.corp.io",
		},
		{
			name:    "no address",
			text:    "Jane Doe\nSoftware Engineer",
			outcome: OutcomeNotFound,
		},
		{
			name:    "empty input",
			text:    "   \n\t",
			outcome: OutcomeNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := s.Extract(context.Background(), tc.text)
			if res.Outcome != tc.outcome {
				t.Fatalf("outcome = %q, want %q (reason: %s)", res.Outcome, tc.outcome, res.Reason)
			}
			if tc.outcome == OutcomeFound && res.Value != tc.want {
				t.Fatalf("value = %v, want %q", res.Value, tc.want)
			}
		})
	}
}

func TestEmailExtractDeterministic(t *testing.T) {
	s := NewEmailStrategy()
	text := "Jane Doe\njane@corp.com\nother@corp.com"

	first := s.Extract(context.Background(), text)
	for i := 0; i < 10; i++ {
		again := s.Extract(context.Background(), text)
		if again != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, again, first)
		}
	}
}

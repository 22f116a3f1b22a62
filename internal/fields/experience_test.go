package fields

import (
	"context"
	"reflect"
	"testing"
)

func TestExperienceExtract(t *testing.T) {
	cases := []struct {
		name     string
		response string
		outcome  Outcome
		want     []ExperienceEntry
	}{
		{
			name: "full entry",
			response: `[{"company": "Acme", "title": "Engineer", "start_date": "Jan 2023",
				"end_date": "Present", "description": "Built things."}]`,
			outcome: OutcomeFound,
			want: []ExperienceEntry{{
				Company:     "Acme",
				Title:       "Engineer",
				StartDate:   "Jan 2023",
				EndDate:     "Present",
				Description: "Built things.",
			}},
		},
		{
			name:     "empty array is not found",
			response: `[]`,
			outcome:  OutcomeNotFound,
		},
		{
			name:     "entry without company rejected by schema",
			response: `[{"title": "Engineer"}]`,
			outcome:  OutcomeFailed,
		},
		{
			name:     "entry without title rejected by schema",
			response: `[{"company": "Acme"}]`,
			outcome:  OutcomeFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewExperienceStrategy(&stubClient{response: tc.response}, testTimeout)
			res := s.Extract(context.Background(), "resume text")
			if res.Outcome != tc.outcome {
				t.Fatalf("outcome = %q, want %q (reason: %s)", res.Outcome, tc.outcome, res.Reason)
			}
			if tc.outcome == OutcomeFound && !reflect.DeepEqual(res.Value, tc.want) {
				t.Fatalf("value = %#v, want %#v", res.Value, tc.want)
			}
		})
	}
}

package resumes

import (
	"context"
	"testing"
	"time"

	"resume-parser/internal/fields"
)

type stubStrategy struct {
	field   string
	result  fields.FieldResult
	sleep   time.Duration
	panicky bool
}

func (s *stubStrategy) Field() string { return s.field }

// Extract ignores the context on purpose: a misbehaving strategy that never
// checks for cancellation is exactly what the budget must defend against.
func (s *stubStrategy) Extract(_ context.Context, _ string) fields.FieldResult {
	if s.panicky {
		panic("strategy blew up")
	}
	if s.sleep > 0 {
		time.Sleep(s.sleep)
	}
	return s.result
}

func registryOf(strategies ...*stubStrategy) fields.Registry {
	reg := make(fields.Registry, len(strategies))
	for _, s := range strategies {
		reg[s.field] = s
	}
	return reg
}

func TestCoordinatorCollectsAllFields(t *testing.T) {
	reg := registryOf(
		&stubStrategy{field: "name", result: fields.Found("Jane Doe")},
		&stubStrategy{field: "email", result: fields.Found("jane@corp.com")},
		&stubStrategy{field: "phone", result: fields.NotFound()},
	)
	co := NewCoordinator(reg, time.Second)

	results := co.Extract(context.Background(), "text")
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results["name"].Value != "Jane Doe" {
		t.Fatalf("name = %+v", results["name"])
	}
	if results["phone"].Outcome != fields.OutcomeNotFound {
		t.Fatalf("phone = %+v", results["phone"])
	}
}

func TestCoordinatorIsolatesFailures(t *testing.T) {
	reg := registryOf(
		&stubStrategy{field: "name", result: fields.Found("Jane Doe")},
		&stubStrategy{field: "email", result: fields.Failed("pattern engine exploded")},
		&stubStrategy{field: "skills", panicky: true},
	)
	co := NewCoordinator(reg, time.Second)

	results := co.Extract(context.Background(), "text")

	if results["name"].Outcome != fields.OutcomeFound {
		t.Fatalf("a failing sibling must not affect name: %+v", results["name"])
	}
	if results["email"].Outcome != fields.OutcomeFailed {
		t.Fatalf("email = %+v", results["email"])
	}
	if results["skills"].Outcome != fields.OutcomeFailed {
		t.Fatalf("a panicking strategy must surface as failed: %+v", results["skills"])
	}
}

func TestCoordinatorBudget(t *testing.T) {
	reg := registryOf(
		&stubStrategy{field: "name", result: fields.Found("Jane Doe")},
		&stubStrategy{field: "skills", result: fields.Found([]string{"Go"}), sleep: 2 * time.Second},
	)
	co := NewCoordinator(reg, 50*time.Millisecond)

	start := time.Now()
	results := co.Extract(context.Background(), "text")
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("coordinator ran %s, must stop at its budget", elapsed)
	}

	if results["name"].Outcome != fields.OutcomeFound {
		t.Fatalf("fast field must survive budget expiry: %+v", results["name"])
	}
	if results["skills"].Outcome != fields.OutcomeFailed {
		t.Fatalf("slow field must be marked failed: %+v", results["skills"])
	}
	if results["skills"].Reason != "coordinator timeout" {
		t.Fatalf("reason = %q, want %q", results["skills"].Reason, "coordinator timeout")
	}
}

func TestCoordinatorIdempotent(t *testing.T) {
	reg := registryOf(
		&stubStrategy{field: "name", result: fields.Found("Jane Doe")},
		&stubStrategy{field: "email", result: fields.Found("jane@corp.com")},
	)
	co := NewCoordinator(reg, time.Second)

	first := co.Extract(context.Background(), "text")
	for i := 0; i < 5; i++ {
		again := co.Extract(context.Background(), "text")
		for field, res := range first {
			if again[field] != res {
				t.Fatalf("run %d: field %s differs: %+v vs %+v", i, field, again[field], res)
			}
		}
	}
}

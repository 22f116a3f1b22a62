package resumes

import (
	"context"
	"fmt"
	"time"

	"resume-parser/internal/fields"
	"resume-parser/internal/shared/metrics"
	"resume-parser/internal/shared/telemetry"
)

const reasonBudgetExceeded = "coordinator timeout"

// Coordinator fans strategies out concurrently and collects their results.
// One strategy failing, panicking, or stalling never affects the others: the
// faulty field is recorded as failed and the rest of the result stands.
type Coordinator struct {
	registry fields.Registry
	budget   time.Duration
}

// NewCoordinator builds a coordinator over the given strategy registry with
// an aggregate wall-clock budget for the whole field pass.
func NewCoordinator(registry fields.Registry, budget time.Duration) *Coordinator {
	return &Coordinator{registry: registry, budget: budget}
}

// Extract runs every registered strategy against the text and returns one
// result per field. Strategies still pending when the budget expires are
// marked failed; their goroutines observe the cancelled context and wind
// down on their own, sending into a buffered channel that is simply no
// longer read.
func (co *Coordinator) Extract(ctx context.Context, text string) map[string]fields.FieldResult {
	ctx, cancel := context.WithTimeout(ctx, co.budget)
	defer cancel()

	type outcome struct {
		field  string
		result fields.FieldResult
	}

	out := make(chan outcome, len(co.registry))
	for field, strategy := range co.registry {
		go func(field string, strategy fields.Strategy) {
			defer func() {
				if rec := recover(); rec != nil {
					out <- outcome{field: field, result: fields.Failed(fmt.Sprintf("strategy panic: %v", rec))}
				}
			}()
			out <- outcome{field: field, result: strategy.Extract(ctx, text)}
		}(field, strategy)
	}

	results := make(map[string]fields.FieldResult, len(co.registry))
collect:
	for len(results) < len(co.registry) {
		select {
		case o := <-out:
			results[o.field] = o.result
		case <-ctx.Done():
			for field := range co.registry {
				if _, done := results[field]; !done {
					results[field] = fields.Failed(reasonBudgetExceeded)
				}
			}
			break collect
		}
	}

	for field, res := range results {
		if res.Outcome == fields.OutcomeFailed {
			metrics.IncFieldFailed()
			telemetry.Warn("field.failed", map[string]any{
				"field":  field,
				"reason": res.Reason,
			})
		}
	}
	return results
}

package llm

import (
	"context"
	"time"

	"resume-parser/internal/shared/telemetry"
)

// RetryingClient wraps a Client with bounded retries and exponential backoff.
// Only transient failures are retried; a malformed response is returned to the
// caller immediately.
type RetryingClient struct {
	base       Client
	maxRetries int
	baseDelay  time.Duration
}

// NewRetryingClient decorates base. maxRetries counts retries after the first
// attempt; baseDelay doubles per retry.
func NewRetryingClient(base Client, maxRetries int, baseDelay time.Duration) *RetryingClient {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if baseDelay <= 0 {
		baseDelay = 300 * time.Millisecond
	}
	return &RetryingClient{base: base, maxRetries: maxRetries, baseDelay: baseDelay}
}

// Complete forwards to the base client, retrying transient failures.
func (r *RetryingClient) Complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	delay := r.baseDelay

	for attempt := 0; ; attempt++ {
		resp, err := r.base.Complete(ctx, prompt)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt >= r.maxRetries || !IsTransient(err) {
			return "", lastErr
		}

		telemetry.Warn("llm.retry", map[string]any{
			"attempt":  attempt + 1,
			"delay_ms": delay.Milliseconds(),
			"error":    err.Error(),
		})

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
		delay *= 2
	}
}

var _ Client = (*RetryingClient)(nil)

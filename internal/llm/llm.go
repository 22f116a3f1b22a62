// Package llm defines the outbound contract to the external extraction
// capability and the retry policy around it.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Client abstracts LLM providers for delegated field extraction.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// APIError carries the provider status so callers can classify failures as
// transient (retryable) or permanent.
type APIError struct {
	Status  int
	Type    string
	Message string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("llm api error: status=%d %s (%s)", e.Status, e.Message, e.Type)
	}
	return fmt.Sprintf("llm api error: status=%d %s", e.Status, e.Message)
}

// Transient reports whether the failure is worth retrying: rate limits and
// server-side errors are; everything else, including malformed requests, is not.
func (e *APIError) Transient() bool {
	return e.Status == 429 || e.Status >= 500
}

// IsTransient classifies an error from a Client call. Malformed-response
// errors are never transient; only timeouts, rate limits, and transport-level
// failures qualify for retry.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Transient()
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "client.timeout") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") {
		return true
	}

	return false
}

package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

type scriptedClient struct {
	errs  []error
	calls int
}

func (c *scriptedClient) Complete(_ context.Context, _ string) (string, error) {
	call := c.calls
	c.calls++
	if call < len(c.errs) && c.errs[call] != nil {
		return "", c.errs[call]
	}
	return "ok", nil
}

func TestRetryingClientRetriesTransient(t *testing.T) {
	transient := &APIError{Status: 503, Message: "upstream unavailable"}
	base := &scriptedClient{errs: []error{transient, transient}}
	client := NewRetryingClient(base, 2, time.Millisecond)

	resp, err := client.Complete(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("resp = %q", resp)
	}
	if base.calls != 3 {
		t.Fatalf("calls = %d, want 3", base.calls)
	}
}

func TestRetryingClientStopsAfterMaxRetries(t *testing.T) {
	transient := &APIError{Status: 429, Message: "rate limited"}
	base := &scriptedClient{errs: []error{transient, transient, transient, transient}}
	client := NewRetryingClient(base, 2, time.Millisecond)

	_, err := client.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if base.calls != 3 {
		t.Fatalf("calls = %d, want 3 (first attempt plus two retries)", base.calls)
	}
}

func TestRetryingClientDoesNotRetryPermanent(t *testing.T) {
	permanent := &APIError{Status: 400, Message: "bad request"}
	base := &scriptedClient{errs: []error{permanent}}
	client := NewRetryingClient(base, 2, time.Millisecond)

	_, err := client.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatal("expected error")
	}
	if base.calls != 1 {
		t.Fatalf("calls = %d, want 1", base.calls)
	}
}

func TestRetryingClientHonorsContext(t *testing.T) {
	transient := &APIError{Status: 500, Message: "boom"}
	base := &scriptedClient{errs: []error{transient, transient, transient}}
	client := NewRetryingClient(base, 3, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, "prompt")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if base.calls != 1 {
		t.Fatalf("calls = %d, want 1", base.calls)
	}
}

func TestIsTransient(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"deadline", context.DeadlineExceeded, true},
		{"rate limit", &APIError{Status: 429}, true},
		{"server error", &APIError{Status: 502}, true},
		{"bad request", &APIError{Status: 400}, false},
		{"unauthorized", &APIError{Status: 401}, false},
		{"connection reset", errors.New("read tcp: connection reset by peer"), true},
		{"plain error", errors.New("malformed response"), false},
	}
	for _, tc := range cases {
		if got := IsTransient(tc.err); got != tc.want {
			t.Errorf("%s: IsTransient = %v, want %v", tc.name, got, tc.want)
		}
	}
}

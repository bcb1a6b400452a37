package providers

import (
	"fmt"
	"strings"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(fmt.Errorf("wrapped: %w", err))
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestStatusErrorString(t *testing.T) {
	err := &StatusError{Provider: "nbastats", Endpoint: "teamgamelogs", StatusCode: 500, Body: "oops"}
	if got := err.Error(); !strings.Contains(got, "500") || !strings.Contains(got, "oops") || !strings.Contains(got, "teamgamelogs") {
		t.Fatalf("unexpected error string %q", got)
	}
	if got := (&StatusError{Provider: "p", Endpoint: "e", StatusCode: 404}).Error(); strings.HasSuffix(got, ": ") {
		t.Fatalf("unexpected trailing separator %q", got)
	}

	st, ok := AsStatusError(fmt.Errorf("wrapped: %w", err))
	if !ok || st.StatusCode != 500 {
		t.Fatalf("expected to unwrap status error")
	}
	if _, ok := AsStatusError(fmt.Errorf("plain")); ok {
		t.Fatalf("expected plain error not to unwrap")
	}
}

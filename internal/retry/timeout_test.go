package retry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

type refusedErr struct{}

func (refusedErr) Error() string   { return "connection refused" }
func (refusedErr) Timeout() bool   { return false }
func (refusedErr) Temporary() bool { return false }

func TestIsReadTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), false},
		{"net_timeout", timeoutErr{}, true},
		{"url_wrapped_timeout", &url.Error{Op: "Get", URL: "http://x", Err: timeoutErr{}}, true},
		{"net_non_timeout", refusedErr{}, false},
		{"deadline_exceeded", fmt.Errorf("wrapped: %w", context.DeadlineExceeded), true},
		{"os_deadline", os.ErrDeadlineExceeded, true},
		{"canceled", context.Canceled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReadTimeout(tt.err); got != tt.want {
				t.Fatalf("IsReadTimeout(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRetryLimitExceededErrorMessage(t *testing.T) {
	err := &RetryLimitExceededError{Operation: "op", Attempts: 12, Args: Args{"a": 1}, Err: errors.New("cause")}
	if got := err.Error(); got != "retry limit exceeded: op(map[a:1]) failed 12 times: cause" {
		t.Fatalf("unexpected message %q", got)
	}
	if _, ok := AsRetryLimitExceeded(errors.New("other")); ok {
		t.Fatalf("expected plain error not to match")
	}
}

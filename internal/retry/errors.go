package retry

import (
	"errors"
	"fmt"
)

// Args are the named parameters an operation was invoked with, kept for diagnostics.
type Args map[string]any

// Operation names a retried call and the parameters it was made with.
type Operation struct {
	Name string
	Args Args
}

// RetryLimitExceededError reports that an operation failed on every permitted attempt.
type RetryLimitExceededError struct {
	Operation string
	Attempts  int
	Args      Args
	Err       error
}

func (e *RetryLimitExceededError) Error() string {
	return fmt.Sprintf("retry limit exceeded: %s(%v) failed %d times: %v", e.Operation, e.Args, e.Attempts, e.Err)
}

func (e *RetryLimitExceededError) Unwrap() error {
	return e.Err
}

// AsRetryLimitExceeded attempts to unwrap an error into a RetryLimitExceededError.
func AsRetryLimitExceeded(err error) (*RetryLimitExceededError, bool) {
	var rlErr *RetryLimitExceededError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

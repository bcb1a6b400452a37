package retry

import "time"

const (
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries = 11
	// MaxAttempts is the total number of times an operation is invoked before giving up.
	MaxAttempts = MaxRetries + 1
)

// backoffSeconds is the delay, in seconds, slept after the failed attempt with the same index.
var backoffSeconds = [...]int{1, 2, 5, 10, 15, 20, 25, 25, 25, 50, 50, 100}

// Compile-time check: the schedule must have an entry for every attempt index.
const _ uint = uint(len(backoffSeconds) - MaxAttempts)

// Schedule returns a copy of the backoff schedule.
func Schedule() []time.Duration {
	out := make([]time.Duration, len(backoffSeconds))
	for i, s := range backoffSeconds {
		out[i] = time.Duration(s) * time.Second
	}
	return out
}

// Delay returns the delay slept after the failed attempt at index attempt.
func Delay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt >= len(backoffSeconds) {
		attempt = len(backoffSeconds) - 1
	}
	return time.Duration(backoffSeconds[attempt]) * time.Second
}

// Package retry invokes fallible upstream operations on a fixed backoff schedule.
//
// An operation is attempted up to MaxAttempts times. Between attempts the caller's
// goroutine sleeps for the schedule entry at the current attempt index. When the final
// attempt fails, Do returns a *RetryLimitExceededError carrying the operation name,
// attempt count, arguments and last cause.
package retry

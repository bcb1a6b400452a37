package retry

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/nba-stats-dl/internal/logging"
	"github.com/preston-bernstein/nba-stats-dl/internal/metrics"
)

// Retrier holds the collaborators shared by every retried call against one upstream.
type Retrier struct {
	logger   *slog.Logger
	recorder *metrics.Recorder
	provider string
	newTimer func() backoff.Timer
	stack    func() []byte
}

// New returns a Retrier that logs to logger and records attempts for provider.
func New(logger *slog.Logger, recorder *metrics.Recorder, provider string) *Retrier {
	if provider == "" {
		provider = "provider"
	}
	return &Retrier{
		logger:   logger,
		recorder: recorder,
		provider: provider,
		stack:    debug.Stack,
	}
}

// WithTimer returns a copy of r whose waits use timers built by newTimer.
func (r *Retrier) WithTimer(newTimer func() backoff.Timer) *Retrier {
	if r == nil {
		r = New(nil, nil, "")
	}
	cp := *r
	cp.newTimer = newTimer
	return &cp
}

// Do invokes fn until it succeeds or MaxAttempts attempts have failed, sleeping
// Delay(i) after the failed attempt with index i. The only error it returns is a
// *RetryLimitExceededError, or ctx.Err() when ctx is canceled while waiting.
func Do[T any](ctx context.Context, r *Retrier, op Operation, fn func(context.Context) (T, error)) (T, error) {
	if r == nil {
		r = New(nil, nil, "")
	}

	var (
		result   T
		zero     T
		lastErr  error
		attempts int
	)

	attempt := func() error {
		start := time.Now()
		res, err := fn(ctx)
		attempts++
		r.recorder.RecordProviderAttempt(r.provider, time.Since(start), err)
		if err != nil {
			lastErr = err
			return err
		}
		result = res
		return nil
	}

	notify := func(err error, delay time.Duration) {
		r.recorder.RecordRetry(r.provider, op.Name, delay)
		r.logFailure(ctx, op, attempts, err, delay)
	}

	b := backoff.WithContext(&scheduleBackOff{}, ctx)
	if err := backoff.RetryNotifyWithTimer(attempt, b, notify, r.timer()); err == nil {
		return result, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return zero, ctxErr
	}

	exceeded := &RetryLimitExceededError{
		Operation: op.Name,
		Attempts:  attempts,
		Args:      op.Args,
		Err:       lastErr,
	}
	logging.Error(logging.FromContext(ctx, r.logger), "retry limit exceeded", lastErr,
		slog.String(logging.FieldProvider, r.provider),
		slog.String(logging.FieldOperation, op.Name),
		slog.Any(logging.FieldArgs, op.Args),
		slog.Int(logging.FieldAttempt, attempts),
	)
	return zero, exceeded
}

func (r *Retrier) logFailure(ctx context.Context, op Operation, attempts int, err error, delay time.Duration) {
	logger := logging.FromContext(ctx, r.logger)
	if logger == nil {
		return
	}
	args := []any{
		slog.String(logging.FieldProvider, r.provider),
		slog.String(logging.FieldOperation, op.Name),
		slog.Any(logging.FieldArgs, op.Args),
		slog.Int(logging.FieldAttempt, attempts),
		slog.Duration(logging.FieldDelay, delay),
		slog.Any("error", err),
	}
	if !IsReadTimeout(err) && r.stack != nil {
		args = append(args, slog.String(logging.FieldStack, string(r.stack())))
	}
	logger.Warn("operation failed, sleeping before retry", args...)
}

// timer returns nil so backoff falls back to its real timer unless a test installed one.
func (r *Retrier) timer() backoff.Timer {
	if r.newTimer == nil {
		return nil
	}
	return r.newTimer()
}

// scheduleBackOff walks the fixed schedule and stops once MaxRetries delays were handed out.
type scheduleBackOff struct {
	attempt int
}

func (b *scheduleBackOff) NextBackOff() time.Duration {
	if b.attempt >= MaxRetries {
		return backoff.Stop
	}
	d := Delay(b.attempt)
	b.attempt++
	return d
}

func (b *scheduleBackOff) Reset() {
	b.attempt = 0
}

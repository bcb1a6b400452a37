package testutil

import (
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// InstantTimers builds backoff timers that fire immediately and remembers every delay
// they were started with.
type InstantTimers struct {
	mu     sync.Mutex
	delays []time.Duration
}

// New returns a timer for retry.Retrier.WithTimer.
func (t *InstantTimers) New() backoff.Timer {
	return &instantTimer{parent: t}
}

// Delays returns the delays requested so far.
func (t *InstantTimers) Delays() []time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]time.Duration(nil), t.delays...)
}

type instantTimer struct {
	parent *InstantTimers
	c      chan time.Time
}

func (t *instantTimer) Start(d time.Duration) {
	t.parent.mu.Lock()
	t.parent.delays = append(t.parent.delays, d)
	t.parent.mu.Unlock()
	t.c = make(chan time.Time, 1)
	t.c <- time.Time{}
}

func (t *instantTimer) Stop() {}

func (t *instantTimer) C() <-chan time.Time { return t.c }

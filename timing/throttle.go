package timing

import (
	"sync"
	"time"

	"github.com/VICTORTBK/Portfolio/clock"
)

// Throttler invokes fn at most once per limit-length window. The first call
// in a quiet period fires synchronously and opens a cooldown; calls made
// during the cooldown are dropped, not deferred. This is deliberately
// different from Debouncer, which defers to the end of the burst.
type Throttler[T any] struct {
	clk   clock.Clock
	limit time.Duration
	fn    func(T)

	mu      sync.Mutex
	cooling bool
	timer   clock.Timer
	gen     uint64
}

func NewThrottler[T any](clk clock.Clock, limit time.Duration, fn func(T)) *Throttler[T] {
	if limit < 0 {
		limit = 0
	}
	return &Throttler[T]{clk: clk, limit: limit, fn: fn}
}

// Call invokes fn(v) synchronously unless the throttler is cooling down.
// It reports whether fn ran.
func (t *Throttler[T]) Call(v T) bool {
	t.mu.Lock()
	if t.cooling {
		t.mu.Unlock()
		return false
	}
	t.cooling = true
	t.gen++
	gen := t.gen
	t.timer = t.clk.AfterFunc(t.limit, func() { t.cool(gen) })
	t.mu.Unlock()

	t.fn(v)
	return true
}

// cool ends the cooldown opened by the matching Call. A stale callback from
// a stopped timer carries an old generation and leaves the state alone.
func (t *Throttler[T]) cool(gen uint64) {
	t.mu.Lock()
	if gen == t.gen {
		t.cooling = false
		t.timer = nil
	}
	t.mu.Unlock()
}

// Stop cancels the cooldown timer. The throttler becomes eligible to fire
// again immediately.
func (t *Throttler[T]) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.cooling = false
	t.gen++
}

// Package timing provides invocation-rate wrappers for callbacks: debounce
// (collapse a burst into one trailing call) and throttle (drop calls during
// a cooldown).
package timing

import (
	"sync"
	"time"

	"github.com/VICTORTBK/Portfolio/clock"
)

// Debouncer collapses bursts of calls into a single invocation of fn with
// the most recent argument, wait after the burst goes quiet. Each Call
// cancels the previously scheduled invocation, so at most one timer is
// pending at any time.
//
// In leading mode the first call of a burst fires synchronously instead and
// the trailing invocation is suppressed; the burst window still extends on
// every call.
type Debouncer[T any] struct {
	clk     clock.Clock
	wait    time.Duration
	fn      func(T)
	leading bool

	mu    sync.Mutex
	timer clock.Timer
	gen   uint64
	last  T
}

// NewDebouncer returns a trailing-edge debouncer.
func NewDebouncer[T any](clk clock.Clock, wait time.Duration, fn func(T)) *Debouncer[T] {
	if wait < 0 {
		wait = 0
	}
	return &Debouncer[T]{clk: clk, wait: wait, fn: fn}
}

// NewLeadingDebouncer returns a leading-edge debouncer.
func NewLeadingDebouncer[T any](clk clock.Clock, wait time.Duration, fn func(T)) *Debouncer[T] {
	d := NewDebouncer(clk, wait, fn)
	d.leading = true
	return d
}

// Call records v and (re)arms the burst window. It reports whether fn ran
// synchronously, which only ever happens in leading mode.
func (d *Debouncer[T]) Call(v T) bool {
	d.mu.Lock()
	d.last = v
	first := d.timer == nil
	if d.timer != nil {
		// Stop may report false when the callback is already dispatched;
		// the generation bump below makes that callback a no-op.
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.clk.AfterFunc(d.wait, func() { d.expire(gen) })
	d.mu.Unlock()

	if d.leading && first {
		d.fn(v)
		return true
	}
	return false
}

func (d *Debouncer[T]) expire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	v := d.last
	d.mu.Unlock()

	// Leading mode already fired at the start of the burst.
	if !d.leading {
		d.fn(v)
	}
}

// Stop cancels any pending invocation and closes the current burst window.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

package clock

import (
	"sync"
	"time"
)

// Fake is a manually advanced Clock. Advance runs due callbacks in
// scheduling order on the calling goroutine, so tests observe every
// intermediate state without sleeping.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	seq     int
	pending []*fakeTimer
}

type fakeTimer struct {
	c       *Fake
	at      time.Time
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func NewFake() *Fake {
	return &Fake{now: time.Unix(0, 0)}
}

func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Fake) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d < 0 {
		d = 0
	}
	t := &fakeTimer{c: c, at: c.now.Add(d), seq: c.seq, f: f}
	c.seq++
	c.pending = append(c.pending, t)
	return t
}

// Advance moves the clock forward by d, firing every timer that comes due.
// Callbacks may schedule further timers; those fire too if they fall within
// the window.
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	for {
		t := c.popDueLocked(target)
		if t == nil {
			break
		}
		c.now = t.at
		t.fired = true
		c.mu.Unlock()
		t.f()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

// Pending reports how many timers are still scheduled.
func (c *Fake) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.pending {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// popDueLocked removes and returns the earliest live timer at or before
// target, ties broken by scheduling order.
func (c *Fake) popDueLocked(target time.Time) *fakeTimer {
	var best *fakeTimer
	bestIdx := -1
	for i, t := range c.pending {
		if t.stopped || t.fired || t.at.After(target) {
			continue
		}
		if best == nil || t.at.Before(best.at) || (t.at.Equal(best.at) && t.seq < best.seq) {
			best = t
			bestIdx = i
		}
	}
	if best == nil {
		return nil
	}
	c.pending = append(c.pending[:bestIdx], c.pending[bestIdx+1:]...)
	return best
}

func (t *fakeTimer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

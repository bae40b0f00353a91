package timing

import (
	"testing"
	"time"

	"github.com/VICTORTBK/Portfolio/clock"
)

type call struct {
	arg int
	at  time.Duration
}

func recorder(c *clock.Fake) (*[]call, func(int)) {
	start := c.Now()
	calls := &[]call{}
	return calls, func(v int) {
		*calls = append(*calls, call{arg: v, at: c.Now().Sub(start)})
	}
}

func TestDebounceCollapsesBurst(t *testing.T) {
	c := clock.NewFake()
	calls, fn := recorder(c)
	d := NewDebouncer(c, 50*time.Millisecond, fn)

	// Calls at t=0, 10, 20 with wait=50: one firing at t=70 with the last arg.
	d.Call(1)
	c.Advance(10 * time.Millisecond)
	d.Call(2)
	c.Advance(10 * time.Millisecond)
	d.Call(3)

	c.Advance(49 * time.Millisecond)
	if len(*calls) != 0 {
		t.Fatalf("fired early: %v", *calls)
	}
	c.Advance(1 * time.Millisecond)
	if len(*calls) != 1 {
		t.Fatalf("expected exactly 1 firing, got %v", *calls)
	}
	got := (*calls)[0]
	if got.arg != 3 || got.at != 70*time.Millisecond {
		t.Fatalf("expected arg=3 at t=70ms, got arg=%d at t=%v", got.arg, got.at)
	}
}

func TestDebounceSeparateBursts(t *testing.T) {
	c := clock.NewFake()
	calls, fn := recorder(c)
	d := NewDebouncer(c, 50*time.Millisecond, fn)

	d.Call(1)
	c.Advance(100 * time.Millisecond)
	d.Call(2)
	c.Advance(100 * time.Millisecond)

	if len(*calls) != 2 {
		t.Fatalf("expected 2 firings for 2 quiet bursts, got %v", *calls)
	}
	if (*calls)[0].arg != 1 || (*calls)[1].arg != 2 {
		t.Fatalf("wrong args: %v", *calls)
	}
}

func TestLeadingDebounceFiresFirstCallOnly(t *testing.T) {
	c := clock.NewFake()
	calls, fn := recorder(c)
	d := NewLeadingDebouncer(c, 50*time.Millisecond, fn)

	if !d.Call(1) {
		t.Fatal("leading call should fire synchronously")
	}
	if d.Call(2) {
		t.Fatal("second call inside the window should not fire")
	}
	c.Advance(200 * time.Millisecond)

	// No trailing call: the burst produced exactly the one leading firing.
	if len(*calls) != 1 || (*calls)[0].arg != 1 {
		t.Fatalf("expected single leading firing with arg=1, got %v", *calls)
	}

	// Window closed; next call leads again.
	if !d.Call(3) {
		t.Fatal("call after quiet period should fire synchronously")
	}
}

func TestDebounceStopCancelsPending(t *testing.T) {
	c := clock.NewFake()
	calls, fn := recorder(c)
	d := NewDebouncer(c, 50*time.Millisecond, fn)

	d.Call(1)
	d.Stop()
	c.Advance(time.Second)
	if len(*calls) != 0 {
		t.Fatalf("stopped debouncer fired: %v", *calls)
	}
}

func TestDebounceOnePendingTimer(t *testing.T) {
	c := clock.NewFake()
	_, fn := recorder(c)
	d := NewDebouncer(c, 50*time.Millisecond, fn)

	for i := 0; i < 10; i++ {
		d.Call(i)
	}
	if c.Pending() != 1 {
		t.Fatalf("expected exactly 1 pending timer, got %d", c.Pending())
	}
}

func TestThrottleDropsDuringCooldown(t *testing.T) {
	c := clock.NewFake()
	calls, fn := recorder(c)
	th := NewThrottler(c, 50*time.Millisecond, fn)

	// Calls at t=0, 10, 60 with limit=50: firings at t=0 and t=60 only.
	if !th.Call(1) {
		t.Fatal("first call should fire")
	}
	c.Advance(10 * time.Millisecond)
	if th.Call(2) {
		t.Fatal("call during cooldown should be dropped")
	}
	c.Advance(50 * time.Millisecond)
	if !th.Call(3) {
		t.Fatal("call after cooldown should fire")
	}

	if len(*calls) != 2 {
		t.Fatalf("expected 2 firings, got %v", *calls)
	}
	if (*calls)[0].at != 0 || (*calls)[1].at != 60*time.Millisecond {
		t.Fatalf("expected firings at t=0 and t=60ms, got %v", *calls)
	}
	if (*calls)[1].arg != 3 {
		t.Fatalf("dropped call leaked through: %v", *calls)
	}
}

func TestThrottleDoesNotDeferDroppedCalls(t *testing.T) {
	c := clock.NewFake()
	calls, fn := recorder(c)
	th := NewThrottler(c, 50*time.Millisecond, fn)

	th.Call(1)
	th.Call(2)
	th.Call(3)
	c.Advance(time.Second)

	// Unlike debounce, nothing fires at the window end.
	if len(*calls) != 1 {
		t.Fatalf("expected dropped calls to stay dropped, got %v", *calls)
	}
}

// dispatchedTimer models a time.AfterFunc timer whose callback has already
// been handed to the runtime: Stop reports false and the callback still runs
// when the test fires it.
type dispatchedTimer struct{ f func() }

func (t *dispatchedTimer) Stop() bool { return false }

type dispatchedClock struct{ timers []*dispatchedTimer }

func (c *dispatchedClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	dt := &dispatchedTimer{f: f}
	c.timers = append(c.timers, dt)
	return dt
}

func (c *dispatchedClock) Now() time.Time { return time.Time{} }

func TestDebounceIgnoresStaleTimerCallback(t *testing.T) {
	c := &dispatchedClock{}
	var calls []int
	d := NewDebouncer(c, 50*time.Millisecond, func(v int) { calls = append(calls, v) })

	d.Call(1) // arms timer 0
	d.Call(2) // timer 0 already dispatched: Stop()==false, timer 1 armed

	c.timers[0].f() // the stale callback runs anyway
	if len(calls) != 0 {
		t.Fatalf("stale callback fired before the wait elapsed: %v", calls)
	}

	c.timers[1].f() // the live timer reaches its deadline
	if len(calls) != 1 || calls[0] != 2 {
		t.Fatalf("expected one firing with the last arg, got %v", calls)
	}
}

func TestThrottleStaleCoolKeepsCooldownClosed(t *testing.T) {
	c := &dispatchedClock{}
	fired := 0
	th := NewThrottler(c, 50*time.Millisecond, func(int) { fired++ })

	th.Call(1) // fires, cooldown timer 0 armed
	th.Stop()  // timer 0 already dispatched: Stop()==false
	th.Call(2) // fires again, cooldown timer 1 armed

	c.timers[0].f() // stale cool from the first window
	if th.Call(3) {
		t.Fatal("call fired inside an open cooldown")
	}
	if fired != 2 {
		t.Fatalf("expected 2 firings, got %d", fired)
	}

	c.timers[1].f() // the live cooldown expires
	if !th.Call(4) {
		t.Fatal("call after the cooldown should fire")
	}
}

func TestThrottleStopReleasesCooldown(t *testing.T) {
	c := clock.NewFake()
	calls, fn := recorder(c)
	th := NewThrottler(c, time.Minute, fn)

	th.Call(1)
	th.Stop()
	if !th.Call(2) {
		t.Fatal("call after Stop should fire immediately")
	}
	if len(*calls) != 2 {
		t.Fatalf("expected 2 firings, got %v", *calls)
	}
}

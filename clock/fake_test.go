package clock

import (
	"testing"
	"time"
)

func TestFakeFiresInOrder(t *testing.T) {
	c := NewFake()
	var got []int
	c.AfterFunc(30*time.Millisecond, func() { got = append(got, 3) })
	c.AfterFunc(10*time.Millisecond, func() { got = append(got, 1) })
	c.AfterFunc(20*time.Millisecond, func() { got = append(got, 2) })

	c.Advance(50 * time.Millisecond)

	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("wrong firing order: %v", got)
	}
}

func TestFakeStopPreventsFiring(t *testing.T) {
	c := NewFake()
	fired := false
	timer := c.AfterFunc(10*time.Millisecond, func() { fired = true })

	if !timer.Stop() {
		t.Fatal("Stop on a pending timer should return true")
	}
	c.Advance(time.Second)
	if fired {
		t.Fatal("stopped timer fired")
	}
	if timer.Stop() {
		t.Fatal("second Stop should return false")
	}
}

func TestFakeCallbackReschedules(t *testing.T) {
	c := NewFake()
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		if ticks < 5 {
			c.AfterFunc(10*time.Millisecond, tick)
		}
	}
	c.AfterFunc(10*time.Millisecond, tick)

	c.Advance(100 * time.Millisecond)
	if ticks != 5 {
		t.Fatalf("expected 5 chained ticks, got %d", ticks)
	}
	if c.Pending() != 0 {
		t.Fatalf("expected no pending timers, got %d", c.Pending())
	}
}

func TestFakeAdvanceStopsAtBoundary(t *testing.T) {
	c := NewFake()
	fired := false
	c.AfterFunc(50*time.Millisecond, func() { fired = true })

	c.Advance(49 * time.Millisecond)
	if fired {
		t.Fatal("timer fired before its deadline")
	}
	c.Advance(1 * time.Millisecond)
	if !fired {
		t.Fatal("timer did not fire at its deadline")
	}
}

func TestFakeNowAdvances(t *testing.T) {
	c := NewFake()
	start := c.Now()
	c.Advance(time.Second)
	if c.Now().Sub(start) != time.Second {
		t.Fatalf("Now moved by %v, want 1s", c.Now().Sub(start))
	}
}

// Package typewriter implements character-by-character text animation
// engines: a cycling single-text typewriter and a sequential multi-line
// typewriter. Both are pure state machines bound to a Sink and a Clock;
// they know nothing about the rendering surface.
package typewriter

import (
	"sync"
	"time"

	"github.com/VICTORTBK/Portfolio/clock"
)

// State is the current phase of a Typewriter.
type State int

const (
	StateTyping State = iota
	StateHolding // full text displayed, waiting out PauseTime
	StateDeleting
	StatePaused // externally suspended
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateTyping:
		return "typing"
	case StateHolding:
		return "holding"
	case StateDeleting:
		return "deleting"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

const (
	DefaultTypeSpeed   = 100 * time.Millisecond
	DefaultDeleteSpeed = 50 * time.Millisecond
	DefaultPauseTime   = 2 * time.Second
	DefaultCursorChar  = "|"
)

// Options configures a Typewriter. Use DefaultOptions as the starting
// point; zero durations are legal and mean "as fast as the clock allows".
type Options struct {
	TypeSpeed   time.Duration
	DeleteSpeed time.Duration
	PauseTime   time.Duration
	Loop        bool
	ShowCursor  bool
	CursorChar  string
	Clock       clock.Clock
}

func DefaultOptions() Options {
	return Options{
		TypeSpeed:   DefaultTypeSpeed,
		DeleteSpeed: DefaultDeleteSpeed,
		PauseTime:   DefaultPauseTime,
		Loop:        true,
		CursorChar:  DefaultCursorChar,
		Clock:       clock.System,
	}
}

// Typewriter cycles through a list of texts, typing and deleting each one.
// All transitions happen on timer callbacks; a mutex serializes them and a
// generation counter invalidates callbacks from cancelled timers, so no two
// ticks of the same instance ever interleave.
type Typewriter struct {
	mu    sync.Mutex
	clk   clock.Clock
	sink  Sink
	texts [][]rune
	opts  Options

	state     State
	resumeAs  State // state held before Pause
	index     int
	count     int
	timer     clock.Timer
	gen       uint64
	inert     bool
	started   bool
	destroyed bool
}

// New builds a Typewriter over sink and texts. A nil sink or empty text
// list yields an inert machine: every operation is a no-op and no tick is
// ever scheduled. Callers treat that as valid degenerate configuration.
func New(sink Sink, texts []string, opts Options) *Typewriter {
	if opts.Clock == nil {
		opts.Clock = clock.System
	}
	if opts.TypeSpeed < 0 {
		opts.TypeSpeed = 0
	}
	if opts.DeleteSpeed < 0 {
		opts.DeleteSpeed = 0
	}
	if opts.PauseTime < 0 {
		opts.PauseTime = 0
	}
	if opts.ShowCursor && opts.CursorChar == "" {
		opts.CursorChar = DefaultCursorChar
	}
	tw := &Typewriter{
		clk:  opts.Clock,
		sink: sink,
		opts: opts,
	}
	if sink == nil || len(texts) == 0 {
		tw.inert = true
		return tw
	}
	tw.texts = make([][]rune, len(texts))
	for i, s := range texts {
		tw.texts[i] = []rune(s)
	}
	return tw
}

// Start schedules the first tick. Starting an already started machine is a
// no-op.
func (t *Typewriter) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inert || t.destroyed || t.started {
		return
	}
	t.started = true
	t.state = StateTyping
	t.display()
	t.schedule(t.opts.TypeSpeed)
}

// Pause cancels the pending tick and freezes the current position.
// Pausing an already paused (or stopped) machine is a no-op.
func (t *Typewriter) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inert || t.destroyed || !t.started {
		return
	}
	if t.state == StatePaused || t.state == StateStopped {
		return
	}
	t.cancel()
	t.resumeAs = t.state
	t.state = StatePaused
}

// Resume re-enters the state that was active before Pause and schedules the
// next tick from the preserved position. Skipped time is not replayed.
// Resuming an active machine is a no-op.
func (t *Typewriter) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inert || t.destroyed || t.state != StatePaused {
		return
	}
	t.state = t.resumeAs
	t.schedule(t.delayFor(t.state))
}

// Reset cancels any pending tick, clears the displayed text and restarts
// typing from the first text.
func (t *Typewriter) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inert || t.destroyed {
		return
	}
	t.cancel()
	t.index = 0
	t.count = 0
	t.state = StateTyping
	t.display()
	if t.started {
		t.schedule(t.opts.TypeSpeed)
	}
}

// Destroy terminally stops the machine and clears the sink. No tick runs
// after Destroy returns.
func (t *Typewriter) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inert || t.destroyed {
		return
	}
	t.cancel()
	t.destroyed = true
	t.state = StateStopped
	t.sink.SetText("")
}

// State reports the current phase. Destroyed and inert machines report
// StateStopped.
func (t *Typewriter) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inert || t.destroyed {
		return StateStopped
	}
	return t.state
}

// Index reports which text is currently displayed (or being deleted).
func (t *Typewriter) Index() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.index
}

func (t *Typewriter) schedule(d time.Duration) {
	t.gen++
	gen := t.gen
	t.timer = t.clk.AfterFunc(d, func() { t.tick(gen) })
}

// cancel stops the pending timer and bumps the generation so an
// already-dispatched callback becomes a no-op.
func (t *Typewriter) cancel() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
}

func (t *Typewriter) delayFor(s State) time.Duration {
	switch s {
	case StateHolding:
		return t.opts.PauseTime
	case StateDeleting:
		return t.opts.DeleteSpeed
	default:
		return t.opts.TypeSpeed
	}
}

func (t *Typewriter) tick(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.gen || t.destroyed {
		return
	}
	t.timer = nil

	switch t.state {
	case StateTyping:
		if t.count < len(t.texts[t.index]) {
			t.count++
		}
		t.display()
		if t.count >= len(t.texts[t.index]) {
			t.state = StateHolding
			t.schedule(t.opts.PauseTime)
		} else {
			t.schedule(t.opts.TypeSpeed)
		}

	case StateHolding:
		t.state = StateDeleting
		t.deleteOne()

	case StateDeleting:
		t.deleteOne()
	}
}

// deleteOne removes one character and either keeps deleting, advances to
// the next text, or stops when a non-looping cycle completes.
func (t *Typewriter) deleteOne() {
	if t.count > 0 {
		t.count--
	}
	t.display()
	if t.count > 0 {
		t.schedule(t.opts.DeleteSpeed)
		return
	}
	next := (t.index + 1) % len(t.texts)
	if next == 0 && !t.opts.Loop {
		t.state = StateStopped
		return
	}
	t.index = next
	t.state = StateTyping
	t.schedule(t.opts.TypeSpeed)
}

func (t *Typewriter) display() {
	s := string(t.texts[t.index][:t.count])
	if t.opts.ShowCursor {
		s += t.opts.CursorChar
	}
	t.sink.SetText(s)
}

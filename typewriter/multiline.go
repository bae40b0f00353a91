package typewriter

import (
	"sync"
	"time"

	"github.com/VICTORTBK/Portfolio/clock"
)

const DefaultLineDelay = 400 * time.Millisecond

// LineOptions configures a MultiLine typewriter.
type LineOptions struct {
	TypeSpeed  time.Duration
	LineDelay  time.Duration
	ShowCursor bool
	CursorChar string
	Clock      clock.Clock
}

func DefaultLineOptions() LineOptions {
	return LineOptions{
		TypeSpeed:  DefaultTypeSpeed,
		LineDelay:  DefaultLineDelay,
		CursorChar: DefaultCursorChar,
		Clock:      clock.System,
	}
}

// MultiLine types a fixed sequence of lines once, each into its own sink,
// strictly in order with no deletion and no looping. The line index only
// increases; after the last line the machine is terminal until Reset.
type MultiLine struct {
	mu    sync.Mutex
	clk   clock.Clock
	sinks []Sink
	lines [][]rune
	opts  LineOptions

	line      int
	count     int
	advancing bool // waiting out LineDelay before the next line
	paused    bool
	timer     clock.Timer
	gen       uint64
	inert     bool
	started   bool
	done      bool
	destroyed bool
}

// NewMultiLine builds a MultiLine over one sink per line. An empty line
// list, a sink count that does not match, or any nil sink yields an inert
// machine that never schedules a tick.
func NewMultiLine(sinks []Sink, lines []string, opts LineOptions) *MultiLine {
	if opts.Clock == nil {
		opts.Clock = clock.System
	}
	if opts.TypeSpeed < 0 {
		opts.TypeSpeed = 0
	}
	if opts.LineDelay < 0 {
		opts.LineDelay = 0
	}
	if opts.ShowCursor && opts.CursorChar == "" {
		opts.CursorChar = DefaultCursorChar
	}
	m := &MultiLine{clk: opts.Clock, sinks: sinks, opts: opts}
	if len(lines) == 0 || len(sinks) != len(lines) {
		m.inert = true
		return m
	}
	for _, s := range sinks {
		if s == nil {
			m.inert = true
			return m
		}
	}
	m.lines = make([][]rune, len(lines))
	for i, s := range lines {
		m.lines[i] = []rune(s)
	}
	return m
}

func (m *MultiLine) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inert || m.destroyed || m.started {
		return
	}
	m.started = true
	m.schedule(m.opts.TypeSpeed)
}

func (m *MultiLine) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inert || m.destroyed || m.done || m.paused || !m.started {
		return
	}
	m.cancel()
	m.paused = true
}

func (m *MultiLine) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inert || m.destroyed || !m.paused {
		return
	}
	m.paused = false
	if m.advancing {
		m.schedule(m.opts.LineDelay)
	} else {
		m.schedule(m.opts.TypeSpeed)
	}
}

// Reset clears every sink and restarts from the first line.
func (m *MultiLine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inert || m.destroyed {
		return
	}
	m.cancel()
	for _, s := range m.sinks {
		s.SetText("")
	}
	m.line = 0
	m.count = 0
	m.advancing = false
	m.paused = false
	m.done = false
	if m.started {
		m.schedule(m.opts.TypeSpeed)
	}
}

// Destroy terminally stops the machine and clears all sinks.
func (m *MultiLine) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inert || m.destroyed {
		return
	}
	m.cancel()
	m.destroyed = true
	for _, s := range m.sinks {
		s.SetText("")
	}
}

// Done reports whether every line has been fully typed.
func (m *MultiLine) Done() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done
}

// Line reports the index of the line currently being typed.
func (m *MultiLine) Line() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.line
}

func (m *MultiLine) schedule(d time.Duration) {
	m.gen++
	gen := m.gen
	m.timer = m.clk.AfterFunc(d, func() { m.tick(gen) })
}

func (m *MultiLine) cancel() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.gen++
}

func (m *MultiLine) tick(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen || m.destroyed || m.done {
		return
	}
	m.timer = nil

	if m.advancing {
		m.advancing = false
		m.line++
		m.count = 0
	}
	m.typeOne()
}

func (m *MultiLine) typeOne() {
	line := m.lines[m.line]
	if m.count < len(line) {
		m.count++
	}
	last := m.line == len(m.lines)-1
	complete := m.count >= len(line)

	text := string(line[:m.count])
	if m.opts.ShowCursor && (!complete || last) {
		// The cursor tracks the active line and stays on the final one.
		text += m.opts.CursorChar
	}
	m.sinks[m.line].SetText(text)

	switch {
	case !complete:
		m.schedule(m.opts.TypeSpeed)
	case last:
		m.done = true
	default:
		m.advancing = true
		m.schedule(m.opts.LineDelay)
	}
}

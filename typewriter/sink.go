package typewriter

import "sync"

// Sink receives the currently displayed text. The engines write whole
// strings on every tick; the host decides how to render them.
type Sink interface {
	SetText(string)
	Text() string
}

// BufferSink is an in-memory Sink. Tests and headless callers use it
// directly; the TUI wraps it to forward frames into the event loop.
type BufferSink struct {
	mu   sync.Mutex
	text string
}

func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

func (b *BufferSink) SetText(s string) {
	b.mu.Lock()
	b.text = s
	b.mu.Unlock()
}

func (b *BufferSink) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

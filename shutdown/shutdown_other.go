//go:build !windows

// Package shutdown registers the OS signals that end a portfolio session,
// so the session log is closed and the typewriter engines are destroyed
// before the process exits.
package shutdown

import (
	"os"
	"os/signal"
	"syscall"
)

// Notify subscribes ch to interrupt and termination signals.
func Notify(ch chan os.Signal) {
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
}

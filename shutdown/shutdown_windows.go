//go:build windows

package shutdown

import (
	"os"
	"os/signal"
)

// Notify subscribes ch to the interrupt signal; Windows has no SIGTERM
// equivalent delivered to console programs.
func Notify(ch chan os.Signal) {
	signal.Notify(ch, os.Interrupt)
}

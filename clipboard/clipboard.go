// Package clipboard wraps the system clipboard for the copy-contact
// actions in the TUI.
package clipboard

import cb "github.com/atotto/clipboard"

func Copy(text string) error {
	return cb.WriteAll(text)
}

func Read() (string, error) {
	return cb.ReadAll()
}

// Available reports whether a clipboard backend is usable on this system.
func Available() bool {
	return !cb.Unsupported
}

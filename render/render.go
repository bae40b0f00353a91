// Package render turns project markdown into styled terminal output,
// caching rendered pages so reopening a project or flipping between
// sections never re-runs the renderer.
package render

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 64

// Cache memoizes glamour renders keyed by (document key, wrap width).
// Resizing the terminal changes the width component, so stale layouts
// simply age out of the LRU.
type Cache struct {
	theme   string
	entries *lru.Cache[string, string]
}

// NewCache builds a render cache. theme is a glamour style name ("dark",
// "light", "notty") or "auto"/empty for background detection.
func NewCache(theme string) (*Cache, error) {
	entries, err := lru.New[string, string](defaultCacheSize)
	if err != nil {
		return nil, err
	}
	return &Cache{theme: theme, entries: entries}, nil
}

// Markdown renders src wrapped to width, reusing a cached render for the
// same key and width when available.
func (c *Cache) Markdown(key, src string, width int) (string, error) {
	if width < 10 {
		width = 10
	}
	cacheKey := fmt.Sprintf("%s|%d", key, width)
	if out, ok := c.entries.Get(cacheKey); ok {
		return out, nil
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch c.theme {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(c.theme))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(src)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}

	c.entries.Add(cacheKey, out)
	return out, nil
}

// Len reports how many rendered pages are cached.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached render.
func (c *Cache) Purge() {
	c.entries.Purge()
}

// SPDX-License-Identifier: MIT

package ingest

import (
	"fmt"
	"log/slog"
	"strings"
)

// Layout tells which axis of the sheet holds students.
type Layout int

const (
	// Auto picks Standard or Transposed from the sheet's shape.
	Auto Layout = iota
	// Standard has problems across the header and one student per row.
	Standard
	// Transposed has students across the header and one problem per row.
	Transposed
)

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case Auto:
		return "auto"
	case Standard:
		return "standard"
	case Transposed:
		return "transposed"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout maps "auto" (or ""), "standard" and "transposed" to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "standard":
		return Standard, nil
	case "transposed":
		return Transposed, nil
	default:
		return Auto, fmt.Errorf("ParseLayout(%q): %w", s, ErrUnknownLayout)
	}
}

// Auto-detection bounds for Transposed.
const (
	TransposedMinHeader = 100 // header entries must exceed this
	TransposedMaxRows   = 30  // data rows must stay below this
)

// Option configures ParseCSV and ReadXLSX.
type Option func(*config)

type config struct {
	layout Layout
	logger *slog.Logger
}

func newConfig(opts ...Option) config {
	c := config{layout: Auto, logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// WithLayout forces a layout instead of auto-detection.
// Panics on an unknown Layout value.
func WithLayout(l Layout) Option {
	if l < Auto || l > Transposed {
		panic("ingest: WithLayout: unknown layout")
	}

	return func(c *config) { c.layout = l }
}

// WithLogger sets the logger used for debug output; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

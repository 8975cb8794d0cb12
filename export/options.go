// SPDX-License-Identifier: MIT

package export

import (
	"log/slog"
	"time"
)

// Option configures the writers.
type Option func(*options)

type options struct {
	bom    bool
	now    func() time.Time
	logger *slog.Logger
}

func newOptions(opts ...Option) options {
	o := options{now: time.Now, logger: slog.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithBOM prefixes CSV output with a UTF-8 byte order mark.
func WithBOM(on bool) Option { return func(o *options) { o.bom = on } }

// WithClock fixes the export timestamp written by WriteJSON.
// Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("export: WithClock(nil)")
	}

	return func(o *options) { o.now = now }
}

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

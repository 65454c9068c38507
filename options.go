package circuitcode

import (
	"context"
	"log/slog"
)

// Option customizes a single Encode or Decode call.
type Option func(*Options)

// Options holds per-call settings.
type Options struct {
	// Ctx allows cancellation between panels and variants.
	Ctx context.Context

	// Logger overrides the package-wide logger for this call.
	Logger *slog.Logger

	// Sequential renders the three variants one after another instead of
	// in parallel. Output is identical either way.
	Sequential bool
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - the package-wide Logger()
//   - parallel variant rendering
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: Logger(),
	}
}

// WithContext sets a context checked between panels and variants.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes this call's logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSequential disables parallel variant rendering.
func WithSequential() Option {
	return func(o *Options) {
		o.Sequential = true
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

package relmap

import "log/slog"

type options struct {
	logger   *slog.Logger
	capacity int
}

// Option configures a Stash at construction time.
type Option func(*options)

// WithLogger configures the logger used to report build statistics.
//
// If nil is passed, logging is disabled (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		o.logger = logger
	}
}

// WithCapacity pre-sizes the stash for the expected number of edges,
// avoiding reallocation during accumulation. A hint, not a limit.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

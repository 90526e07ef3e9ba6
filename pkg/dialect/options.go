package dialect

import "log/slog"

// Option configures a Registry.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

func defaultOptions() *options {
	return &options{
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger sets a logger for the registry. Resolution cache misses are
// logged at debug level; the registry is silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

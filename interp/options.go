package interp

import "log/slog"

// Option configures an Interpreter during creation.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	progress func(done, total int)
}

func defaultOptions() options {
	return options{
		logger: slog.New(nopHandler{}),
	}
}

// WithLogger sets the logger. Configuration is logged at Info and every
// command at Debug.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithProgress sets a function called after each successful command with
// the number of commands done and the total.
func WithProgress(fn func(done, total int)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

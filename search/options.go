package search

import "github.com/rs/zerolog"

// Options configures a LocalSearch engine.
//
// Logger – structured debug logger for Schedule/Unschedule/Move decisions.
// Disabled by default (zerolog.Nop()); enable with WithLogger to trace the
// constructive pass or a repair loop.
type Options struct {
	Logger zerolog.Logger
}

// Option represents a functional option for configuring a LocalSearch.
type Option func(*Options)

// WithLogger attaches a zerolog.Logger that LocalSearch uses for debug-level
// tracing of Schedule, Unschedule and Move decisions. The default is
// zerolog.Nop(), which discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func defaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

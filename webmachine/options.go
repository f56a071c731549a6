package webmachine

import (
	"log/slog"
	"time"

	"github.com/gofrack/webmachine/wmlog"
)

// Option configures a Dispatcher. See WithLogger, WithClock, and
// WithTransitionLimit.
type Option interface {
	apply(*Options)
}

// Options holds the resolved configuration for a Dispatcher; New applies
// every Option over the defaults below.
type Options struct {
	Logger          *slog.Logger
	Clock           func() time.Time
	TransitionLimit int
}

func defaultOptions() Options {
	return Options{
		Logger:          wmlog.Console(),
		Clock:           time.Now,
		TransitionLimit: 100,
	}
}

type optionFunc func(*Options)

func (f optionFunc) apply(o *Options) { f(o) }

// WithLogger overrides the logger used for transition traces and
// resource-panic warnings. Default: wmlog.Console().
func WithLogger(logger *slog.Logger) Option {
	return optionFunc(func(o *Options) { o.Logger = logger })
}

// WithClock overrides the time source used for the "is this date in the
// future" check (L15). Default: time.Now.
func WithClock(clock func() time.Time) Option {
	return optionFunc(func(o *Options) { o.Clock = clock })
}

// WithTransitionLimit overrides the maximum number of decision-graph
// transitions before a request is aborted with wmerrors.ErrTransitionLimitExceeded.
// Default: 100.
func WithTransitionLimit(limit int) Option {
	return optionFunc(func(o *Options) { o.TransitionLimit = limit })
}

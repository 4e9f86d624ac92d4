package search

import (
	"context"
	"errors"
	"fmt"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("search: invalid option supplied")

// Option configures a solver invocation via functional arguments.
type Option func(*Options)

// Options holds the parameters common to every solver entry point.
// MaxDepth is honored only by dfs.Solve.
type Options struct {
	Ctx      context.Context
	Progress ProgressFunc
	MaxDepth int

	err error
}

// DefaultOptions returns background context, a no-op progress
// callback, and no depth bound.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Progress: func(Metrics) {},
		MaxDepth: 0,
	}
}

// Build applies opts over DefaultOptions and surfaces any recorded
// option error.
func Build(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

// WithContext sets the cancellation context for the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithProgress registers a callback invoked every ProgressInterval
// expansions and once more on termination.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Progress = fn
		}
	}
}

// WithMaxDepth bounds dfs.Solve's expansion depth. d == 0 means
// unbounded; d < 0 is an option violation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// SPDX-License-Identifier: MIT
// Package: lvtree/batch
//
// types.go — options and errors.

package batch

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("batch: invalid option supplied")
)

// Option configures a batch operation. An invalid Option is recorded and
// surfaced as ErrOptionViolation when the operation runs.
type Option func(*Options)

// Options holds the resolved configuration of one batch operation.
type Options struct {
	// Workers bounds the number of engine calls in flight.
	Workers int

	// Logger receives debug records for operation and task progress.
	Logger *slog.Logger

	// OnProgress, if set, is called after every finished task with the number
	// of finished tasks and the total. Calls are serialized.
	OnProgress func(done, total int)

	err error
}

// DefaultOptions returns GOMAXPROCS workers, slog.Default() and no progress
// hook.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.Default(),
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// WithWorkers sets the concurrency limit; n < 1 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger replaces the logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithProgress registers a progress hook.
func WithProgress(fn func(done, total int)) Option {
	return func(o *Options) {
		o.OnProgress = fn
	}
}

// SPDX-License-Identifier: MIT
// Package: graphstat/parallel
//
// options.go - pool options and sentinel errors for partitioned passes.

package parallel

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for parallel passes.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("parallel: invalid option supplied")

	// ErrWorkerPanic wraps a panic recovered inside a partition task.
	ErrWorkerPanic = errors.New("parallel: worker panicked")

	// ErrPassFailed wraps the joined errors of every failed partition.
	ErrPassFailed = errors.New("parallel: pass failed")
)

// partitionsPerWorker oversubscribes partitions so uneven degree
// distributions still balance across workers.
const partitionsPerWorker = 4

// Option configures a parallel pass via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// pass is invoked.
type Option func(*Options)

// Options holds the resolved pool configuration.
type Options struct {
	// Workers is the maximum number of concurrently running partitions.
	Workers int

	// Partitions is the number of chunks the node list is split into.
	// Zero means partitionsPerWorker × Workers.
	Partitions int

	err error
}

// DefaultOptions returns Options sized from the available hardware threads.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers limits the pool to n goroutines (n ≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithPartitions fixes the number of chunks (n ≥ 1).
func WithPartitions(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: partitions must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Partitions = n
	}
}

// Resolve applies opts over DefaultOptions and fills derived defaults.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if o.Partitions == 0 {
		o.Partitions = partitionsPerWorker * o.Workers
	}

	return o, nil
}

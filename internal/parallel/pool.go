// Package parallel provides bounded-concurrency fan-out for running
// multiple independent optimizer workers and collecting their errors.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool bounds how many optimizer workers run at once. It is adapted
// from a hand-rolled task-channel worker pool into a thin wrapper over
// errgroup, trading the original's manual WaitGroup-and-error-channel
// bookkeeping for errgroup's built-in cancel-on-first-error semantics.
type Pool struct {
	sem chan struct{}
}

// NewPool creates a pool that runs at most maxWorkers functions
// concurrently. maxWorkers <= 0 defaults to the number of CPU cores.
func NewPool(maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}
	return &Pool{sem: make(chan struct{}, maxWorkers)}
}

// Go runs every fn with bounded concurrency. It waits for all of them
// to finish and returns the first non-nil error, if any; the context
// passed to each fn is cancelled as soon as one fn returns an error,
// so siblings still running can stop early.
func (p *Pool) Go(ctx context.Context, fns []func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fn := range fns {
		fn := fn
		select {
		case p.sem <- struct{}{}:
		case <-gctx.Done():
			return g.Wait()
		}
		g.Go(func() error {
			defer func() { <-p.sem }()
			return fn(gctx)
		})
	}
	return g.Wait()
}

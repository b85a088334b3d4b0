package wedelin

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gitrdm/baryonyx/internal/parallel"
	"github.com/gitrdm/baryonyx/pkg/lp"
)

// OptimizeOptions configures the parallel optimizer (component C7).
type OptimizeOptions struct {
	// CheckpointDir, when non-empty, receives one temp-<worker>.sol
	// file per worker, written once when that worker finishes and
	// holding its best result; intermediate improvements are not
	// written.
	CheckpointDir string
}

// Optimize runs Params.Threads independent annealing workers, each
// seeded from its own PRNG stream derived from the base seed, and
// returns the best result across all of them — the best-of reduction
// grounded on the per-thread checkpoint loop in the reference
// implementation's Zcoeff source.
func Optimize(pb *lp.Problem, params Params, logger Logger, opts OptimizeOptions) (Result, error) {
	if logger == nil {
		logger = NopLogger()
	}

	threads := params.Threads
	if threads <= 0 {
		threads = 1
	}

	runID := uuid.New().String()
	pool := parallel.NewPool(threads)
	baseSeed := resolveSeed(params)
	sense := SenseFromLP(pb.Sense)

	results := make([]Result, threads)
	fns := make([]func(ctx context.Context) error, threads)
	for w := 0; w < threads; w++ {
		w := w
		fns[w] = func(ctx context.Context) error {
			res, err := runWorker(pb, params, logger, sense, baseSeed, w)
			results[w] = res
			if err != nil {
				return err
			}

			if opts.CheckpointDir != "" {
				if werr := writeCheckpoint(opts.CheckpointDir, runID, w, res); werr != nil {
					logger.Warnw("checkpoint write failed", "worker", w, "error", werr)
				}
			}
			return nil
		}
	}

	if err := pool.Go(context.Background(), fns); err != nil {
		return Result{}, err
	}

	best := results[0]
	for _, r := range results[1:] {
		if betterThan(r, best, sense) {
			best = r
		}
	}

	logger.Infow("optimize finished",
		"run", runID, "workers", threads, "best_status", best.Status.String(), "best_objective", best.Objective)
	return best, nil
}

// runWorker drives one optimizer worker's attempts: each attempt is a
// full Solve, bounded by whatever of the global Params.TimeLimit
// remains. A worker that exhausts an attempt's per-run limits without
// reaching feasibility reinitializes from its own running best-x and
// tries again, matching optimize_functor::operator()'s
// "slv.reinit(m_best_x, ...); continue;" loop, until it reaches
// feasibility or the shared deadline passes. With no TimeLimit
// configured there is no shared deadline to bound retries against, so
// the worker makes a single attempt.
func runWorker(pb *lp.Problem, params Params, logger Logger, sense Sense, baseSeed int64, w int) (Result, error) {
	var deadline time.Time
	if params.TimeLimit > 0 {
		deadline = time.Now().Add(params.TimeLimit)
	}

	attemptParams := params
	attemptParams.Seed = baseSeed + int64(w)
	attemptParams.HasSeed = true

	var best Result
	var bestX []int
	attempt := 0

	for {
		if !deadline.IsZero() {
			remaining := time.Until(deadline)
			if remaining <= 0 {
				break
			}
			attemptParams.TimeLimit = remaining
		}

		res, err := solveFrom(pb, attemptParams, logger, bestX)
		if err != nil {
			return res, err
		}

		if attempt == 0 || betterThan(res, best, sense) {
			best = res
			bestX = append([]int(nil), res.VariableValue...)
		}

		if res.Feasible() || deadline.IsZero() {
			break
		}

		attempt++
		logger.Debugw("worker reinitializing from running best",
			"worker", w, "attempt", attempt, "status", res.Status.String())
		attemptParams.InitPolicy = InitBest
		attemptParams.Seed = baseSeed + int64(w) + int64(attempt)*1000003
	}

	return best, nil
}

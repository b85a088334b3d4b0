package wedelin

import (
	"math"
	"math/rand"
	"time"

	"github.com/gitrdm/baryonyx/pkg/lp"
)

// Solve runs the single-worker κ-annealing loop of component C5 to
// completion, grounded on inequalities_1coeff::run: preprocess the
// textual problem into merged constraints, seed an initial assignment,
// then alternate row sweeps with κ growth until one of the loop's
// terminal conditions fires.
func Solve(pb *lp.Problem, params Params, logger Logger) (Result, error) {
	return solveFrom(pb, params, logger, nil)
}

// solveFrom is Solve generalized with an optional seed assignment for
// an InitBest policy: the optimizer's per-worker reinit loop (component
// C7) calls this directly so a worker that fails to reach feasibility
// can restart from its own running best-x instead of from scratch.
func solveFrom(pb *lp.Problem, params Params, logger Logger, bestX []int) (Result, error) {
	if logger == nil {
		logger = NopLogger()
	}

	start := time.Now()

	merged, removed := MergeConstraints(pb.Constraints)
	for _, mc := range merged {
		if mc.Min > mc.Max {
			return Result{
				Status:      StatusInfeasiblePreprocess,
				Constraints: len(merged),
				Variables:   pb.NumVariables(),
				Duration:    time.Since(start),
			}, ErrInfeasiblePreprocess
		}
	}
	logger.Infow("preprocessed constraints",
		"original", len(pb.Constraints), "merged", len(merged), "removed", removed)

	prob := NewProblem(pb, merged)
	rng := rand.New(rand.NewSource(resolveSeed(params)))
	NormalizeCosts(prob.Cost, params.Norm, rng)

	state := NewState(prob.M, prob.N)
	seedInitial(prob, state, params, rng, bestX)

	return runAnnealing(prob, state, params, rng, logger, start)
}

// resolveSeed picks the caller's seed when one was supplied, otherwise
// a time-derived one so two unseeded runs do not retrace each other.
func resolveSeed(params Params) int64 {
	if params.HasSeed {
		return params.Seed
	}
	return time.Now().UnixNano()
}

func seedInitial(prob *Problem, state *State, params Params, rng *rand.Rand, best []int) {
	switch params.InitPolicy {
	case InitRandom:
		seedRandom(prob, state.X, params.InitRandom, rng)
	case InitBest:
		seedBest(prob, state.X, best, params.InitRandom, rng)
	default:
		seedBastert(prob, state.X, prob.Sense, params.InitRandom, rng)
	}
}

// runAnnealing is the outer loop: build R, sweep it with the row
// kernel, grow κ every W sweeps, and, while R stays empty, run one push
// sweep every PushingIterationLimit rounds until PushesLimit pushes are
// used or a terminal status fires.
func runAnnealing(prob *Problem, state *State, params Params, rng *rand.Rand, logger Logger, start time.Time) (Result, error) {
	ru := newRowUpdater(prob, rng)
	kappa := params.KappaMin

	var best *Result
	var pushesUsed int64
	var successfulSweeps int64
	var loop int64

	for {
		buildViolatedRows(prob, state, params.Order, rng)

		if len(state.R) == 0 {
			// feasibility reached this sweep: this round always reports
			// success, even if κ/limit/time crossed their terminal
			// thresholds during the sweep that got us here — mirroring
			// the "pushed>=0" guard in the original, which never lets a
			// terminal status overwrite success found in the same
			// round.
			current := snapshotResult(prob, state, StatusSuccess, loop, start)
			if best == nil || betterThan(current, *best, prob.Sense) {
				best = &current
			}

			if params.PushesLimit <= 0 || pushesUsed >= params.PushesLimit {
				return *best, nil
			}

			successfulSweeps++
			if successfulSweeps >= params.PushingIterationLimit {
				successfulSweeps = 0
				pushesUsed++
				logger.Debugw("entering push phase", "push", pushesUsed, "loop", loop)
				runPush(prob, state, ru, kappa, params, rng, logger)
			}

			loop++
			continue
		}

		successfulSweeps = 0

		// terminal conditions are checked here, against this round's R
		// (already confirmed non-empty above), before the sweep that
		// might reach feasibility runs. If κ only crosses KappaMax as a
		// result of *this* sweep's growth, that growth is not visible
		// until the next round's buildViolatedRows call — and if that
		// call finds R empty, the success branch above returns without
		// ever re-checking κ, so a round that reaches feasibility can
		// never be overwritten by a terminal status from growth that
		// happened on its way there (specification §8).
		if params.Limit > 0 && loop >= params.Limit {
			return finalize(prob, state, StatusLimitReached, loop, start, best), nil
		}
		if params.TimeLimit > 0 && time.Since(start) >= params.TimeLimit {
			return finalize(prob, state, StatusTimeLimitReached, loop, start, best), nil
		}
		if kappa >= params.KappaMax {
			return finalize(prob, state, StatusKappaMaxReached, loop, start, best), nil
		}

		for _, k := range state.R {
			if err := ru.updateRow(state, k, kappa, params.Delta, params.Theta, 0); err != nil {
				return finalize(prob, state, StatusLimitReached, loop, start, best), err
			}
		}

		loop++
		if params.W > 0 && loop%params.W == 0 {
			kappa += params.KappaStep * math.Pow(float64(len(state.R))/float64(prob.M), params.Alpha)
		}
	}
}

func snapshotResult(prob *Problem, state *State, status Status, loop int64, start time.Time) Result {
	return Result{
		Status:               status,
		Objective:            prob.ObjectiveValue(state.X),
		VariableValue:        append([]int(nil), state.X...),
		VariableName:         prob.VariableNames,
		RemainingConstraints: prob.RemainingViolations(state.X),
		Loop:                 int(loop),
		Duration:             time.Since(start),
		Method:               "wedelin",
		Constraints:          prob.M,
		Variables:            prob.N,
		DualBound:            ComputeBounds(prob, state.Pi).Value,
	}
}

// finalize produces the result returned on a terminal condition: if a
// feasible point was already captured and is at least as good as the
// current (possibly infeasible) state, it wins, relabeled with the
// terminal status and final timing.
func finalize(prob *Problem, state *State, status Status, loop int64, start time.Time, best *Result) Result {
	current := snapshotResult(prob, state, status, loop, start)
	if best != nil && betterThan(*best, current, prob.Sense) {
		res := *best
		res.Status = status
		res.Duration = time.Since(start)
		res.Loop = int(loop)
		return res
	}
	return current
}

package wedelin

import "math/rand"

// State is the mutable per-worker solve state of the specification's
// data model: x, π, plus the violated-row list R computed fresh each
// sweep by the constraint-order policy. A State is owned by exactly
// one solve run for its lifetime (specification §3 "Ownership &
// lifecycle"); each optimizer worker attempt constructs its own
// independent State.
type State struct {
	X  []int     // current assignment, length n
	Pi []float64 // shadow price accumulator, length m

	R []int // indices of rows violated in the current sweep
}

// NewState allocates a zeroed state for a problem of the given shape.
func NewState(m, n int) *State {
	return &State{
		X:  make([]int, n),
		Pi: make([]float64, m),
	}
}

// seedBastert implements the "bastert" init policy: x_j = U[j] iff
// c_j < 0 when minimizing (c_j > 0 when maximizing), otherwise 0, with
// an exact tie at c_j == 0 broken by a Bernoulli draw at probability
// initRandom.
func seedBastert(prob *Problem, x []int, sense Sense, initRandom float64, rng *rand.Rand) {
	for j, c := range prob.Cost {
		tie := rng.Float64() < initRandom
		if sense.initialAssignment(c, tie) {
			x[j] = prob.U[j]
		} else {
			x[j] = 0
		}
	}
}

// seedRandom implements the "random" init policy: every variable is
// independently Bernoulli(initRandom).
func seedRandom(prob *Problem, x []int, initRandom float64, rng *rand.Rand) {
	for j := range x {
		if rng.Float64() < initRandom {
			x[j] = prob.U[j]
		} else {
			x[j] = 0
		}
	}
}

// seedBest implements the "best" init policy: mix a Bernoulli draw
// with the optimizer's best-seen assignment so a reinitializing
// worker can explore near a known-good point.
func seedBest(prob *Problem, x []int, best []int, initRandom float64, rng *rand.Rand) {
	for j := range x {
		if best != nil && rng.Float64() >= initRandom {
			x[j] = best[j]
		} else if rng.Float64() < initRandom {
			x[j] = prob.U[j]
		} else {
			x[j] = 0
		}
	}
}

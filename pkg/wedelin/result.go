package wedelin

import "time"

// Result is the outcome of a solve or optimize run: the status, the
// objective value (meaningful only on success), the variable
// assignment, and bookkeeping useful for reporting and for comparing
// candidate solutions.
type Result struct {
	Status               Status
	Objective            float64
	VariableValue        []int
	VariableName         []string
	RemainingConstraints int
	Loop                 int
	Duration             time.Duration
	Method               string
	Constraints          int
	Variables            int

	// DualBound is the Lagrangian bound (component C9) derived from
	// the shadow-price vector at the time this result was captured:
	// a valid lower bound on the optimum for a minimize problem, an
	// upper bound for a maximize one.
	DualBound float64
}

// Feasible reports whether this result satisfies every constraint,
// i.e. whether it is safe to compare its Objective against another
// feasible result.
func (r Result) Feasible() bool {
	return r.RemainingConstraints == 0
}

// betterThan reports whether r is a better candidate than other under
// the given sense, applying invariant 4 of the testable properties:
// feasibility dominates objective value, and objective value only
// matters when both sides are feasible.
func betterThan(r, other Result, sense Sense) bool {
	rFeasible := r.Feasible()
	otherFeasible := other.Feasible()

	if rFeasible != otherFeasible {
		return rFeasible
	}
	if rFeasible {
		return sense.IsBetter(r.Objective, other.Objective)
	}
	return r.RemainingConstraints < other.RemainingConstraints
}

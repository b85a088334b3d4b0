package wedelin

import "math"

// Bounds is the Lagrangian lower/upper estimate component C9 derives
// from the shadow-price vector: b⁻ for a minimize problem is a valid
// lower bound on the optimum, b⁺ for a maximize problem is a valid
// upper bound, accumulated from π and the sense-appropriate side of
// each row's [min, max] window (there is no single original-source
// function this is lifted from; it is reconstructed from the dual
// accumulation pattern the row-update kernel already performs one row
// at a time).
type Bounds struct {
	Sense Sense
	Value float64
}

// ComputeBounds accumulates Σ_k π[k]·BoundRHS(B[k]) over every row —
// the dual objective value associated with the current shadow prices
// — plus, per variable, the sense-clamped Lagrangian reduced cost
// c_j − Σ_h |A[h,j]|·π_h (specification §4.9): a variable can only
// tighten the bound in the direction its sense allows, so the
// contribution is clamped to zero on the other side.
func ComputeBounds(prob *Problem, pi []float64) Bounds {
	var v float64
	for k := 0; k < prob.M; k++ {
		rhs := prob.Sense.BoundRHS(prob.B[k].Min, prob.B[k].Max)
		v += pi[k] * float64(rhs)
	}

	ap := prob.AP
	for j := 0; j < prob.N; j++ {
		var weighted float64
		for _, slot := range ap.ColSlots(j) {
			weighted += math.Abs(float64(ap.A[slot])) * pi[ap.RowOf(slot)]
		}
		v += clampBySense(prob.Sense, prob.Cost[j]-weighted)
	}

	return Bounds{Sense: prob.Sense, Value: v}
}

// clampBySense keeps only the half of the variable-wise contribution
// that can legally improve a bound for the given sense: minimize needs
// a lower bound, so only a negative contribution counts; maximize
// needs an upper bound, so only a positive one does.
func clampBySense(sense Sense, term float64) float64 {
	if sense == Maximize {
		if term > 0 {
			return term
		}
		return 0
	}
	if term < 0 {
		return term
	}
	return 0
}

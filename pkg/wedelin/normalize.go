package wedelin

import (
	"math"
	"math/rand"
)

// NormalizeCosts rewrites cost in place under the selected strategy
// (component C8). NormNone leaves cost untouched; the others divide
// every entry by a norm computed over the whole vector so the
// annealing loop's kappa-step behaves consistently across problems of
// different objective scale.
//
// NormL2 divides by the Euclidean norm (the square root of the sum of
// squares): the reference source's normalize_costs divides by the raw
// sum of squares without taking its square root, which does not match
// an L2 norm by definition; this implementation follows the
// specification's literal "c' = c / ‖c‖₂" instead of reproducing that
// mismatch.
func NormalizeCosts(cost []float64, norm Norm, rng *rand.Rand) {
	switch norm {
	case NormNone:
		return
	case NormL1:
		divideBy(cost, sumAbs(cost))
	case NormL2:
		divideBy(cost, math.Sqrt(sumSquares(cost)))
	case NormInf:
		divideBy(cost, maxAbs(cost))
	case NormRng:
		rngNormalize(cost, rng)
	}
}

func sumAbs(cost []float64) float64 {
	var s float64
	for _, c := range cost {
		if c < 0 {
			s -= c
		} else {
			s += c
		}
	}
	return s
}

func sumSquares(cost []float64) float64 {
	var s float64
	for _, c := range cost {
		s += c * c
	}
	return s
}

func maxAbs(cost []float64) float64 {
	var m float64
	for _, c := range cost {
		a := c
		if a < 0 {
			a = -a
		}
		if a > m {
			m = a
		}
	}
	return m
}

func divideBy(cost []float64, div float64) {
	if div == 0 || math.IsInf(div, 0) || math.IsNaN(div) {
		return
	}
	for i := range cost {
		cost[i] /= div
	}
}

// rngNormalize implements the "rng" strategy: a small per-coefficient
// jitter is added before dividing by the resulting infinity norm, so
// two equal-cost variables no longer tie exactly and the row-update
// kernel's sorted scan breaks ties on the objective itself rather than
// always falling back to the random shuffle.
func rngNormalize(cost []float64, rng *rand.Rand) {
	if len(cost) == 0 {
		return
	}
	const jitter = 1e-9
	for i := range cost {
		cost[i] += jitter * (rng.Float64()*2 - 1)
	}
	divideBy(cost, maxAbs(cost))
}

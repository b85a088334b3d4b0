package wedelin

import (
	"github.com/gitrdm/baryonyx/pkg/lp"
)

// Bound is a merged constraint's [min, max] window, the b vector of
// the specification's state model.
type Bound struct {
	Min, Max int
}

// Problem is the solver-ready form of an lp.Problem: the paired
// sparse AP matrix built over the merged constraints, the per-row
// bounds, the per-variable upper bounds, and the per-row bookkeeping
// (Z, C) the row-update kernel needs.
type Problem struct {
	Sense Sense

	Cost    []float64 // objective coefficients the row kernel uses, length n; normalized in place by solveFrom
	RawCost []float64 // objective coefficients as given, length n

	M, N int

	AP *AP
	B  []Bound // length m

	U []int // per-variable upper bound, length n

	Z []bool  // Z[k]: row k has a coefficient with |A| > 1
	C [][]int // C[k]: slot ids of row k's negative-coefficient cells

	VariableNames []string
}

// NewProblem builds the solver-ready Problem from the original
// textual problem and its merged constraints.
func NewProblem(pb *lp.Problem, merged []MergedConstraint) *Problem {
	m := len(merged)
	n := pb.NumVariables()

	var positions [][2]int
	for k, mc := range merged {
		for _, e := range mc.Elements {
			positions = append(positions, [2]int{k, e.Var})
		}
	}

	ap := NewAP(m, n, positions)
	for k, mc := range merged {
		for _, e := range mc.Elements {
			slot, ok := ap.At(k, e.Var)
			if !ok {
				continue
			}
			ap.A[slot] = e.Coeff
		}
	}

	cost := make([]float64, n)
	copy(cost, pb.Objective.Coefficients)

	u := make([]int, n)
	names := make([]string, n)
	for j, v := range pb.Variables {
		_, hi := v.Domain()
		u[j] = hi
		names[j] = pb.VariableName(j)
	}

	b := make([]Bound, m)
	z := make([]bool, m)
	c := make([][]int, m)
	for k, mc := range merged {
		b[k] = Bound{Min: mc.Min, Max: mc.Max}
		for _, slot := range ap.RowSlots(k) {
			if abs(ap.A[slot]) > 1 {
				z[k] = true
			}
			if ap.A[slot] < 0 {
				c[k] = append(c[k], slot)
			}
		}
	}

	return &Problem{
		Sense:         SenseFromLP(pb.Sense),
		Cost:          cost,
		RawCost:       append([]float64(nil), cost...),
		M:             m,
		N:             n,
		AP:            ap,
		B:             b,
		U:             u,
		Z:             z,
		C:             c,
		VariableNames: names,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ObjectiveValue computes cᵀx for the given assignment using the raw
// (un-normalized) cost vector.
func (p *Problem) ObjectiveValue(x []int) float64 {
	var v float64
	for j, c := range p.RawCost {
		v += c * float64(x[j])
	}
	return v
}

// RemainingViolations returns the number of rows k for which
// Σ_j A[k,j] x[j] falls outside [B[k].Min, B[k].Max] — the |R| of
// invariant 3 of the testable properties.
func (p *Problem) RemainingViolations(x []int) int {
	count := 0
	for k := 0; k < p.M; k++ {
		v := p.AP.RowValue(k, x)
		if v < p.B[k].Min || v > p.B[k].Max {
			count++
		}
	}
	return count
}

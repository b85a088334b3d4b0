package wedelin

import "math/rand"

// buildViolatedRows fills state.R with the indices of every row
// currently outside its [min, max] window, in the order component C4
// prescribes for the given policy. A fresh R is computed at the start
// of every sweep (specification §4.4).
func buildViolatedRows(prob *Problem, state *State, order ConstraintOrder, rng *rand.Rand) {
	state.R = state.R[:0]
	for k := 0; k < prob.M; k++ {
		v := prob.AP.RowValue(k, state.X)
		if v < prob.B[k].Min || v > prob.B[k].Max {
			state.R = append(state.R, k)
		}
	}

	switch order {
	case OrderNone:
		// natural row order, nothing to do.
	case OrderReversing:
		reverseInts(state.R)
	case OrderRandom:
		rng.Shuffle(len(state.R), func(i, j int) {
			state.R[i], state.R[j] = state.R[j], state.R[i]
		})
	case OrderInfeasibilityDecr:
		sortByInfeasibility(prob, state, true)
	case OrderInfeasibilityIncr:
		sortByInfeasibility(prob, state, false)
	}
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// infeasibility is a row's distance outside its [min, max] window: 0
// when the row is satisfied, otherwise how far the current row value
// sits past the nearer bound.
func infeasibility(prob *Problem, x []int, k int) int {
	v := prob.AP.RowValue(k, x)
	b := prob.B[k]
	switch {
	case v < b.Min:
		return b.Min - v
	case v > b.Max:
		return v - b.Max
	default:
		return 0
	}
}

// sortByInfeasibility orders state.R by each row's infeasibility,
// decreasing or increasing. Adjacent rows of exactly equal
// infeasibility swap their row indices rather than keep stable
// insertion order: the reference implementation's tie-break has a
// known defect that swaps the wrong pair (the two reduced-cost values
// of the *same* row's tie position) instead of the two tied rows'
// identities, which this corrected version fixes by exchanging the
// row indices themselves.
func sortByInfeasibility(prob *Problem, state *State, decreasing bool) {
	r := state.R
	less := func(i, j int) bool {
		ii, ij := infeasibility(prob, state.X, r[i]), infeasibility(prob, state.X, r[j])
		if decreasing {
			return ii > ij
		}
		return ii < ij
	}

	// insertion sort: rows are few compared to variables, and this
	// keeps the corrected equal-magnitude swap explicit rather than
	// buried inside a library comparator.
	for i := 1; i < len(r); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			r[j], r[j-1] = r[j-1], r[j]
		}
	}

	for i := 0; i+1 < len(r); i++ {
		if infeasibility(prob, state.X, r[i]) == infeasibility(prob, state.X, r[i+1]) {
			r[i], r[i+1] = r[i+1], r[i]
		}
	}
}

package wedelin

import "math"

// applyKnapsack runs component C3's general-ℤ path: rows with a
// coefficient of magnitude greater than one cannot use the unit prefix
// scan, since including one more variable can move the row sum by more
// than one unit at a time. It dispatches to a bounded 0/1 knapsack DP
// over the row's (reduced cost, |coefficient|) pairs, capacity
// [bMin, bMax], picking the selection that is most favorable under the
// row's sense — grounded on the branch-and-bound sub-solver the push
// phase in inequalities-Zcoeff.cpp falls back to for multi-unit rows.
//
// The DP works in a single signed direction (always minimizing a
// signed score) so the same code serves both senses: for Minimize the
// score is the reduced cost itself, for Maximize it is its negation,
// since in both cases the prefix scan's invariant is "include the most
// favorable items first" and Sense.Less already encodes which
// direction that is.
func (ru *rowUpdater) applyKnapsack(state *State, r []rItem, bMin, bMax int, kappa, delta float64) (float64, error) {
	n := len(r)
	sign := 1.0
	if ru.prob.Sense == Maximize {
		sign = -1.0
	}

	weights := make([]int, n)
	maxWeight := 0
	for i, item := range r {
		w := ru.prob.AP.A[item.slot]
		if w < 0 {
			w = -w
		}
		weights[i] = w
		maxWeight += w
	}

	capMax := bMax
	if capMax > maxWeight {
		capMax = maxWeight
	}
	capMin := bMin
	if capMin < 0 {
		capMin = 0
	}
	if capMin > capMax {
		return 0, ErrUnrealisableRow
	}

	const inf = math.MaxFloat64 / 2

	dp := make([][]float64, n+1)
	dp[0] = make([]float64, maxWeight+1)
	for w := 1; w <= maxWeight; w++ {
		dp[0][w] = inf
	}

	for i := 0; i < n; i++ {
		dp[i+1] = make([]float64, maxWeight+1)
		copy(dp[i+1], dp[i])

		v := sign * r[i].value
		w := weights[i]
		for total := maxWeight; total >= w; total-- {
			if dp[i][total-w] == inf {
				continue
			}
			cand := dp[i][total-w] + v
			if cand < dp[i+1][total] {
				dp[i+1][total] = cand
			}
		}
	}

	bestTotal, bestScore := -1, inf
	for total := capMin; total <= capMax; total++ {
		if dp[n][total] < bestScore {
			bestScore = dp[n][total]
			bestTotal = total
		}
	}
	if bestTotal == -1 {
		return 0, ErrUnrealisableRow
	}

	include := make([]bool, n)
	total := bestTotal
	for i := n; i > 0; i-- {
		if dp[i][total] != dp[i-1][total] {
			include[i-1] = true
			total -= weights[i-1]
		}
	}

	return ru.assignKnapsackSelection(state, r, include, kappa, delta), nil
}

// assignKnapsackSelection writes x and P from a (possibly
// non-contiguous) knapsack selection, then derives the same two
// boundary reduced-cost values the unit-path prefix scan would have
// produced: the largest value among included items and the smallest
// among excluded ones, so the π/P update formula (specification §4.3
// step 5) generalizes unchanged to rows that are not simple prefixes.
func (ru *rowUpdater) assignKnapsackSelection(state *State, r []rItem, include []bool, kappa, delta float64) float64 {
	ap := ru.prob.AP

	haveFirst, haveSecond := false, false
	var first, second float64

	for i, item := range r {
		if include[i] {
			state.X[item.j] = ru.prob.U[item.j]
			if !haveFirst || ru.prob.Sense.Less(first, item.value) {
				first = item.value
				haveFirst = true
			}
		} else {
			state.X[item.j] = 0
			if !haveSecond || ru.prob.Sense.Less(item.value, second) {
				second = item.value
				haveSecond = true
			}
		}
	}

	if !haveFirst {
		first = second
	}
	if !haveSecond {
		second = first
	}

	piDelta := (first + second) / 2
	d := delta + (kappa/(1-kappa))*(second-first)

	for i, item := range r {
		if include[i] {
			ap.AddP(item.slot, d)
		} else {
			ap.AddP(item.slot, -d)
		}
	}

	return piDelta
}

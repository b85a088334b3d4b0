package wedelin

import (
	"math/rand"
	"sort"
)

// rItem is one row's reduced-cost entry during a row update: the
// (possibly sign-flipped) reduced cost, the slot id it came from, and
// the variable it scores.
type rItem struct {
	value float64
	slot  int
	j     int
}

// rowUpdater owns the scratch buffer a row update reuses across calls,
// so a sweep over many rows does not allocate per row (design notes
// §9: "the reduced-cost scratch buffer is allocated once per solver
// and reused").
type rowUpdater struct {
	prob *Problem
	rng  *rand.Rand

	scratch []rItem
}

func newRowUpdater(prob *Problem, rng *rand.Rand) *rowUpdater {
	maxRow := 0
	for k := 0; k < prob.M; k++ {
		if n := len(prob.AP.RowSlots(k)); n > maxRow {
			maxRow = n
		}
	}
	return &rowUpdater{
		prob:    prob,
		rng:     rng,
		scratch: make([]rItem, 0, maxRow),
	}
}

// updateRow applies one row-update of component C3 to row k, mutating
// state.X in place and state.Pi[k]. pushAmplifier is zero outside the
// push phase and pushing-objective-amplifier during it (specification
// §4.3 step 2's "+ objective_amplifier·c_j" term).
func (ru *rowUpdater) updateRow(state *State, k int, kappa, delta, theta, pushAmplifier float64) error {
	ap := ru.prob.AP
	rowSlots := ap.RowSlots(k)

	for _, slot := range rowSlots {
		ap.P[slot] *= theta
	}

	r := ru.scratch[:0]
	for _, slot := range rowSlots {
		j := ap.ColOf(slot)

		var sumAPi, sumAP float64
		for _, colSlot := range ap.ColSlots(j) {
			h := ap.RowOf(colSlot)
			a := ap.A[colSlot]
			sumAPi += float64(a) * state.Pi[h]
			sumAP += float64(a) * ap.P[colSlot]
		}

		value := ru.prob.Cost[j] - sumAPi - sumAP
		if pushAmplifier != 0 {
			value += pushAmplifier * ru.prob.Cost[j]
		}
		if ap.A[slot] < 0 {
			value = -value
		}

		r = append(r, rItem{value: value, slot: slot, j: j})
	}

	shift := 0
	for _, slot := range ru.prob.C[k] {
		ap.InvertP(slot)
		shift++
	}

	sortReducedCosts(r, ru.prob.Sense, ru.rng)

	bound := ru.prob.B[k]
	bMin, bMax := bound.Min+shift, bound.Max+shift

	var (
		piDelta float64
		err     error
	)
	if ru.prob.Z[k] {
		piDelta, err = ru.applyKnapsack(state, r, bMin, bMax, kappa, delta)
	} else {
		piDelta, err = ru.applyUnitScan(state, r, bMin, bMax, kappa, delta)
	}

	ru.restoreNegated(state, k)

	if err != nil {
		return err
	}
	state.Pi[k] += piDelta
	return nil
}

// restoreNegated flips row k's negative-coefficient slots — and the
// matching x entries — back to their original sign, completing the
// "negate and restore" trick.
func (ru *rowUpdater) restoreNegated(state *State, k int) {
	ap := ru.prob.AP
	for _, slot := range ru.prob.C[k] {
		ap.InvertP(slot)
		j := ap.ColOf(slot)
		state.X[j] = ru.prob.U[j] - state.X[j]
	}
}

// sortReducedCosts orders r ascending for Minimize (descending for
// Maximize, via Sense.Less), with exact ties broken by an in-place
// Fisher-Yates shuffle of the tied run so repeated runs over the same
// values do not always resolve ties the same way.
func sortReducedCosts(r []rItem, sense Sense, rng *rand.Rand) {
	sort.SliceStable(r, func(i, j int) bool { return sense.Less(r[i].value, r[j].value) })

	start := 0
	for i := 1; i <= len(r); i++ {
		if i < len(r) && r[i].value == r[start].value {
			continue
		}
		shuffleRun(r[start:i], rng)
		start = i
	}
}

func shuffleRun(run []rItem, rng *rand.Rand) {
	for i := len(run) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		run[i], run[j] = run[j], run[i]
	}
}

// applyUnitScan runs component C3's {0,±1}-coefficient path: a prefix
// scan of the sorted reduced costs against [bMin, bMax], grounded on
// constraint_calculator::update_row's unit-weight branch. It returns
// the π increment for the caller to apply.
func (ru *rowUpdater) applyUnitScan(state *State, r []rItem, bMin, bMax int, kappa, delta float64) (float64, error) {
	n := len(r)

	i, sum := 0, 0
	for ; i < n; i++ {
		sum++
		if bMin <= sum {
			break
		}
	}

	if !(bMin <= sum && sum <= bMax) {
		return 0, ErrUnrealisableRow
	}

	selected := i
	for i++; i < n; i++ {
		sum++
		if sum <= bMax {
			if ru.prob.Sense.stopIterating(r[i].value, ru.rng) {
				break
			}
			selected++
		} else {
			break
		}
	}

	first, second := selected, selected+1
	if second >= n {
		first, second = selected-1, selected
	}
	if first < 0 {
		first = 0
	}

	piDelta := (r[first].value + r[second].value) / 2
	d := delta + (kappa/(1-kappa))*(r[second].value-r[first].value)

	ru.assignSelection(state, r, selected, d)
	return piDelta, nil
}

// assignSelection writes x[j] = U[j] for the included prefix and
// x[j] = 0 for the rest, incrementing P by +d / -d respectively
// (specification §4.3 step 6).
func (ru *rowUpdater) assignSelection(state *State, r []rItem, selected int, d float64) {
	ap := ru.prob.AP
	for idx := 0; idx <= selected && idx < len(r); idx++ {
		j := r[idx].j
		state.X[j] = ru.prob.U[j]
		ap.AddP(r[idx].slot, d)
	}
	for idx := selected + 1; idx < len(r); idx++ {
		j := r[idx].j
		state.X[j] = 0
		ap.AddP(r[idx].slot, -d)
	}
}

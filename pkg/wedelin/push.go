package wedelin

import "math/rand"

// runPush executes one push sweep of component C6: a single amplified
// pass over every row (or, if some are already violated, those rows),
// using the caller's live annealing κ scaled by PushingKFactor and a
// fixed objective amplifier — grounded on push_and_compute_update_row /
// push_and_run in the reference push-phase source, which runs exactly
// one amplified sweep per push, not a repeated inner loop. The outer
// annealing loop is responsible for the "every pushing_iteration_limit
// successful sweeps" cadence; this function only ever performs the one
// sweep it is called for.
func runPush(prob *Problem, state *State, ru *rowUpdater, kappa float64, params Params, rng *rand.Rand, logger Logger) {
	pushKappa := params.PushingKFactor * kappa

	buildViolatedRows(prob, state, OrderNone, rng)
	rows := state.R
	if len(rows) == 0 {
		// already satisfied at the start of this sweep: still run the
		// amplified pass over every row, since the point of pushing is
		// to move a feasible solution, not just repair an infeasible
		// one.
		rows = allRows(prob.M)
	}
	for _, k := range rows {
		if err := ru.updateRow(state, k, pushKappa, params.Delta, params.Theta, params.PushingObjectiveAmplifier); err != nil {
			logger.Warnw("push row update failed", "row", k, "error", err)
		}
	}
}

func allRows(m int) []int {
	rows := make([]int, m)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

package wedelin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/baryonyx/pkg/lp"
)

func assignmentProblem() *lp.Problem {
	return &lp.Problem{
		Sense: lp.Minimize,
		Objective: lp.Objective{
			Coefficients: []float64{1, 2, 1},
		},
		Constraints: []lp.RawConstraint{
			{Name: "c1", Elements: []lp.Element{{Var: 0, Coeff: 1}, {Var: 1, Coeff: 1}, {Var: 2, Coeff: 1}}, Op: lp.OpEQ, RHS: 2},
			{Name: "c2", Elements: []lp.Element{{Var: 0, Coeff: 1}, {Var: 1, Coeff: -1}}, Op: lp.OpLE, RHS: 1},
			{Name: "c3", Elements: []lp.Element{{Var: 1, Coeff: 1}, {Var: 2, Coeff: 1}}, Op: lp.OpGE, RHS: 1},
		},
		Variables: []lp.Variable{
			{Name: "x1", Kind: lp.Binary},
			{Name: "x2", Kind: lp.Binary},
			{Name: "x3", Kind: lp.Binary},
		},
	}
}

func TestSolve_SmallAssignmentReachesFeasibility(t *testing.T) {
	pb := assignmentProblem()
	params := DefaultParams()
	params.Seed = 7
	params.HasSeed = true

	result, err := Solve(pb, params, NopLogger())
	require.NoError(t, err)

	require.Len(t, result.VariableValue, 3)
	require.Equal(t, 3, result.Constraints)
	require.Equal(t, 3, result.Variables)
	require.Contains(t, []Status{StatusSuccess, StatusLimitReached, StatusKappaMaxReached, StatusTimeLimitReached}, result.Status)
	require.True(t, result.Feasible())
}

func TestSolve_InfeasiblePreprocessReportsConflictingBounds(t *testing.T) {
	pb := &lp.Problem{
		Sense:     lp.Minimize,
		Objective: lp.Objective{Coefficients: []float64{1}},
		Constraints: []lp.RawConstraint{
			{Elements: []lp.Element{{Var: 0, Coeff: 1}}, Op: lp.OpEQ, RHS: 1},
			{Elements: []lp.Element{{Var: 0, Coeff: 1}}, Op: lp.OpEQ, RHS: 2},
		},
		Variables: []lp.Variable{{Name: "x1", Kind: lp.Binary}},
	}

	result, err := Solve(pb, DefaultParams(), NopLogger())
	require.ErrorIs(t, err, ErrInfeasiblePreprocess)
	require.Equal(t, StatusInfeasiblePreprocess, result.Status)
}

func TestResolveSeed_UsesSuppliedSeedWhenPresent(t *testing.T) {
	params := Params{HasSeed: true, Seed: 99}
	require.Equal(t, int64(99), resolveSeed(params))
}

func TestResolveSeed_PicksANonZeroSeedWhenAbsent(t *testing.T) {
	params := Params{HasSeed: false}
	require.NotEqual(t, int64(0), resolveSeed(params))
}

// TestSolve_FeasibilityWinsOverKappaMaxReachedInSameSweep pins down
// specification §8's boundary rule: when κ only crosses KappaMax as a
// side effect of the very sweep that reaches feasibility, the next
// round must report success, not kappa_max_reached, because that
// growth is not visible until the round after it, and that round
// finds R already empty.
func TestSolve_FeasibilityWinsOverKappaMaxReachedInSameSweep(t *testing.T) {
	pb := &lp.Problem{
		Sense:     lp.Minimize,
		Objective: lp.Objective{Coefficients: []float64{1}},
		Constraints: []lp.RawConstraint{
			{Name: "c1", Elements: []lp.Element{{Var: 0, Coeff: 1}}, Op: lp.OpEQ, RHS: 1},
		},
		Variables: []lp.Variable{{Name: "x1", Kind: lp.Binary}},
	}

	params := DefaultParams()
	params.Seed = 1
	params.HasSeed = true
	params.KappaMin = 0.5
	params.KappaMax = 0.6
	params.KappaStep = 0.2
	params.W = 1
	params.Limit = 100
	params.TimeLimit = 0
	params.PushesLimit = 0

	result, err := Solve(pb, params, NopLogger())
	require.NoError(t, err)
	require.Equal(t, StatusSuccess, result.Status)
	require.Equal(t, []int{1}, result.VariableValue)
}

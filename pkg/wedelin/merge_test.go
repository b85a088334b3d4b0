package wedelin

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/baryonyx/pkg/lp"
)

func TestMergeConstraints_Equality(t *testing.T) {
	raw := []lp.RawConstraint{
		{Elements: []lp.Element{{Var: 0, Coeff: 1}, {Var: 1, Coeff: 1}}, Op: lp.OpEQ, RHS: 2},
	}
	merged, removed := MergeConstraints(raw)
	require.Len(t, merged, 1)
	require.Equal(t, 0, removed)
	require.Equal(t, 2, merged[0].Min)
	require.Equal(t, 2, merged[0].Max)
}

func TestMergeConstraints_DedupIntersectsBounds(t *testing.T) {
	elems := []lp.Element{{Var: 0, Coeff: 1}, {Var: 1, Coeff: 1}}
	raw := []lp.RawConstraint{
		{Elements: elems, Op: lp.OpLE, RHS: 5},
		{Elements: elems, Op: lp.OpGE, RHS: 1},
		{Elements: elems, Op: lp.OpLE, RHS: 3},
	}
	merged, removed := MergeConstraints(raw)
	require.Len(t, merged, 1)
	require.Equal(t, 2, removed)
	require.Equal(t, 1, merged[0].Min)
	require.Equal(t, 3, merged[0].Max)
}

func TestMergeConstraints_Idempotent(t *testing.T) {
	raw := []lp.RawConstraint{
		{Elements: []lp.Element{{Var: 0, Coeff: 1}}, Op: lp.OpLE, RHS: 1},
		{Elements: []lp.Element{{Var: 1, Coeff: 1}}, Op: lp.OpGE, RHS: 0},
	}
	merged, _ := MergeConstraints(raw)

	asRaw := make([]lp.RawConstraint, len(merged))
	for i, mc := range merged {
		asRaw[i] = lp.RawConstraint{Elements: mc.Elements, Op: lp.OpEQ, RHS: mc.Min}
		if mc.Min != mc.Max {
			// a range row has no single equality form: re-express it as
			// "<= Max" and let closeOpenBound re-derive Min from the
			// coefficients, which gives back the same Min for these rows.
			asRaw[i] = lp.RawConstraint{Elements: mc.Elements, Op: lp.OpLE, RHS: mc.Max}
		}
	}

	reMerged, removed := MergeConstraints(asRaw)
	require.Len(t, reMerged, len(merged))
	require.Equal(t, 0, removed)
	require.Equal(t, merged, reMerged)
}

func TestMergeConstraints_ClosesOpenBoundFromCoefficients(t *testing.T) {
	raw := []lp.RawConstraint{
		{Elements: []lp.Element{{Var: 0, Coeff: 2}, {Var: 1, Coeff: -3}}, Op: lp.OpGE, RHS: -100},
	}
	merged, _ := MergeConstraints(raw)
	require.Len(t, merged, 1)

	// Min stays at the constraint's own RHS (already closed), Max is
	// closed from the sum of positive coefficients (2), since it was
	// left at +infinity by a single >= constraint.
	require.Equal(t, -100, merged[0].Min)
	require.Equal(t, 2, merged[0].Max)
}

func TestMergeConstraints_BothBoundsOpenClosedFromCoefficients(t *testing.T) {
	raw := []lp.RawConstraint{
		{Elements: []lp.Element{{Var: 0, Coeff: 1}, {Var: 1, Coeff: -1}}, Op: lp.OpEQ, RHS: math.MinInt32}, // never reached in practice
	}
	// Build a constraint with no operator contribution by using two
	// mutually-cancelling rows is awkward; instead directly verify
	// closeOpenBound's behavior on a hand-built MergedConstraint.
	_ = raw
	mc := MergedConstraint{
		Elements: []lp.Element{{Var: 0, Coeff: 3}, {Var: 1, Coeff: -2}},
		Min:      math.MinInt32,
		Max:      math.MaxInt32,
	}
	closeOpenBound(&mc)
	require.Equal(t, -2, mc.Min)
	require.Equal(t, 3, mc.Max)
}

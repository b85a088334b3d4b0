package wedelin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResult_Feasible(t *testing.T) {
	require.True(t, Result{RemainingConstraints: 0}.Feasible())
	require.False(t, Result{RemainingConstraints: 1}.Feasible())
}

func TestBetterThan_FeasibilityDominates(t *testing.T) {
	feasible := Result{RemainingConstraints: 0, Objective: 100}
	infeasible := Result{RemainingConstraints: 1, Objective: 1}

	require.True(t, betterThan(feasible, infeasible, Minimize))
	require.False(t, betterThan(infeasible, feasible, Minimize))
}

func TestBetterThan_ObjectiveComparedUnderMinimize(t *testing.T) {
	better := Result{RemainingConstraints: 0, Objective: 1}
	worse := Result{RemainingConstraints: 0, Objective: 2}

	require.True(t, betterThan(better, worse, Minimize))
	require.False(t, betterThan(worse, better, Minimize))
}

func TestBetterThan_ObjectiveComparedUnderMaximize(t *testing.T) {
	better := Result{RemainingConstraints: 0, Objective: 2}
	worse := Result{RemainingConstraints: 0, Objective: 1}

	require.True(t, betterThan(better, worse, Maximize))
	require.False(t, betterThan(worse, better, Maximize))
}

func TestBetterThan_BothInfeasibleComparesByRemaining(t *testing.T) {
	fewer := Result{RemainingConstraints: 1}
	more := Result{RemainingConstraints: 3}

	require.True(t, betterThan(fewer, more, Minimize))
	require.False(t, betterThan(more, fewer, Minimize))
}

package wedelin

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildKnapsackProblem() (*Problem, []int) {
	// row: 2 x0 + 3 x1, weights taken from |A|.
	positions := [][2]int{{0, 0}, {0, 1}}
	ap := NewAP(1, 2, positions)
	slot0, _ := ap.At(0, 0)
	slot1, _ := ap.At(0, 1)
	ap.A[slot0] = 2
	ap.A[slot1] = 3

	prob := &Problem{
		Sense: Minimize,
		Cost:  []float64{1, 5},
		M:     1,
		N:     2,
		AP:    ap,
		B:     []Bound{{Min: 2, Max: 2}},
		U:     []int{1, 1},
		Z:     []bool{true},
		C:     [][]int{nil},
	}
	return prob, []int{slot0, slot1}
}

func TestApplyKnapsack_PicksOnlyFeasibleWeightCombination(t *testing.T) {
	prob, slots := buildKnapsackProblem()
	state := NewState(prob.M, prob.N)
	rng := rand.New(rand.NewSource(1))
	ru := newRowUpdater(prob, rng)

	r := []rItem{
		{value: 1, slot: slots[0], j: 0},
		{value: 5, slot: slots[1], j: 1},
	}

	piDelta, err := ru.applyKnapsack(state, r, 2, 2, 0, 0)
	require.NoError(t, err)

	require.Equal(t, 1, state.X[0])
	require.Equal(t, 0, state.X[1])
	require.InDelta(t, 3.0, piDelta, 1e-9)
}

func TestApplyKnapsack_InfeasibleCapacityErrors(t *testing.T) {
	prob, slots := buildKnapsackProblem()
	state := NewState(prob.M, prob.N)
	rng := rand.New(rand.NewSource(1))
	ru := newRowUpdater(prob, rng)

	r := []rItem{
		{value: 1, slot: slots[0], j: 0},
		{value: 5, slot: slots[1], j: 1},
	}

	// capacity window above the row's maximum achievable weight (5).
	_, err := ru.applyKnapsack(state, r, 6, 6, 0, 0)
	require.ErrorIs(t, err, ErrUnrealisableRow)
}

func TestApplyKnapsack_MaximizeUsesNegatedScore(t *testing.T) {
	prob, slots := buildKnapsackProblem()
	prob.Sense = Maximize
	state := NewState(prob.M, prob.N)
	rng := rand.New(rand.NewSource(1))
	ru := newRowUpdater(prob, rng)

	r := []rItem{
		{value: 1, slot: slots[0], j: 0},
		{value: 5, slot: slots[1], j: 1},
	}

	_, err := ru.applyKnapsack(state, r, 2, 2, 0, 0)
	require.NoError(t, err)
	// only one weight-2-exact combination exists regardless of sense.
	require.Equal(t, 1, state.X[0])
	require.Equal(t, 0, state.X[1])
}

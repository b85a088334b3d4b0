package wedelin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestAP() *AP {
	// a 2x3 pattern:
	//   row0: col0, col2
	//   row1: col1, col2
	positions := [][2]int{
		{1, 2}, {0, 2}, {1, 1}, {0, 0},
	}
	return NewAP(2, 3, positions)
}

func TestAP_RowSlotsAscendingColumn(t *testing.T) {
	ap := newTestAP()

	row0 := ap.RowSlots(0)
	require.Len(t, row0, 2)
	require.Less(t, ap.ColOf(row0[0]), ap.ColOf(row0[1]))

	row1 := ap.RowSlots(1)
	require.Len(t, row1, 2)
	require.Less(t, ap.ColOf(row1[0]), ap.ColOf(row1[1]))
}

func TestAP_ColSlotsAscendingRow(t *testing.T) {
	ap := newTestAP()

	col2 := ap.ColSlots(2)
	require.Len(t, col2, 2)
	require.Less(t, ap.RowOf(col2[0]), ap.RowOf(col2[1]))
}

func TestAP_AtHitAndMiss(t *testing.T) {
	ap := newTestAP()

	slot, ok := ap.At(0, 2)
	require.True(t, ok)
	require.Equal(t, 0, ap.RowOf(slot))
	require.Equal(t, 2, ap.ColOf(slot))

	_, ok = ap.At(0, 1)
	require.False(t, ok)
}

func TestAP_InvertPRoundTrips(t *testing.T) {
	ap := newTestAP()
	slot, ok := ap.At(0, 0)
	require.True(t, ok)

	ap.A[slot] = -3
	ap.P[slot] = 0.5

	ap.InvertP(slot)
	require.Equal(t, 3, ap.A[slot])
	require.Equal(t, -0.5, ap.P[slot])

	ap.InvertP(slot)
	require.Equal(t, -3, ap.A[slot])
	require.Equal(t, 0.5, ap.P[slot])
}

func TestAP_AddP(t *testing.T) {
	ap := newTestAP()
	slot, ok := ap.At(1, 1)
	require.True(t, ok)

	ap.AddP(slot, 0.25)
	ap.AddP(slot, 0.25)
	require.InDelta(t, 0.5, ap.P[slot], 1e-9)
}

func TestAP_RowValue(t *testing.T) {
	ap := newTestAP()

	slot00, _ := ap.At(0, 0)
	slot02, _ := ap.At(0, 2)
	ap.A[slot00] = 2
	ap.A[slot02] = 3

	x := []int{1, 1, 1}
	require.Equal(t, 5, ap.RowValue(0, x))

	x = []int{0, 1, 1}
	require.Equal(t, 3, ap.RowValue(0, x))
}

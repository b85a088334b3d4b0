package wedelin

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/baryonyx/pkg/lp"
)

func TestSenseFromLP(t *testing.T) {
	require.Equal(t, Minimize, SenseFromLP(lp.Minimize))
	require.Equal(t, Maximize, SenseFromLP(lp.Maximize))
}

func TestMinimizeSense_Less(t *testing.T) {
	require.True(t, Minimize.Less(1, 2))
	require.False(t, Minimize.Less(2, 1))
}

func TestMaximizeSense_Less(t *testing.T) {
	require.True(t, Maximize.Less(2, 1))
	require.False(t, Maximize.Less(1, 2))
}

func TestMinimizeSense_IsBetter(t *testing.T) {
	require.True(t, Minimize.IsBetter(1, 2))
	require.False(t, Minimize.IsBetter(2, 1))
}

func TestMaximizeSense_IsBetter(t *testing.T) {
	require.True(t, Maximize.IsBetter(2, 1))
	require.False(t, Maximize.IsBetter(1, 2))
}

func TestMinimizeSense_BoundRHS(t *testing.T) {
	require.Equal(t, 3, Minimize.BoundRHS(3, 9))
}

func TestMaximizeSense_BoundRHS(t *testing.T) {
	require.Equal(t, 9, Maximize.BoundRHS(3, 9))
}

func TestMinimizeSense_InitialAssignment(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	require.True(t, Minimize.initialAssignment(-1, false))
	require.False(t, Minimize.initialAssignment(1, false))
	require.Equal(t, true, Minimize.initialAssignment(0, true))
	require.Equal(t, false, Minimize.initialAssignment(0, false))
	_ = rng
}

func TestMaximizeSense_InitialAssignment(t *testing.T) {
	require.True(t, Maximize.initialAssignment(1, false))
	require.False(t, Maximize.initialAssignment(-1, false))
	require.Equal(t, true, Maximize.initialAssignment(0, true))
	require.Equal(t, false, Maximize.initialAssignment(0, false))
}

func TestMinimizeSense_StopIterating(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	require.True(t, Minimize.stopIterating(1, rng))
	require.False(t, Minimize.stopIterating(-1, rng))
}

func TestMaximizeSense_StopIterating(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	require.True(t, Maximize.stopIterating(-1, rng))
	require.False(t, Maximize.stopIterating(1, rng))
}

func TestSense_String(t *testing.T) {
	require.Equal(t, "minimize", Minimize.String())
	require.Equal(t, "maximize", Maximize.String())
}

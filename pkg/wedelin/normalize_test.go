package wedelin

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeCosts_None(t *testing.T) {
	cost := []float64{3, -4, 0}
	NormalizeCosts(cost, NormNone, nil)
	require.Equal(t, []float64{3, -4, 0}, cost)
}

func TestNormalizeCosts_L1(t *testing.T) {
	cost := []float64{3, -4, 1}
	NormalizeCosts(cost, NormL1, nil)
	require.InDeltaSlice(t, []float64{3.0 / 8, -4.0 / 8, 1.0 / 8}, cost, 1e-9)
}

func TestNormalizeCosts_L2TakesSquareRoot(t *testing.T) {
	cost := []float64{3, 4}
	NormalizeCosts(cost, NormL2, nil)
	// norm is sqrt(3^2+4^2) = 5, not 25.
	require.InDeltaSlice(t, []float64{0.6, 0.8}, cost, 1e-9)
}

func TestNormalizeCosts_Inf(t *testing.T) {
	cost := []float64{3, -4, 1}
	NormalizeCosts(cost, NormInf, nil)
	require.InDeltaSlice(t, []float64{0.75, -1, 0.25}, cost, 1e-9)
}

func TestNormalizeCosts_RngJittersAndDividesByMax(t *testing.T) {
	cost := []float64{2, -2}
	rng := rand.New(rand.NewSource(1))
	NormalizeCosts(cost, NormRng, rng)

	for _, c := range cost {
		require.LessOrEqual(t, math.Abs(c), 1.0+1e-6)
	}
	// the two entries should no longer be exact negatives of each
	// other once jitter has been applied and re-scaled.
	require.NotEqual(t, cost[0], -cost[1])
}

func TestNormalizeCosts_DivideByZeroIsNoOp(t *testing.T) {
	cost := []float64{0, 0, 0}
	NormalizeCosts(cost, NormL1, nil)
	require.Equal(t, []float64{0, 0, 0}, cost)
}

func TestDivideBy_NonFiniteDivisorIsNoOp(t *testing.T) {
	cost := []float64{1, 2, 3}
	divideBy(cost, math.Inf(1))
	require.Equal(t, []float64{1, 2, 3}, cost)

	divideBy(cost, math.NaN())
	require.Equal(t, []float64{1, 2, 3}, cost)

	divideBy(cost, math.Inf(-1))
	require.Equal(t, []float64{1, 2, 3}, cost)
}

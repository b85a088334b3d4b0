package wedelin

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOptimize_ReturnsBestAcrossWorkers(t *testing.T) {
	pb := assignmentProblem()
	params := DefaultParams()
	params.Threads = 4
	params.Seed = 1
	params.HasSeed = true

	result, err := Optimize(pb, params, NopLogger(), OptimizeOptions{})
	require.NoError(t, err)
	require.Len(t, result.VariableValue, 3)
}

func TestOptimize_WritesOneCheckpointPerWorker(t *testing.T) {
	dir := t.TempDir()
	pb := assignmentProblem()
	params := DefaultParams()
	params.Threads = 3
	params.Seed = 5
	params.HasSeed = true

	_, err := Optimize(pb, params, NopLogger(), OptimizeOptions{CheckpointDir: dir})
	require.NoError(t, err)

	for w := 0; w < 3; w++ {
		_, err := os.Stat(filepath.Join(dir, "temp-"+strconv.Itoa(w)+".sol"))
		require.NoError(t, err)
	}
}

// TestOptimize_ReinitLoopBoundsOnGlobalTimeLimit caps every attempt at
// one sweep (Limit 1) under a short shared TimeLimit: whether a worker
// reaches feasibility in its first attempt or reinitializes from its
// running best-x (component C7), the run must return a full assignment
// and stop promptly rather than retry forever.
func TestOptimize_ReinitLoopBoundsOnGlobalTimeLimit(t *testing.T) {
	pb := assignmentProblem()
	params := DefaultParams()
	params.Threads = 2
	params.Seed = 3
	params.HasSeed = true
	params.Limit = 1
	params.TimeLimit = 30 * time.Millisecond

	start := time.Now()
	result, err := Optimize(pb, params, NopLogger(), OptimizeOptions{})
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.Len(t, result.VariableValue, 3)
	require.Less(t, elapsed, 2*time.Second)
}

package wedelin

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeCheckpoint writes one worker's current best result to
// temp-<worker>.sol under dir, in the flat "name:value" format the
// reference implementation's checkpoint files use: a header comment
// line carrying status and objective, followed by one line per
// variable. Overwriting the previous checkpoint is intentional — only
// the latest snapshot per worker is kept.
func writeCheckpoint(dir string, runID string, worker int, res Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("wedelin: checkpoint dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("temp-%d.sol", worker))
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("wedelin: create checkpoint: %w", err)
	}

	_, werr := fmt.Fprintf(f, "; run %s worker %d status %s objective %g loop %d\n",
		runID, worker, res.Status, res.Objective, res.Loop)
	for i, name := range res.VariableName {
		if werr != nil {
			break
		}
		_, werr = fmt.Fprintf(f, "%s:%d\n", name, res.VariableValue[i])
	}

	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(tmp)
		return fmt.Errorf("wedelin: write checkpoint: %w", werr)
	}

	return os.Rename(tmp, path)
}

package scene

import "github.com/moncler0578/OPENPILOT/internal/model"

// MaxIndexWithin returns the largest sample index of line whose forward
// distance does not exceed ceiling. Index 0 is always usable as the origin
// sample; the scan stops at the first sample past the ceiling. For a
// degenerate (all-zero or non-monotonic) trajectory the scan simply yields
// whatever the in-order walk finds, typically 0.
func MaxIndexWithin(line *model.Trajectory, ceiling float64) int {
	maxIdx := 0
	for i := 1; i < model.TrajectorySize && line.X[i] <= ceiling; i++ {
		maxIdx = i
	}
	return maxIdx
}

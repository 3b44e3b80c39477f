package model

import "math"

// Lateral placement (metres) of the four predicted lane lines and the two
// road edges for synthetic frames: adjacent-left, ego-left, ego-right,
// adjacent-right.
var (
	synthLaneOffsets = [4]float64{-5.55, -1.85, 1.85, 5.55}
	synthEdgeOffsets = [2]float64{-7.0, 7.0}
)

// SynthOptions shapes a synthetic model frame. The zero value produces a
// straight, flat road with one-metre sample spacing.
type SynthOptions struct {
	// Spacing is the forward distance between consecutive samples.
	// Defaults to 1m when zero.
	Spacing float64
	// StartX offsets the first sample forward of the vehicle.
	StartX float64
	// Curvature bends every line laterally by Curvature * x^2.
	Curvature float64
	// HillCrest, when positive, raises the road toward a crest at that
	// forward distance and drops it beyond, approximating terrain that
	// folds naive ribbon geometry.
	HillCrest float64
	// HillHeight is the height of the crest. Defaults to 2m when a crest
	// distance is set and no height given.
	HillHeight float64
}

// SynthFrame builds a deterministic model frame for tests and replay runs.
func SynthFrame(opts SynthOptions) *Frame {
	spacing := opts.Spacing
	if spacing == 0 {
		spacing = 1
	}
	hillHeight := opts.HillHeight
	if opts.HillCrest > 0 && hillHeight == 0 {
		hillHeight = 2
	}

	f := &Frame{
		LaneLineProbs: [4]float64{0.5, 0.95, 0.95, 0.5},
		RoadEdgeStds:  [2]float64{0.3, 0.3},
	}

	fill := func(tr *Trajectory, lateral float64) {
		for i := 0; i < TrajectorySize; i++ {
			x := opts.StartX + float64(i)*spacing
			tr.X[i] = x
			tr.Y[i] = lateral + opts.Curvature*x*x
			if opts.HillCrest > 0 {
				// Symmetric rise and fall around the crest.
				tr.Z[i] = hillHeight * math.Max(0, 1-math.Abs(x-opts.HillCrest)/opts.HillCrest)
			}
		}
	}

	fill(&f.Position, 0)
	for i := range f.LaneLines {
		fill(&f.LaneLines[i], synthLaneOffsets[i])
	}
	for i := range f.RoadEdges {
		fill(&f.RoadEdges[i], synthEdgeOffsets[i])
	}
	return f
}

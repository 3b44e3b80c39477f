// Package model defines the decoded driving-model and radar inputs consumed
// by the visualization pipeline. Decoding from the wire format happens in an
// upstream process; by the time values reach this package they are plain
// arrays of floats refreshed on each model or radar update.
package model

// TrajectorySize is the fixed number of samples in every predicted line.
const TrajectorySize = 33

// Trajectory is one predicted curve in vehicle space: X is forward distance,
// Y lateral offset, Z height. Samples are ordered by monotonically increasing
// forward distance. All-zero or non-monotonic trajectories are not validated
// here; downstream index selection simply yields index 0 for them.
type Trajectory struct {
	X [TrajectorySize]float64
	Y [TrajectorySize]float64
	Z [TrajectorySize]float64
}

// Frame is one model update: the ego path plus the lane line and road edge
// predictions with their confidence scalars.
type Frame struct {
	// FrameID is the update counter assigned by the delivery layer, used to
	// order model updates against radar updates.
	FrameID uint64

	Position      Trajectory
	LaneLines     [4]Trajectory
	LaneLineProbs [4]float64
	RoadEdges     [2]Trajectory
	RoadEdgeStds  [2]float64
}

// LeadState describes one tracked lead vehicle slot.
type LeadState struct {
	// Status is true while the slot is actively tracking a vehicle.
	Status bool
	// DRel is the longitudinal distance to the lead in metres.
	DRel float64
	// YRel is the lateral offset to the lead in metres.
	YRel float64
	// Radar is true when the track is radar-confirmed rather than
	// vision-only.
	Radar bool
}

// RadarState is one radar update: the nearest in-lane lead and the
// secondary lead.
type RadarState struct {
	FrameID uint64
	LeadOne LeadState
	LeadTwo LeadState
}

// Leads returns the two lead slots in display order.
func (r *RadarState) Leads() [2]LeadState {
	return [2]LeadState{r.LeadOne, r.LeadTwo}
}

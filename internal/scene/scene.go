package scene

import (
	"math"

	"github.com/moncler0578/OPENPILOT/internal/config"
	"github.com/moncler0578/OPENPILOT/internal/model"
)

const (
	// stockLaneLineHalfWidth and stockRoadEdgeHalfWidth are the half-widths
	// used when the custom road UI is disabled.
	stockLaneLineHalfWidth = 0.025
	stockRoadEdgeHalfWidth = 0.025
	// stockPathHalfWidth is the stock planned-path half-width.
	stockPathHalfWidth = 0.9
	// stockBlindspotOffset is the stock blind-spot region offset.
	stockBlindspotOffset = 0.5

	// BlindSpotDistance bounds the blind-spot regions to a fixed forward
	// distance, further intersected with the overall path truncation.
	BlindSpotDistance = 100.0

	// HeightOffset approximates the sensor mounting height above the road
	// surface. The path surface and lead markers are raised by it.
	HeightOffset = 1.22

	// leadShrinkFactor and leadCushion shape how the path foreshortens when
	// approaching a lead: the drawn path ends at twice the lead distance
	// minus min(35% of that, the 10m cushion).
	leadShrinkFactor = 0.35
	leadCushion      = 10.0
)

// Scene is the per-frame output state of the visualization pipeline plus the
// shared read-only projection context. Every vertex buffer is recomputed in
// place on each model or radar update; nothing persists across frames beyond
// being overwritten.
//
// Scene is not safe for concurrent use. The external scheduler must
// serialize Update* calls, matching the single-threaded frame-driven model
// of the surrounding UI.
type Scene struct {
	Ctx *Context
	cfg *config.VisualConfig

	// Lane lines and their confidence probabilities.
	LaneLineVertices [4]Polygon
	LaneLineProbs    [4]float64

	// Blind-spot warning regions alongside the inner lane boundaries,
	// left then right.
	LaneBlindSpotVertices [2]Polygon

	// Road edges and their standard deviations.
	RoadEdgeVertices [2]Polygon
	RoadEdgeStds     [2]float64

	// The planned travel path.
	TrackVertices Polygon

	// Lead markers and their radar-confirmed flags.
	LeadVertices [2]LeadVertex
	LeadRadar    [2]bool

	// Blind-spot gating flags mirrored from car state so the render layer
	// can decide whether to paint the warning regions.
	LeftBlindSpot  bool
	RightBlindSpot bool

	// DrawDistance and MaxIndex are the effective (lead-aware) truncation
	// applied to the current frame, exposed for monitoring.
	DrawDistance float64
	MaxIndex     int

	// lastPosition is the centerline from the most recent model update,
	// kept for projecting leads that arrive between model updates.
	lastPosition model.Trajectory
	modelFrame   uint64
	leadOne      model.LeadState
}

// New creates a Scene rendering into a framebuffer of the given size using
// the supplied tuning config. A nil cfg uses the defaults.
func New(cfg *config.VisualConfig, frameWidth, frameHeight int) *Scene {
	if cfg == nil {
		cfg = config.EmptyVisualConfig()
	}
	s := &Scene{
		Ctx: NewContext(frameWidth, frameHeight),
		cfg: cfg,
	}
	s.Ctx.WideCamera = cfg.GetEnableWideCamera()
	return s
}

// UpdateModel rebuilds all lane line, blind-spot, road edge, and path
// geometry from a fresh model frame.
func (s *Scene) UpdateModel(frame *model.Frame) {
	customUI := s.cfg.GetCustomRoadUI()

	// Global draw distance: the final predicted sample, clamped unless the
	// unlimited-length mode is active.
	maxDistance := frame.Position.X[model.TrajectorySize-1]
	if !s.cfg.GetUnlimitedLength() {
		maxDistance = clamp(maxDistance, s.cfg.GetMinDrawDistance(), s.cfg.GetMaxDrawDistance())
	}

	// Foreshorten toward an actively tracked lead so the path never draws
	// past it, keeping a small cushion as the gap closes.
	if s.leadOne.Status {
		leadD := s.leadOne.DRel * 2
		maxDistance = clamp(leadD-math.Min(leadD*leadShrinkFactor, leadCushion), 0, maxDistance)
	}

	// One shared index keeps every line truncated consistently.
	maxIdx := MaxIndexWithin(&frame.Position, maxDistance)

	laneHalfWidth := stockLaneLineHalfWidth
	edgeHalfWidth := stockRoadEdgeHalfWidth
	pathHalfWidth := stockPathHalfWidth
	blindspotOffset := stockBlindspotOffset
	if customUI {
		laneHalfWidth = s.cfg.GetLaneLineHalfWidth()
		edgeHalfWidth = s.cfg.GetRoadEdgeHalfWidth()
		pathHalfWidth = s.cfg.GetPathHalfWidth()
		blindspotOffset = s.cfg.GetBlindspotLineWidth()
	}

	for i := range s.LaneLineVertices {
		s.LaneLineProbs[i] = frame.LaneLineProbs[i]
		BuildRibbon(s.Ctx, &frame.LaneLines[i], laneHalfWidth*s.LaneLineProbs[i], 0, maxIdx, true, &s.LaneLineVertices[i])
	}

	barrierIdx := min(maxIdx, MaxIndexWithin(&frame.Position, BlindSpotDistance))
	BuildBlindSpotRegion(s.Ctx, SideLeft, &frame.LaneLines[1], blindspotOffset, barrierIdx, &s.LaneBlindSpotVertices[0])
	BuildBlindSpotRegion(s.Ctx, SideRight, &frame.LaneLines[2], blindspotOffset, barrierIdx, &s.LaneBlindSpotVertices[1])

	for i := range s.RoadEdgeVertices {
		s.RoadEdgeStds[i] = frame.RoadEdgeStds[i]
		BuildRibbon(s.Ctx, &frame.RoadEdges[i], edgeHalfWidth, 0, maxIdx, true, &s.RoadEdgeVertices[i])
	}

	BuildRibbon(s.Ctx, &frame.Position, pathHalfWidth, HeightOffset, maxIdx, false, &s.TrackVertices)

	s.DrawDistance = maxDistance
	s.MaxIndex = maxIdx
	s.lastPosition = frame.Position
	s.modelFrame = frame.FrameID
}

// UpdateLeads consumes a radar update. The lead state always feeds the next
// model update's draw distance, but lead markers are only reprojected when
// the radar data is newer than the last model frame, so stale radar cannot
// move markers on fresh geometry.
func (s *Scene) UpdateLeads(radar *model.RadarState) {
	s.leadOne = radar.LeadOne
	if s.modelFrame == 0 || radar.FrameID <= s.modelFrame {
		return
	}
	s.projectLeads(radar, &s.lastPosition)
}

// SetBlindSpots mirrors the car-state blind-spot monitor flags.
func (s *Scene) SetBlindSpots(left, right bool) {
	s.LeftBlindSpot = left
	s.RightBlindSpot = right
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moncler0578/OPENPILOT/internal/config"
	"github.com/moncler0578/OPENPILOT/internal/model"
)

func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrInt(v int) *int             { return &v }

func TestUpdateModelClampsDrawDistance(t *testing.T) {
	cfg := &config.VisualConfig{MaxDrawDistance: ptrFloat64(150)}
	s := New(cfg, 1164, 874)

	// Final sample at 300m, configured max 150, unlimited length disabled.
	frame := model.SynthFrame(model.SynthOptions{Spacing: 300.0 / 32})
	frame.FrameID = 1
	s.UpdateModel(frame)

	assert.Equal(t, 150.0, s.DrawDistance)
	assert.Equal(t, MaxIndexWithin(&frame.Position, 150), s.MaxIndex)
}

func TestUpdateModelClampsToMinimum(t *testing.T) {
	s := New(nil, 1164, 874)

	// A model predicting only 3.2m ahead still draws the 10m minimum.
	frame := model.SynthFrame(model.SynthOptions{Spacing: 0.1})
	frame.FrameID = 1
	s.UpdateModel(frame)

	assert.Equal(t, 10.0, s.DrawDistance)
}

func TestUpdateModelUnlimitedLength(t *testing.T) {
	cfg := &config.VisualConfig{
		CustomRoadUI:    ptrBool(true),
		UnlimitedLength: ptrBool(true),
	}
	s := New(cfg, 1164, 874)

	frame := model.SynthFrame(model.SynthOptions{Spacing: 300.0 / 32})
	frame.FrameID = 1
	s.UpdateModel(frame)

	assert.Equal(t, 300.0, s.DrawDistance)
}

func TestUpdateModelLeadShrinksPath(t *testing.T) {
	s := New(nil, 1164, 874)

	s.UpdateLeads(&model.RadarState{
		FrameID: 1,
		LeadOne: model.LeadState{Status: true, DRel: 20},
	})

	frame := model.SynthFrame(model.SynthOptions{Spacing: 100.0 / 32})
	frame.FrameID = 2
	s.UpdateModel(frame)

	// clamp(2*20 - min(0.35*2*20, 10), 0, rawMax) = clamp(30, 0, 100)
	assert.Equal(t, 30.0, s.DrawDistance)

	// The shared index follows the shrunk distance for every line.
	require.Equal(t, MaxIndexWithin(&frame.Position, 30), s.MaxIndex)
	assert.LessOrEqual(t, s.TrackVertices.N, 2*(s.MaxIndex+1))
	assert.Positive(t, s.TrackVertices.N)
}

func TestUpdateModelRecordsConfidences(t *testing.T) {
	s := New(nil, 1164, 874)

	frame := model.SynthFrame(model.SynthOptions{StartX: 1})
	frame.FrameID = 1
	frame.LaneLineProbs = [4]float64{0.1, 0.9, 0.8, 0.2}
	frame.RoadEdgeStds = [2]float64{0.15, 0.45}
	s.UpdateModel(frame)

	assert.Equal(t, frame.LaneLineProbs, s.LaneLineProbs)
	assert.Equal(t, frame.RoadEdgeStds, s.RoadEdgeStds)
}

func TestUpdateModelBuildsAllBuffers(t *testing.T) {
	s := New(nil, 1164, 874)

	frame := model.SynthFrame(model.SynthOptions{StartX: 1})
	frame.FrameID = 1
	s.UpdateModel(frame)

	// Near samples of laterally distant lines clip even inside the margin,
	// so counts are bounded by, not equal to, two per sample.
	bound := 2 * (s.MaxIndex + 1)
	assert.Positive(t, s.TrackVertices.N, "path")
	assert.LessOrEqual(t, s.TrackVertices.N, bound, "path")
	assert.Zero(t, s.TrackVertices.N%2, "path count must be even")
	for i := range s.LaneLineVertices {
		assert.Positivef(t, s.LaneLineVertices[i].N, "lane line %d", i)
		assert.LessOrEqualf(t, s.LaneLineVertices[i].N, bound, "lane line %d", i)
		assert.Zerof(t, s.LaneLineVertices[i].N%2, "lane line %d count must be even", i)
	}
	for i := range s.RoadEdgeVertices {
		assert.Positivef(t, s.RoadEdgeVertices[i].N, "road edge %d", i)
		assert.LessOrEqualf(t, s.RoadEdgeVertices[i].N, bound, "road edge %d", i)
	}
	for i := range s.LaneBlindSpotVertices {
		assert.Positivef(t, s.LaneBlindSpotVertices[i].N, "blind spot %d", i)
	}
}

func TestUpdateModelBlindSpotBound(t *testing.T) {
	cfg := &config.VisualConfig{
		CustomRoadUI:    ptrBool(true),
		UnlimitedLength: ptrBool(true),
	}
	s := New(cfg, 1164, 874)

	// 10m spacing reaches 320m; the path may draw that far but the
	// blind-spot regions stop at 100m.
	frame := model.SynthFrame(model.SynthOptions{Spacing: 10, StartX: 1})
	frame.FrameID = 1
	s.UpdateModel(frame)

	require.Equal(t, model.TrajectorySize-1, s.MaxIndex)
	barrierIdx := MaxIndexWithin(&frame.Position, BlindSpotDistance)
	assert.Less(t, barrierIdx, s.MaxIndex)
	assert.LessOrEqual(t, s.LaneBlindSpotVertices[0].N, 2*(barrierIdx+1))
}

func TestUpdateModelCustomWidths(t *testing.T) {
	frame := model.SynthFrame(model.SynthOptions{StartX: 1})
	frame.FrameID = 1

	stock := New(nil, 1164, 874)
	stock.UpdateModel(frame)

	cfg := &config.VisualConfig{
		CustomRoadUI: ptrBool(true),
		PathWidth:    ptrInt(120),
	}
	custom := New(cfg, 1164, 874)
	custom.UpdateModel(frame)

	// Same counts, different spread: the custom path is wider than stock.
	require.Equal(t, stock.TrackVertices.N, custom.TrackVertices.N)
	stockSpread := stock.TrackVertices.V[stock.TrackVertices.N-1].X - stock.TrackVertices.V[0].X
	customSpread := custom.TrackVertices.V[custom.TrackVertices.N-1].X - custom.TrackVertices.V[0].X
	assert.Greater(t, customSpread, stockSpread)
}

func TestSetBlindSpots(t *testing.T) {
	s := New(nil, 1164, 874)
	s.SetBlindSpots(true, false)
	assert.True(t, s.LeftBlindSpot)
	assert.False(t, s.RightBlindSpot)
}

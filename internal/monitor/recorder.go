// Package monitor records per-frame geometry metrics from the visualization
// pipeline and renders them as time-series plots and an HTML report. It
// observes the scene after each update; it never feeds anything back into
// the geometry itself.
package monitor

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/moncler0578/OPENPILOT/internal/scene"
)

// FrameSample is one snapshot of the scene's output geometry.
type FrameSample struct {
	FrameIdx  int
	Timestamp time.Time

	DrawDistance float64
	MaxIndex     int

	PathVertices      int
	LaneVertices      [4]int
	BlindSpotVertices [2]int
	EdgeVertices      [2]int
	LeadVisible       [2]bool
}

// Recorder accumulates frame samples for one capture session. Each session
// gets a fresh UUID so plots and reports from different runs never collide.
type Recorder struct {
	mu        sync.Mutex
	enabled   bool
	outputDir string
	sessionID string

	samples   []FrameSample
	startTime time.Time
	frameIdx  int
}

// NewRecorder creates an enabled recorder writing into outputDir.
func NewRecorder(outputDir string) *Recorder {
	return &Recorder{
		enabled:   true,
		outputDir: outputDir,
		sessionID: uuid.NewString(),
	}
}

// SessionID returns the capture session identifier.
func (r *Recorder) SessionID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessionID
}

// SetEnabled toggles sampling without discarding accumulated data.
func (r *Recorder) SetEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = enabled
}

// Sample snapshots the scene's current output buffers. Call it once per
// completed update tick.
func (r *Recorder) Sample(s *scene.Scene) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.enabled {
		return
	}

	now := time.Now()
	if len(r.samples) == 0 {
		r.startTime = now
	}

	sample := FrameSample{
		FrameIdx:     r.frameIdx,
		Timestamp:    now,
		DrawDistance: s.DrawDistance,
		MaxIndex:     s.MaxIndex,
		PathVertices: s.TrackVertices.N,
	}
	for i := range s.LaneLineVertices {
		sample.LaneVertices[i] = s.LaneLineVertices[i].N
	}
	for i := range s.LaneBlindSpotVertices {
		sample.BlindSpotVertices[i] = s.LaneBlindSpotVertices[i].N
	}
	for i := range s.RoadEdgeVertices {
		sample.EdgeVertices[i] = s.RoadEdgeVertices[i].N
	}
	for i := range s.LeadVertices {
		sample.LeadVisible[i] = s.LeadVertices[i].Visible
	}

	r.samples = append(r.samples, sample)
	r.frameIdx++
}

// Samples returns a copy of the accumulated samples.
func (r *Recorder) Samples() []FrameSample {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]FrameSample, len(r.samples))
	copy(out, r.samples)
	return out
}

// Reset discards all samples and starts a new session.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = nil
	r.frameIdx = 0
	r.sessionID = uuid.NewString()
}

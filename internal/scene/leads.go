package scene

import (
	"github.com/moncler0578/OPENPILOT/internal/geom"
	"github.com/moncler0578/OPENPILOT/internal/model"
)

// LeadVertex is the projected marker for one tracked lead vehicle slot.
type LeadVertex struct {
	Point   geom.Point
	Visible bool
}

// projectLeads recomputes both lead markers from the current radar state and
// the ego path. The path height at the lead's longitudinal distance anchors
// the marker to the drawn road surface. An inactive slot clears its vertex
// and its radar-confirmed flag regardless of prior state.
func (s *Scene) projectLeads(radar *model.RadarState, path *model.Trajectory) {
	for i, lead := range radar.Leads() {
		if !lead.Status {
			s.LeadVertices[i] = LeadVertex{}
			s.LeadRadar[i] = false
			continue
		}
		z := path.Z[MaxIndexWithin(path, lead.DRel)]
		p, ok := Project(s.Ctx, lead.DRel, -lead.YRel, z+HeightOffset)
		s.LeadVertices[i] = LeadVertex{Point: p, Visible: ok}
		s.LeadRadar[i] = lead.Radar
	}
}

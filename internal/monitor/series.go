package monitor

// This file separates data transformation from chart rendering for improved
// testability: the renderers below consume prepared series only.

// Series is one named time series over frame indices.
type Series struct {
	Name   string    `json:"name"`
	Frames []int     `json:"frames"`
	Values []float64 `json:"values"`
}

// PrepareDrawDistanceSeries extracts the effective draw distance per frame.
func PrepareDrawDistanceSeries(samples []FrameSample) Series {
	s := Series{Name: "draw_distance"}
	for _, smp := range samples {
		s.Frames = append(s.Frames, smp.FrameIdx)
		s.Values = append(s.Values, smp.DrawDistance)
	}
	return s
}

// PrepareVertexSeries extracts per-frame vertex counts for the path, the
// summed lane lines, the summed road edges, and the summed blind-spot
// regions, in that order.
func PrepareVertexSeries(samples []FrameSample) []Series {
	path := Series{Name: "path_vertices"}
	lanes := Series{Name: "lane_line_vertices"}
	edges := Series{Name: "road_edge_vertices"}
	blind := Series{Name: "blind_spot_vertices"}

	for _, smp := range samples {
		laneSum, edgeSum, blindSum := 0, 0, 0
		for _, n := range smp.LaneVertices {
			laneSum += n
		}
		for _, n := range smp.EdgeVertices {
			edgeSum += n
		}
		for _, n := range smp.BlindSpotVertices {
			blindSum += n
		}

		for _, s := range []*Series{&path, &lanes, &edges, &blind} {
			s.Frames = append(s.Frames, smp.FrameIdx)
		}
		path.Values = append(path.Values, float64(smp.PathVertices))
		lanes.Values = append(lanes.Values, float64(laneSum))
		edges.Values = append(edges.Values, float64(edgeSum))
		blind.Values = append(blind.Values, float64(blindSum))
	}

	return []Series{path, lanes, edges, blind}
}

// PrepareLeadSeries extracts per-frame lead visibility (0 or 1) per slot.
func PrepareLeadSeries(samples []FrameSample) [2]Series {
	out := [2]Series{{Name: "lead_one_visible"}, {Name: "lead_two_visible"}}
	for _, smp := range samples {
		for i := range out {
			out[i].Frames = append(out[i].Frames, smp.FrameIdx)
			v := 0.0
			if smp.LeadVisible[i] {
				v = 1.0
			}
			out[i].Values = append(out[i].Values, v)
		}
	}
	return out
}

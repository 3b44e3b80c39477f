package monitor

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SavePlots renders the accumulated samples as PNG time series in the
// recorder's output directory: one plot for the draw distance and one for
// the vertex counts. Returns the number of plots written.
func (r *Recorder) SavePlots() (int, error) {
	samples := r.Samples()
	if len(samples) == 0 {
		return 0, fmt.Errorf("no samples recorded")
	}

	r.mu.Lock()
	outputDir := r.outputDir
	session := r.sessionID
	r.mu.Unlock()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create output dir: %w", err)
	}

	plotCount := 0

	pDist := plot.New()
	pDist.Title.Text = "Effective Draw Distance"
	pDist.X.Label.Text = "Frame"
	pDist.Y.Label.Text = "Distance (m)"
	if err := addSeriesLine(pDist, PrepareDrawDistanceSeries(samples)); err != nil {
		return plotCount, err
	}
	distFile := filepath.Join(outputDir, fmt.Sprintf("%s_draw_distance.png", session))
	if err := pDist.Save(14*vg.Inch, 6*vg.Inch, distFile); err != nil {
		return plotCount, fmt.Errorf("failed to save draw distance plot: %w", err)
	}
	plotCount++

	pVerts := plot.New()
	pVerts.Title.Text = "Polygon Vertex Counts"
	pVerts.X.Label.Text = "Frame"
	pVerts.Y.Label.Text = "Vertices"
	for _, s := range PrepareVertexSeries(samples) {
		if err := addSeriesLine(pVerts, s); err != nil {
			return plotCount, err
		}
	}
	vertsFile := filepath.Join(outputDir, fmt.Sprintf("%s_vertex_counts.png", session))
	if err := pVerts.Save(14*vg.Inch, 6*vg.Inch, vertsFile); err != nil {
		return plotCount, fmt.Errorf("failed to save vertex count plot: %w", err)
	}
	plotCount++

	Logf("[Recorder] Saved %d plots for session %s to %s", plotCount, session, outputDir)
	return plotCount, nil
}

func addSeriesLine(p *plot.Plot, s Series) error {
	pts := make(plotter.XYs, len(s.Values))
	for i := range s.Values {
		pts[i] = plotter.XY{X: float64(s.Frames[i]), Y: s.Values[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build line %q: %w", s.Name, err)
	}
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add(s.Name, line)
	return nil
}

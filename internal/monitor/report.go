package monitor

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteReport renders the accumulated samples as a standalone HTML report in
// the recorder's output directory and returns its path. The report is a
// plain file; nothing is served.
func (r *Recorder) WriteReport() (string, error) {
	samples := r.Samples()
	if len(samples) == 0 {
		return "", fmt.Errorf("no samples recorded")
	}

	r.mu.Lock()
	outputDir := r.outputDir
	session := r.sessionID
	r.mu.Unlock()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	frames := make([]int, len(samples))
	for i, s := range samples {
		frames[i] = s.FrameIdx
	}

	dist := charts.NewLine()
	dist.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Effective Draw Distance",
			Subtitle: fmt.Sprintf("session=%s frames=%d", session, len(samples)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	dist.SetXAxis(frames).AddSeries("draw_distance", lineData(PrepareDrawDistanceSeries(samples)))

	verts := charts.NewLine()
	verts.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{Title: "Polygon Vertex Counts"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	verts.SetXAxis(frames)
	for _, s := range PrepareVertexSeries(samples) {
		verts.AddSeries(s.Name, lineData(s))
	}

	leads := charts.NewLine()
	leads.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "320px"}),
		charts.WithTitleOpts(opts.Title{Title: "Lead Marker Visibility", Subtitle: time.Now().Format(time.RFC3339)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	leads.SetXAxis(frames)
	for _, s := range PrepareLeadSeries(samples) {
		leads.AddSeries(s.Name, lineData(s))
	}

	page := components.NewPage()
	page.AddCharts(dist, verts, leads)

	reportPath := filepath.Join(outputDir, fmt.Sprintf("%s_report.html", session))
	f, err := os.Create(reportPath)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return "", fmt.Errorf("render error: %w", err)
	}

	Logf("[Recorder] Wrote report for session %s to %s", session, reportPath)
	return reportPath, nil
}

func lineData(s Series) []opts.LineData {
	data := make([]opts.LineData, len(s.Values))
	for i, v := range s.Values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}

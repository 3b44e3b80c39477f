// Package main provides a replay tool for the visualization geometry
// pipeline. It synthesizes a short drive (curving road, hill crest, a lead
// vehicle closing in), runs the scene orchestrator frame by frame, and
// writes the monitor plots and HTML report for inspection.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/moncler0578/OPENPILOT/internal/config"
	"github.com/moncler0578/OPENPILOT/internal/model"
	"github.com/moncler0578/OPENPILOT/internal/monitor"
	"github.com/moncler0578/OPENPILOT/internal/scene"
)

// UIFreq is the scene update rate in Hz of the production scheduler; the
// replay reproduces its frame numbering without pacing in real time.
const UIFreq = 20

// Config holds configuration for the replay run.
type Config struct {
	Frames     int
	OutputDir  string
	ConfigPath string
	FrameW     int
	FrameH     int
	Pitch      float64
	LeadStart  float64
	LeadSpeed  float64
	Curvature  float64
	HillCrest  float64
	Verbose    bool
}

func main() {
	var cfg Config
	flag.IntVar(&cfg.Frames, "frames", 200, "number of frames to simulate")
	flag.StringVar(&cfg.OutputDir, "out", "scene-report", "output directory for plots and report")
	flag.StringVar(&cfg.ConfigPath, "config", "", "optional visual config JSON file")
	flag.IntVar(&cfg.FrameW, "frame-width", 1164, "framebuffer width in pixels")
	flag.IntVar(&cfg.FrameH, "frame-height", 874, "framebuffer height in pixels")
	flag.Float64Var(&cfg.Pitch, "pitch", 0.01, "calibration pitch in radians")
	flag.Float64Var(&cfg.LeadStart, "lead-start", 0, "initial lead distance in metres (0 disables the lead)")
	flag.Float64Var(&cfg.LeadSpeed, "lead-speed", -0.1, "lead closing rate in metres per frame")
	flag.Float64Var(&cfg.Curvature, "curvature", 0.0005, "peak lateral curvature of the synthetic road")
	flag.Float64Var(&cfg.HillCrest, "hill-crest", 0, "forward distance of a hill crest in metres (0 for flat)")
	flag.BoolVar(&cfg.Verbose, "v", false, "log per-frame geometry")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("[SceneReport] %v", err)
	}
}

func run(cfg Config) error {
	visual := config.EmptyVisualConfig()
	if cfg.ConfigPath != "" {
		loaded, err := config.LoadVisualConfig(cfg.ConfigPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		visual = loaded
	}

	s := scene.New(visual, cfg.FrameW, cfg.FrameH)
	s.Ctx.SetCalibration(0, cfg.Pitch, 0)

	rec := monitor.NewRecorder(cfg.OutputDir)
	log.Printf("[SceneReport] session %s: %d frames at %d Hz", rec.SessionID(), cfg.Frames, UIFreq)

	leadDist := cfg.LeadStart
	for i := 0; i < cfg.Frames; i++ {
		// Sweep the curvature so the run exercises both straights and bends.
		phase := float64(i) / float64(UIFreq)
		frame := model.SynthFrame(model.SynthOptions{
			StartX:    1,
			Curvature: cfg.Curvature * math.Sin(phase),
			HillCrest: cfg.HillCrest,
		})
		frame.FrameID = uint64(2*i + 1)
		s.UpdateModel(frame)

		if cfg.LeadStart > 0 {
			leadDist = math.Max(5, leadDist+cfg.LeadSpeed)
			s.UpdateLeads(&model.RadarState{
				FrameID: uint64(2*i + 2),
				LeadOne: model.LeadState{Status: true, DRel: leadDist, Radar: true},
			})
		}

		rec.Sample(s)
		if cfg.Verbose {
			log.Printf("[SceneReport] frame %d: draw=%.1fm idx=%d path=%d verts",
				i, s.DrawDistance, s.MaxIndex, s.TrackVertices.N)
		}
	}

	if _, err := rec.SavePlots(); err != nil {
		return fmt.Errorf("saving plots: %w", err)
	}
	reportPath, err := rec.WriteReport()
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Fprintf(os.Stdout, "report written to %s\n", reportPath)
	return nil
}

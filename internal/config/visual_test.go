package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmptyVisualConfigDefaults(t *testing.T) {
	cfg := EmptyVisualConfig()

	if got := cfg.GetPathHalfWidth(); math.Abs(got-0.9144) > 1e-9 {
		t.Errorf("GetPathHalfWidth() = %f, want 0.9144", got)
	}
	if got := cfg.GetLaneLineHalfWidth(); math.Abs(got-0.0508) > 1e-9 {
		t.Errorf("GetLaneLineHalfWidth() = %f, want 0.0508", got)
	}
	if got := cfg.GetRoadEdgeHalfWidth(); math.Abs(got-0.0254) > 1e-9 {
		t.Errorf("GetRoadEdgeHalfWidth() = %f, want 0.0254", got)
	}
	if cfg.GetCustomRoadUI() {
		t.Error("GetCustomRoadUI() = true, want false by default")
	}
	if cfg.GetUnlimitedLength() {
		t.Error("GetUnlimitedLength() = true, want false by default")
	}
	if cfg.GetMinDrawDistance() != 10 || cfg.GetMaxDrawDistance() != 100 {
		t.Errorf("draw distance clamp = [%f, %f], want [10, 100]",
			cfg.GetMinDrawDistance(), cfg.GetMaxDrawDistance())
	}
}

func TestUnlimitedLengthRequiresCustomUI(t *testing.T) {
	on := true
	cfg := &VisualConfig{UnlimitedLength: &on}
	if cfg.GetUnlimitedLength() {
		t.Error("unlimited length should be ignored without custom road UI")
	}
	cfg.CustomRoadUI = &on
	if !cfg.GetUnlimitedLength() {
		t.Error("unlimited length should be honoured with custom road UI")
	}
}

func TestLoadVisualConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "visual.json")

	testJSON := `{
  "path_width": 80,
  "lane_lines_width": 6,
  "custom_road_ui": true,
  "max_draw_distance": 150
}`
	if err := os.WriteFile(configPath, []byte(testJSON), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadVisualConfig(configPath)
	if err != nil {
		t.Fatalf("LoadVisualConfig() error: %v", err)
	}

	if got := cfg.GetPathHalfWidth(); math.Abs(got-80.0/10*0.1524) > 1e-9 {
		t.Errorf("GetPathHalfWidth() = %f, want %f", got, 80.0/10*0.1524)
	}
	if got := cfg.GetLaneLineHalfWidth(); math.Abs(got-6.0/12*0.1524) > 1e-9 {
		t.Errorf("GetLaneLineHalfWidth() = %f, want %f", got, 6.0/12*0.1524)
	}
	if !cfg.GetCustomRoadUI() {
		t.Error("GetCustomRoadUI() = false, want true")
	}
	if cfg.GetMaxDrawDistance() != 150 {
		t.Errorf("GetMaxDrawDistance() = %f, want 150", cfg.GetMaxDrawDistance())
	}
	// Omitted fields keep their defaults.
	if cfg.GetMinDrawDistance() != 10 {
		t.Errorf("GetMinDrawDistance() = %f, want default 10", cfg.GetMinDrawDistance())
	}
}

func TestLoadVisualConfigRejectsNonJSON(t *testing.T) {
	if _, err := LoadVisualConfig("visual.yaml"); err == nil {
		t.Error("expected error for non-JSON extension")
	}
}

func TestValidateRejectsNegativeWidth(t *testing.T) {
	w := -1
	cfg := &VisualConfig{PathWidth: &w}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative path_width")
	}
}

func TestValidateRejectsInvertedClamp(t *testing.T) {
	lo, hi := 50.0, 20.0
	cfg := &VisualConfig{MinDrawDistance: &lo, MaxDrawDistance: &hi}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error when min_draw_distance exceeds max_draw_distance")
	}
}

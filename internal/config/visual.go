// Package config loads the visualization tuning parameters. The schema is a
// flat JSON object; fields omitted from the file keep their defaults, so
// partial configs are safe. Persisting changes back to disk is out of scope
// for this package.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// laneWidthUnit converts the stored width integers to metres. Widths are
// stored as small integers (tenths or twelfths of a half foot) to match the
// values exposed by the tuning UI.
const laneWidthUnit = 0.1524

// VisualConfig represents the root configuration for the path visualization.
type VisualConfig struct {
	// Geometry widths (stored integers; see the Get* accessors for the
	// derived half-widths in metres)
	PathWidth          *int `json:"path_width,omitempty"`
	LaneLinesWidth     *int `json:"lane_lines_width,omitempty"`
	RoadEdgesWidth     *int `json:"road_edges_width,omitempty"`
	BlindspotLineWidth *int `json:"blindspot_line_width,omitempty"`

	// Feature flags
	CustomRoadUI     *bool `json:"custom_road_ui,omitempty"`
	UnlimitedLength  *bool `json:"unlimited_length,omitempty"`
	EnableWideCamera *bool `json:"enable_wide_camera,omitempty"`

	// Draw distance clamp (metres)
	MinDrawDistance *float64 `json:"min_draw_distance,omitempty"`
	MaxDrawDistance *float64 `json:"max_draw_distance,omitempty"`
}

// EmptyVisualConfig returns a VisualConfig with all fields unset. Every Get*
// accessor falls back to its default, so the empty config is fully usable.
func EmptyVisualConfig() *VisualConfig {
	return &VisualConfig{}
}

// LoadVisualConfig loads a VisualConfig from a JSON file.
// The file is validated to ensure it has a .json extension and is under the
// max file size.
func LoadVisualConfig(path string) (*VisualConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyVisualConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *VisualConfig) Validate() error {
	for name, v := range map[string]*int{
		"path_width":           c.PathWidth,
		"lane_lines_width":     c.LaneLinesWidth,
		"road_edges_width":     c.RoadEdgesWidth,
		"blindspot_line_width": c.BlindspotLineWidth,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s must be non-negative, got %d", name, *v)
		}
	}

	if c.MinDrawDistance != nil && *c.MinDrawDistance < 0 {
		return fmt.Errorf("min_draw_distance must be non-negative, got %f", *c.MinDrawDistance)
	}
	if c.GetMinDrawDistance() > c.GetMaxDrawDistance() {
		return fmt.Errorf("min_draw_distance %f exceeds max_draw_distance %f",
			c.GetMinDrawDistance(), c.GetMaxDrawDistance())
	}

	return nil
}

// GetPathHalfWidth returns the rendered path half-width in metres.
func (c *VisualConfig) GetPathHalfWidth() float64 {
	if c.PathWidth == nil {
		return 60.0 / 10 * laneWidthUnit
	}
	return float64(*c.PathWidth) / 10 * laneWidthUnit
}

// GetLaneLineHalfWidth returns the lane line half-width in metres, before
// scaling by per-line confidence.
func (c *VisualConfig) GetLaneLineHalfWidth() float64 {
	if c.LaneLinesWidth == nil {
		return 4.0 / 12 * laneWidthUnit
	}
	return float64(*c.LaneLinesWidth) / 12 * laneWidthUnit
}

// GetRoadEdgeHalfWidth returns the road edge half-width in metres.
func (c *VisualConfig) GetRoadEdgeHalfWidth() float64 {
	if c.RoadEdgesWidth == nil {
		return 2.0 / 12 * laneWidthUnit
	}
	return float64(*c.RoadEdgesWidth) / 12 * laneWidthUnit
}

// GetBlindspotLineWidth returns the blind-spot region offset in metres.
func (c *VisualConfig) GetBlindspotLineWidth() float64 {
	if c.BlindspotLineWidth == nil {
		return 33.0 / 10 * laneWidthUnit
	}
	return float64(*c.BlindspotLineWidth) / 10 * laneWidthUnit
}

// GetCustomRoadUI returns whether configured widths override the stock ones.
func (c *VisualConfig) GetCustomRoadUI() bool {
	if c.CustomRoadUI == nil {
		return false
	}
	return *c.CustomRoadUI
}

// GetUnlimitedLength returns whether the draw distance clamp is disabled.
// Unlimited length is only honoured together with the custom road UI, the
// same gating the tuning UI applies.
func (c *VisualConfig) GetUnlimitedLength() bool {
	if c.UnlimitedLength == nil {
		return false
	}
	return c.GetCustomRoadUI() && *c.UnlimitedLength
}

// GetEnableWideCamera returns whether the wide camera intrinsics are used.
func (c *VisualConfig) GetEnableWideCamera() bool {
	if c.EnableWideCamera == nil {
		return false
	}
	return *c.EnableWideCamera
}

// GetMinDrawDistance returns the lower draw distance clamp in metres.
func (c *VisualConfig) GetMinDrawDistance() float64 {
	if c.MinDrawDistance == nil {
		return 10.0
	}
	return *c.MinDrawDistance
}

// GetMaxDrawDistance returns the upper draw distance clamp in metres.
func (c *VisualConfig) GetMaxDrawDistance() float64 {
	if c.MaxDrawDistance == nil {
		return 100.0
	}
	return *c.MaxDrawDistance
}

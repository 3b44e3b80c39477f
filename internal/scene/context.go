// Package scene builds the per-frame screen geometry for the driving-path
// visualization: lane line and road edge ribbons, blind-spot regions, the
// planned path polygon, and lead vehicle markers. It consumes decoded model
// and radar updates together with the calibration and display transforms,
// and produces vertex buffers ready for a rendering layer.
//
// All computation is pure and synchronous; the caller guarantees updates do
// not overlap (the pipeline runs once per external tick).
package scene

import (
	"github.com/moncler0578/OPENPILOT/internal/camera"
	"github.com/moncler0578/OPENPILOT/internal/geom"
)

// ClipMargin is how far outside the framebuffer a projected point may fall
// and still be accepted. Slightly off-screen vertices are kept so polygons
// crossing the screen edge tessellate without gaps.
const ClipMargin = 500.0

// Context carries the shared read-only state needed to project a point in
// calibrated vehicle space into framebuffer space. It is owned by the
// visualization state and mutated only between frames by the calibration and
// display collaborators; projection passes never write to it.
type Context struct {
	// ViewFromCalib maps calibrated vehicle space into camera-view space.
	ViewFromCalib geom.Mat3
	// WideCamera selects the wide camera intrinsics.
	WideCamera bool
	// ScreenTransform maps full-frame image coordinates into framebuffer
	// pixels.
	ScreenTransform geom.Affine
	// FrameWidth and FrameHeight are the framebuffer dimensions.
	FrameWidth  int
	FrameHeight int
}

// NewContext returns a context with an uncalibrated (axis reorder only) view
// transform and an identity screen transform.
func NewContext(frameWidth, frameHeight int) *Context {
	return &Context{
		ViewFromCalib:   camera.ViewFromCalib(0, 0, 0),
		ScreenTransform: geom.IdentityAffine(),
		FrameWidth:      frameWidth,
		FrameHeight:     frameHeight,
	}
}

// SetCalibration rebuilds the view transform from fresh calibration angles.
func (c *Context) SetCalibration(roll, pitch, yaw float64) {
	c.ViewFromCalib = camera.ViewFromCalib(roll, pitch, yaw)
}

// clipRegion is the framebuffer rectangle expanded by ClipMargin.
func (c *Context) clipRegion() geom.Rect {
	return geom.RectFromSize(float64(c.FrameWidth), float64(c.FrameHeight)).Expand(ClipMargin)
}

// Project maps a point in calibrated vehicle space to the corresponding
// point in framebuffer space. It reports false when the point is behind the
// camera plane or falls outside the expanded clip region.
func Project(c *Context, x, y, z float64) (geom.Point, bool) {
	ep := c.ViewFromCalib.MulVec(geom.Vec3{X: x, Y: y, Z: z})
	kep := camera.Intrinsics(c.WideCamera).MulVec(ep)

	// Points at or behind the camera have no stable image-space pre-image.
	if kep.Z <= 0 {
		return geom.Point{}, false
	}

	p := c.ScreenTransform.Apply(geom.Point{X: kep.X / kep.Z, Y: kep.Y / kep.Z})
	if !c.clipRegion().Contains(p) {
		return geom.Point{}, false
	}
	return p, true
}

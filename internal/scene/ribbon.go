package scene

import (
	"github.com/moncler0578/OPENPILOT/internal/geom"
	"github.com/moncler0578/OPENPILOT/internal/model"
)

// BuildRibbon converts a centerline trajectory into a closed polygon spanning
// halfWidth either side of it, raised by zOff, using samples 0..maxIdx. A
// cross-section contributes only when both its left and right projections are
// visible.
//
// With allowInvert false, a cross-section whose left point lands lower on
// screen than the previously accepted one is dropped: wider ribbons crossing
// a hill crest would otherwise fold back over themselves and self-intersect.
//
// The output loop is all accepted left points in trajectory order followed by
// the right points in reverse order, so it can be filled directly.
func BuildRibbon(ctx *Context, line *model.Trajectory, halfWidth, zOff float64, maxIdx int, allowInvert bool, out *Polygon) {
	var left, right [model.TrajectorySize]geom.Point
	n := 0
	for i := 0; i <= maxIdx; i++ {
		l, lok := Project(ctx, line.X[i], line.Y[i]-halfWidth, line.Z[i]+zOff)
		r, rok := Project(ctx, line.X[i], line.Y[i]+halfWidth, line.Z[i]+zOff)
		if !lok || !rok {
			continue
		}
		if !allowInvert && n > 0 && l.Y > left[n-1].Y {
			continue
		}
		left[n], right[n] = l, r
		n++
	}

	out.setCount(2 * n)
	for i := 0; i < n; i++ {
		out.V[i] = left[i]
		out.V[2*n-i-1] = right[i]
	}
}

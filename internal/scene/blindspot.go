package scene

import "github.com/moncler0578/OPENPILOT/internal/model"

// Side selects which lateral half a blind-spot region occupies.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// BuildBlindSpotRegion converts a lane boundary trajectory into a one-sided
// filled region. Exactly one of the two boundary offsets is nonzero depending
// on side, producing an asymmetric wedge between the shifted boundary and the
// boundary itself.
//
// Unlike BuildRibbon, the two boundaries are accumulated independently: the
// offset boundary forward from 0 to maxIdx, then the zero-offset boundary
// backward from maxIdx to 0. Each visible point is appended on its own, and
// the pass order defines the polygon winding, so the region stays a single
// coherent loop. Reversing the passes would invert the fill.
func BuildBlindSpotRegion(ctx *Context, side Side, line *model.Trajectory, offset float64, maxIdx int, out *Polygon) {
	var nearOff, farOff float64
	if side == SideLeft {
		nearOff = offset
	} else {
		farOff = offset
	}

	n := 0
	for i := 0; i <= maxIdx; i++ {
		if p, ok := Project(ctx, line.X[i], line.Y[i]-nearOff, line.Z[i]); ok {
			out.V[n] = p
			n++
		}
	}
	for i := maxIdx; i >= 0; i-- {
		if p, ok := Project(ctx, line.X[i], line.Y[i]+farOff, line.Z[i]); ok {
			out.V[n] = p
			n++
		}
	}

	out.setCount(n)
}

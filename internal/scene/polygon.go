package scene

import (
	"fmt"

	"github.com/moncler0578/OPENPILOT/internal/geom"
	"github.com/moncler0578/OPENPILOT/internal/model"
)

// MaxPolygonPoints is the capacity of every output polygon: one left and one
// right vertex per trajectory sample.
const MaxPolygonPoints = 2 * model.TrajectorySize

// Polygon is a fixed-capacity vertex buffer holding one closed polygon.
// Buffers are overwritten in place each frame; only V[:N] is meaningful.
type Polygon struct {
	V [MaxPolygonPoints]geom.Point
	N int
}

// Points returns the populated vertex slice.
func (p *Polygon) Points() []geom.Point {
	return p.V[:p.N]
}

// setCount records the populated length. Exceeding capacity means a builder
// produced more vertices than two per trajectory sample, which cannot happen
// for well-formed input; failing loud beats rendering truncated
// safety-relevant geometry.
func (p *Polygon) setCount(n int) {
	if n > len(p.V) {
		panic(fmt.Sprintf("scene: polygon count %d exceeds capacity %d", n, len(p.V)))
	}
	p.N = n
}

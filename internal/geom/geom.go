// Package geom provides the small fixed-size vector and matrix types used by
// the visualization geometry pipeline. All types are plain values; operations
// allocate nothing and are safe to call from the per-frame hot path.
package geom

// Vec3 is a point or direction in 3D space.
// In vehicle/calibrated space the convention is x = forward, y = lateral
// (left negative), z = up.
type Vec3 struct {
	X, Y, Z float64
}

// Mat3 is a 3x3 matrix in row-major order.
type Mat3 [9]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// MulVec applies the matrix to a vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Mul returns the matrix product m * n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i*3+j] = m[i*3]*n[j] + m[i*3+1]*n[3+j] + m[i*3+2]*n[6+j]
		}
	}
	return out
}

// Point is a 2D point in screen/framebuffer space.
type Point struct {
	X, Y float64
}

// Affine is a 2D affine transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// IdentityAffine returns the identity transform.
func IdentityAffine() Affine {
	return Affine{A: 1, E: 1}
}

// Apply maps a point through the transform.
func (a Affine) Apply(p Point) Point {
	return Point{
		X: a.A*p.X + a.B*p.Y + a.C,
		Y: a.D*p.X + a.E*p.Y + a.F,
	}
}

// Rect is an axis-aligned rectangle, min-inclusive and max-inclusive.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// RectFromSize returns the rectangle spanning (0,0) to (w,h).
func RectFromSize(w, h float64) Rect {
	return Rect{MaxX: w, MaxY: h}
}

// Expand grows the rectangle by d on every side. A negative d shrinks it.
func (r Rect) Expand(d float64) Rect {
	return Rect{
		MinX: r.MinX - d,
		MinY: r.MinY - d,
		MaxX: r.MaxX + d,
		MaxY: r.MaxY + d,
	}
}

// Contains reports whether p lies within the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

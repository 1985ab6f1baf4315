package geom

import "math"

// Matrix is a 2D affine transformation [a, b, c, d, e, f] mapping
// (x, y) to (a*x + c*y + e, b*x + d*y + f).
type Matrix [6]float64

// Identity is the identity transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Translate returns a translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale returns a scale matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate returns a counter-clockwise rotation by the given angle in radians.
func Rotate(radians float64) Matrix {
	cos, sin := math.Cos(radians), math.Sin(radians)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// RotateDegrees returns a counter-clockwise rotation in degrees. Multiples
// of 90 are exact, so a quarter turn maps (1, 0) to exactly (0, 1).
func RotateDegrees(deg float64) Matrix {
	switch math.Mod(math.Mod(deg, 360)+360, 360) {
	case 0:
		return Identity
	case 90:
		return Matrix{0, 1, -1, 0, 0, 0}
	case 180:
		return Matrix{-1, 0, 0, -1, 0, 0}
	case 270:
		return Matrix{0, -1, 1, 0, 0, 0}
	}
	return Rotate(Radians(deg))
}

// Multiply returns m * other: other is applied first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[2]*other[1],
		m[1]*other[0] + m[3]*other[1],
		m[0]*other[2] + m[2]*other[3],
		m[1]*other[2] + m[3]*other[3],
		m[0]*other[4] + m[2]*other[5] + m[4],
		m[1]*other[4] + m[3]*other[5] + m[5],
	}
}

// Apply transforms p.
func (m Matrix) Apply(p Point) Point {
	return Point{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// ApplyAll transforms every point, returning a new slice.
func (m Matrix) ApplyAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = m.Apply(p)
	}
	return out
}

// Angle returns the rotation angle of m in degrees, assuming m is a
// rotation (possibly combined with uniform scale and translation).
func (m Matrix) Angle() float64 {
	return math.Atan2(m[1], m[0]) * 180 / math.Pi
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool { return m == Identity }

package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is a position in the plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// ParsePoint reads a point written as "x,y". Both coordinates must be
// finite numbers.
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("point %q: want x,y", s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil || !finite(x) || !finite(y) {
		return Point{}, fmt.Errorf("point %q: coordinates must be finite numbers", s)
	}
	return Point{x, y}, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Mirror reflects p across the vertical axis x = 0.
func (p Point) Mirror() Point { return Point{-p.X, p.Y} }

// Near reports whether p and q are within eps of each other on both axes.
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// ArcPoints samples n points along the elliptical arc centered at c with
// semi-axes rx and ry, from theta1 to theta2 degrees inclusive. Angles are
// interpolated linearly, so theta2 < theta1 walks the arc clockwise.
// n < 2 is treated as 2.
func ArcPoints(c Point, rx, ry, theta1, theta2 float64, n int) []Point {
	if n < 2 {
		n = 2
	}
	pts := make([]Point, n)
	step := (theta2 - theta1) / float64(n-1)
	for i := range pts {
		t := Radians(theta1 + step*float64(i))
		pts[i] = Point{c.X + rx*math.Cos(t), c.Y + ry*math.Sin(t)}
	}
	return pts
}

// ChordOffset returns the distance from the center of a circle of radius r
// to a chord whose half-length is half. It returns 0 when the chord does
// not fit inside the circle.
func ChordOffset(r, half float64) float64 {
	d := r*r - half*half
	if d <= 0 {
		return 0
	}
	return math.Sqrt(d)
}

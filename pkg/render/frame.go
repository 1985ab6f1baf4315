package render

import (
	"math"

	"github.com/matzehuels/rinkplot/pkg/geom"
	"github.com/matzehuels/rinkplot/pkg/rink"
)

// DefaultDPI is the output resolution used when none is given.
const DefaultDPI = 100

// Frame maps display coordinates to output pixels with the origin at the
// top left and y growing downwards.
type Frame struct {
	Width, Height float64 // pixels
	Scale         float64 // pixels per foot
	Matrix        geom.Matrix
}

// Frame returns the pixel frame for the scene at the given resolution.
// The horizontal limits fill the figure width; with equal aspect the
// vertical limits then fill the height as well.
func (s *Scene) Frame(dpi float64) Frame {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	w, h := s.Width*dpi, s.Height*dpi
	sx := w / s.XLim.Span()
	sy := h / s.YLim.Span()
	if s.EqualAspect {
		sy = sx
	}

	m := geom.Matrix{sx, 0, 0, -sy, -s.XLim.Lower * sx, s.YLim.Upper * sy}
	if s.Inverted {
		m = geom.Matrix{sx, 0, 0, sy, -s.XLim.Lower * sx, -s.YLim.Lower * sy}
	}
	return Frame{Width: w, Height: h, Scale: sx, Matrix: m}
}

// Size returns the frame size in whole pixels, at least 1x1.
func (f Frame) Size() (int, int) {
	return max(1, int(math.Round(f.Width))), max(1, int(math.Round(f.Height)))
}

// Path is a flattened shape in pixel coordinates.
type Path struct {
	Points []geom.Point
	Closed bool
	Fill   bool
}

// Number of samples for a full circle; arcs use a share of it.
const circleSegments = 96

// Outline flattens the item into a path in the frame's pixel space.
func Outline(it Item, f Frame) Path {
	m := f.Matrix.Multiply(it.Transform)
	s := it.Shape
	p := Path{Fill: s.Fill}

	switch s.Kind {
	case rink.KindRect:
		p.Points = []geom.Point{
			{X: s.X, Y: s.Y}, {X: s.X + s.W, Y: s.Y},
			{X: s.X + s.W, Y: s.Y + s.H}, {X: s.X, Y: s.Y + s.H},
		}
		p.Closed = true
	case rink.KindCircle:
		p.Points = geom.ArcPoints(geom.Pt(s.X, s.Y), s.R, s.R, 0, 360, circleSegments+1)
		p.Points = p.Points[:circleSegments]
		p.Closed = true
	case rink.KindArc:
		n := int(math.Ceil((s.Theta2-s.Theta1)/360*circleSegments)) + 1
		p.Points = geom.ArcPoints(geom.Pt(s.X, s.Y), s.W/2, s.H/2, s.Theta1, s.Theta2, n)
	case rink.KindPolygon:
		p.Points = s.Points
		p.Closed = true
	case rink.KindLine:
		p.Points = s.Points
	}
	p.Points = m.ApplyAll(p.Points)
	return p
}

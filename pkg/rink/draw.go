package rink

import "github.com/matzehuels/rinkplot/pkg/geom"

// Surface receives a rink drawing. Implementations typically record or
// rasterize shapes; see package render.
type Surface interface {
	// SetSize sets the figure size in inches.
	SetSize(width, height float64)
	// AddShape adds a shape given in rink coordinates together with the
	// transform that maps it to display coordinates.
	AddShape(s Shape, transform geom.Matrix)
	// SetLimits sets the visible display-coordinate window.
	SetLimits(x, y Range)
	// InvertY flips the vertical display axis so larger values are lower.
	InvertY()
	// SetEqualAspect requests one display unit to have the same length on
	// both axes.
	SetEqualAspect()
}

// Options configures a drawing.
type Options struct {
	Orientation Orientation
	X           RangeSpec
	Y           RangeSpec

	// Length is the figure size in inches along the rink's long axis.
	// Zero picks a default, see Compose.
	Length float64

	// Markers are extra dots in rink coordinates drawn above everything.
	Markers []geom.Point
}

// Plan is everything needed to draw a rink, computed up front.
type Plan struct {
	Viewport  Viewport    `json:"viewport"`
	Shapes    []Shape     `json:"shapes"`
	Transform geom.Matrix `json:"transform"`
}

// Build normalizes the ranges, composes the viewport and collects the
// shapes for opts.
func Build(opts Options) Plan {
	x := XAxis.Normalize(opts.X)
	y := YAxis.Normalize(opts.Y)

	shapes := Shapes()
	for _, m := range opts.Markers {
		shapes = append(shapes, Marker(m))
	}

	return Plan{
		Viewport:  Compose(x, y, opts.Orientation, opts.Length),
		Shapes:    shapes,
		Transform: opts.Orientation.Transform(),
	}
}

// Marker returns the overlay dot drawn for a point in rink coordinates.
func Marker(p geom.Point) Shape {
	return circle("marker", p.X, p.Y, DotRadius, Black, true, LayerOverlay, 0)
}

// Project maps a point in rink coordinates to display coordinates.
func (p Plan) Project(x, y float64) geom.Point {
	return p.Transform.Apply(geom.Pt(x, y))
}

// Replay draws the plan onto s.
func (p Plan) Replay(s Surface) {
	v := p.Viewport
	s.SetSize(v.FigureWidth, v.FigureHeight)
	s.SetEqualAspect()
	for _, shape := range p.Shapes {
		s.AddShape(shape, p.Transform)
	}
	s.SetLimits(v.XLim, v.YLim)
	if v.InvertY {
		s.InvertY()
	}
}

// Draw builds a plan for opts, replays it onto s and returns s.
func Draw[S Surface](s S, opts Options) S {
	Build(opts).Replay(s)
	return s
}

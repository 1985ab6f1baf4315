package render

import (
	"cmp"
	"slices"

	"github.com/matzehuels/rinkplot/pkg/geom"
	"github.com/matzehuels/rinkplot/pkg/rink"
)

// Item is one shape added to a scene together with its transform.
type Item struct {
	Shape     rink.Shape
	Transform geom.Matrix
}

// Scene records a rink drawing. It implements [rink.Surface].
type Scene struct {
	Width, Height float64 // inches
	XLim, YLim    rink.Range
	Inverted      bool
	EqualAspect   bool
	Items         []Item
}

// NewScene returns an empty scene.
func NewScene() *Scene { return &Scene{} }

func (s *Scene) SetSize(width, height float64) { s.Width, s.Height = width, height }

func (s *Scene) AddShape(shape rink.Shape, transform geom.Matrix) {
	s.Items = append(s.Items, Item{Shape: shape, Transform: transform})
}

func (s *Scene) SetLimits(x, y rink.Range) { s.XLim, s.YLim = x, y }

func (s *Scene) InvertY() { s.Inverted = true }

func (s *Scene) SetEqualAspect() { s.EqualAspect = true }

// Sorted returns the items in paint order: by layer, keeping insertion
// order within a layer.
func (s *Scene) Sorted() []Item {
	items := slices.Clone(s.Items)
	slices.SortStableFunc(items, func(a, b Item) int {
		return cmp.Compare(a.Shape.Layer, b.Shape.Layer)
	})
	return items
}

// Empty reports whether nothing has been drawn or the scene has no area.
func (s *Scene) Empty() bool {
	return len(s.Items) == 0 || s.Width <= 0 || s.Height <= 0 ||
		s.XLim.Span() <= 0 || s.YLim.Span() <= 0
}

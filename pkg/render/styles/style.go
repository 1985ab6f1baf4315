// Package styles defines the color palettes and stroke widths used by the
// output sinks.
package styles

import (
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/rinkplot/pkg/rink"
)

// Style maps rink colors to paint and sets stroke widths.
type Style struct {
	Name       string
	Background colorful.Color
	Palette    map[rink.Color]colorful.Color

	// Stroke widths in points. Lines are drawn thicker than outlines.
	LineWidth    float64
	OutlineWidth float64
}

// Color returns the paint for c. Unknown colors are painted black.
func (s Style) Color(c rink.Color) colorful.Color {
	if col, ok := s.Palette[c]; ok {
		return col
	}
	return colorful.Color{}
}

// Hex returns the paint for c as #rrggbb.
func (s Style) Hex(c rink.Color) string { return s.Color(c).Hex() }

// StrokeWidth returns the stroke width for shape in pixels at dpi.
func (s Style) StrokeWidth(shape rink.Shape, dpi float64) float64 {
	w := s.OutlineWidth
	if shape.Kind == rink.KindLine {
		w = s.LineWidth
	}
	return w * dpi / 72
}

func mustHex(h string) colorful.Color {
	c, err := colorful.Hex(h)
	if err != nil {
		panic(err)
	}
	return c
}

// Classic is the regulation palette.
func Classic() Style {
	return Style{
		Name:       "classic",
		Background: mustHex("#ffffff"),
		Palette: map[rink.Color]colorful.Color{
			rink.Red:       mustHex("#ff0000"),
			rink.Blue:      mustHex("#0000ff"),
			rink.Grey:      mustHex("#808080"),
			rink.LightBlue: mustHex("#add8e6"),
			rink.Black:     mustHex("#000000"),
		},
		LineWidth:    1.5,
		OutlineWidth: 1,
	}
}

// Mono is Classic reduced to greys of the same perceived lightness, for
// print.
func Mono() Style {
	s := Classic()
	s.Name = "mono"
	palette := make(map[rink.Color]colorful.Color, len(s.Palette))
	for name, c := range s.Palette {
		palette[name] = grey(c)
	}
	s.Palette = palette
	return s
}

func grey(c colorful.Color) colorful.Color {
	l, _, _ := c.Lab()
	return colorful.Lab(l, 0, 0).Clamped()
}

var registry = map[string]func() Style{
	"classic": Classic,
	"mono":    Mono,
}

// Lookup returns the style with the given name, case-insensitively.
func Lookup(name string) (Style, bool) {
	fn, ok := registry[strings.ToLower(name)]
	if !ok {
		return Style{}, false
	}
	return fn(), true
}

// Names lists the known style names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

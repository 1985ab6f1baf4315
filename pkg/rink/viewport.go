package rink

import (
	"fmt"
	"strings"

	"github.com/matzehuels/rinkplot/pkg/geom"
)

// Orientation selects whether the long axis of the rink runs across
// (Horizontal) or down (Vertical) the figure.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// MarshalText encodes the orientation by name.
func (o Orientation) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// UnmarshalText decodes an orientation name.
func (o *Orientation) UnmarshalText(b []byte) error {
	v, err := ParseOrientation(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// ParseOrientation accepts "horizontal" or "vertical" (and the single
// letters "h" and "v"), case-insensitively. The empty string is Horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "h", "horizontal":
		return Horizontal, nil
	case "v", "vertical":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("unknown orientation %q", s)
}

// Transform returns the rotation applied to every shape: the identity
// when horizontal, a counter-clockwise quarter turn when vertical.
func (o Orientation) Transform() geom.Matrix {
	if o == Vertical {
		return geom.RotateDegrees(90)
	}
	return geom.Identity
}

// Default figure lengths, in inches, along the rink's long axis.
const (
	DefaultFullLength    = 14.0
	DefaultPartialLength = 8.0
)

// Viewport is the normalized view of the rink for one drawing.
type Viewport struct {
	X           Range       `json:"x"`
	Y           Range       `json:"y"`
	Orientation Orientation `json:"orientation"`

	// Figure size in inches.
	FigureWidth  float64 `json:"figure_width"`
	FigureHeight float64 `json:"figure_height"`

	// Display limits. In vertical mode XLim shows the rink's y range and
	// YLim its x range, with the vertical display axis inverted.
	XLim    Range `json:"xlim"`
	YLim    Range `json:"ylim"`
	InvertY bool  `json:"invert_y"`
}

// Compose derives the figure size and display limits from normalized
// ranges. A length <= 0 picks a default: DefaultFullLength for a
// horizontal plot of the whole rink, DefaultPartialLength otherwise.
func Compose(x, y Range, o Orientation, length float64) Viewport {
	if length <= 0 {
		length = DefaultPartialLength
		if o == Horizontal && x == XAxis.Full() {
			length = DefaultFullLength
		}
	}

	v := Viewport{X: x, Y: y, Orientation: o}
	w, h := length, length*y.Span()/x.Span()
	if o == Vertical {
		w, h = h, w
		v.XLim, v.YLim = y, x
		v.InvertY = true
	} else {
		v.XLim, v.YLim = x, y
	}
	v.FigureWidth, v.FigureHeight = w, h
	return v
}

// Aspect returns FigureWidth / FigureHeight.
func (v Viewport) Aspect() float64 {
	if v.FigureHeight == 0 {
		return 0
	}
	return v.FigureWidth / v.FigureHeight
}

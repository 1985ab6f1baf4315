package rink

import (
	"fmt"
	"math"

	"github.com/matzehuels/rinkplot/pkg/geom"
)

// Kind identifies the primitive a Shape describes.
type Kind int

const (
	KindRect Kind = iota
	KindCircle
	KindArc
	KindPolygon
	KindLine
)

var kindNames = [...]string{"rect", "circle", "arc", "polygon", "line"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown shape kind %q", b)
}

// Color is a named marking color. Styles decide the actual paint.
type Color string

const (
	Red       Color = "red"
	Blue      Color = "blue"
	Grey      Color = "grey"
	LightBlue Color = "lightblue"
	Black     Color = "black"
)

// Draw order. Higher layers are painted later.
const (
	LayerCrease   = -1 // goal crease fill
	LayerMarkings = 0  // lines, dots and circles on the ice
	LayerOutlines = 1  // crease outline and goal lines
	LayerBoards   = 2  // boards and nets
	LayerOverlay  = 3  // caller supplied markers
)

// Shape is one immutable drawing primitive in rink coordinates.
//
// Field use depends on Kind:
//
//	KindRect     X, Y lower-left corner; W, H size
//	KindCircle   X, Y center; R radius
//	KindArc      X, Y center; W, H full width and height of the ellipse;
//	             Theta1 to Theta2 counter-clockwise, in degrees
//	KindPolygon  Points, closed
//	KindLine     Points, open polyline
type Shape struct {
	Name   string       `json:"name"`
	Kind   Kind         `json:"kind"`
	X      float64      `json:"x,omitempty"`
	Y      float64      `json:"y,omitempty"`
	W      float64      `json:"w,omitempty"`
	H      float64      `json:"h,omitempty"`
	R      float64      `json:"r,omitempty"`
	Theta1 float64      `json:"theta1,omitempty"`
	Theta2 float64      `json:"theta2,omitempty"`
	Points []geom.Point `json:"points,omitempty"`
	Color  Color        `json:"color"`
	Fill   bool         `json:"fill,omitempty"`
	Layer  int          `json:"layer"`
	Side   int          `json:"side,omitempty"`
}

// Center returns the point the shape is positioned around: the middle of
// a rectangle, the center of a circle or arc, and the centroid of the
// vertices of a polygon or line.
func (s Shape) Center() geom.Point {
	switch s.Kind {
	case KindRect:
		return geom.Pt(s.X+s.W/2, s.Y+s.H/2)
	case KindCircle, KindArc:
		return geom.Pt(s.X, s.Y)
	}
	if len(s.Points) == 0 {
		return geom.Point{}
	}
	var c geom.Point
	for _, p := range s.Points {
		c = c.Add(p)
	}
	n := float64(len(s.Points))
	return geom.Pt(c.X/n, c.Y/n)
}

func rect(name string, x, y, w, h float64, c Color, layer, side int) Shape {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return Shape{Name: name, Kind: KindRect, X: x, Y: y, W: w, H: h, Color: c, Fill: true, Layer: layer, Side: side}
}

func circle(name string, x, y, r float64, c Color, fill bool, layer, side int) Shape {
	return Shape{Name: name, Kind: KindCircle, X: x, Y: y, R: r, Color: c, Fill: fill, Layer: layer, Side: side}
}

// arc sweeps counter-clockwise from theta1 to theta2; theta2 is moved up
// by whole turns until it lies above theta1.
func arc(name string, x, y, w, h, theta1, theta2 float64, c Color, layer, side int) Shape {
	theta1 = math.Mod(theta1, 360)
	if theta1 < 0 {
		theta1 += 360
	}
	theta2 = math.Mod(theta2, 360)
	for theta2 <= theta1 {
		theta2 += 360
	}
	return Shape{Name: name, Kind: KindArc, X: x, Y: y, W: w, H: h, Theta1: theta1, Theta2: theta2, Color: c, Layer: layer, Side: side}
}

func line(name string, x1, y1, x2, y2 float64, c Color, layer, side int) Shape {
	return Shape{Name: name, Kind: KindLine, Points: []geom.Point{{X: x1, Y: y1}, {X: x2, Y: y2}}, Color: c, Layer: layer, Side: side}
}

// halfEllipse is a filled polygon following an elliptical arc, closed back
// to its first point.
func halfEllipse(name string, cx, cy, rx, ry, theta1, theta2 float64, c Color, layer, side int) Shape {
	pts := geom.ArcPoints(geom.Pt(cx, cy), rx, ry, theta1, theta2, arcResolution)
	return Shape{Name: name, Kind: KindPolygon, Points: pts, Color: c, Fill: true, Layer: layer, Side: side}
}

// arcResolution is the number of samples in a filled half-ellipse.
const arcResolution = 50

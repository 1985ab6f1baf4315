// Package rink computes the geometry of an ice hockey rink diagram.
//
// Everything is expressed in the standard rink coordinate system: feet,
// origin at center ice, x along the length of the rink in [-100, 100] and
// y along its width in [-42.5, 42.5]. The package does not draw anything
// itself. It produces three things and hands them to a [Surface]:
//
//   - a normalized [Viewport] (which part of the rink to show and how big),
//   - the fixed catalog of [Shape] values returned by [Shapes],
//   - an orientation transform (identity or a quarter turn).
//
// # Display ranges
//
// Callers describe the visible part of each axis with a [RangeSpec]: a
// named preset ("half", "ozone"), a single lower bound, an explicit pair,
// or nothing. [Axis.Normalize] turns any of these into a [Range] and never
// fails; input it cannot make sense of falls back to the full axis.
//
//	x := rink.XAxis.Normalize(rink.Preset("ozone")) // {25 100}
//	y := rink.YAxis.Normalize(rink.RangeSpec{})     // {-42.5 42.5}
//
// # Drawing
//
// [Draw] replays a [Plan] onto any value implementing [Surface] and returns
// that same value, so no ambient figure state is involved:
//
//	scene := rink.Draw(render.NewScene(), rink.Options{
//	    Orientation: rink.Vertical,
//	    X:           rink.Preset("half"),
//	})
package rink

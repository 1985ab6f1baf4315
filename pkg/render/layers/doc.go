// Package layers renders the structure of a rink drawing as a diagram.
//
// # Overview
//
// A rink is painted in layers: crease fill first, then ice markings,
// outlines, boards and nets, and finally overlay markers. This package
// groups the shapes of a drawing by layer and marking name and lays the
// result out with Graphviz, which makes the paint order easy to check.
//
// # Usage
//
//	dot := layers.ToDOT(rink.Shapes(), layers.Options{Detailed: true})
//	svg, err := layers.RenderSVG(ctx, dot)
//
// Layer nodes are chained in paint order with dashed edges; each marking
// node shows its name and shape count and is filled with the marking color.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package layers

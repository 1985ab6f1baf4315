// Package geom provides the small amount of plane geometry rinkplot needs:
// points, 2D affine matrices, and sampled arcs.
//
// Everything here is a pure value type. Matrices use the same six-element
// layout as PDF and SVG transforms:
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// # Arcs
//
// [ArcPoints] samples an elliptical arc into an ordered sequence of points.
// It is used to build filled half-ellipses (the rounded back of a net, the
// cap of a goal crease) and by raster sinks that flatten curves:
//
//	pts := geom.ArcPoints(geom.Pt(84.5, 0), 2, 4, 90, 270, 50)
package geom

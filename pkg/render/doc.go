// Package render turns rink drawings into output files.
//
// # Overview
//
// The rink package only describes a drawing. This package provides the
// pieces that make it visible:
//
//   - [Scene], a recording [rink.Surface] that keeps every call so sinks can
//     replay it
//   - [Frame], the mapping from display coordinates to output pixels
//   - [Outline], which flattens any rink shape into a path in pixel space
//
// # Sinks
//
// The [sink] subpackage writes a scene as SVG, PNG or PDF, and a plan as
// JSON. Colors and line widths come from the [styles] subpackage.
//
//	scene := rink.Draw(render.NewScene(), rink.Options{X: rink.Preset("ozone")})
//	svg := sink.RenderSVG(scene, sink.WithStyle(styles.Classic()))
//
// # Layer Diagrams
//
// The [layers] subpackage renders the structure of the shape catalog, with
// markings grouped by draw layer, as a Graphviz diagram.
//
// [sink]: github.com/matzehuels/rinkplot/pkg/render/sink
// [styles]: github.com/matzehuels/rinkplot/pkg/render/styles
// [layers]: github.com/matzehuels/rinkplot/pkg/render/layers
package render

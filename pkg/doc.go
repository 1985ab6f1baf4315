// Package pkg provides the core libraries for Rinkplot rink diagrams.
//
// # Overview
//
// Rinkplot draws a regulation NHL rink as a stack of filled and stroked
// shapes. The pkg directory is organized into four main areas:
//
//  1. [rink] - Domain logic (dimensions, shape catalog, ranges, viewport)
//  2. [render] - Output (recording scene, styles, SVG/PNG/PDF/JSON sinks)
//  3. [pipeline] - Orchestration (validate → plan → render, with caching)
//  4. [cache] - Artifact storage (file, Redis, MongoDB)
//
// # Architecture
//
// The typical data flow:
//
//	Orientation + x/y ranges
//	         ↓
//	    [rink] package (plan: viewport + shapes in paint order)
//	         ↓
//	    [render] package (replay onto a scene)
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
//	scene := rink.Draw(render.NewScene(), rink.Options{
//	    Orientation: rink.Vertical,
//	    X:           rink.Preset("ozone"),
//	})
//	svg := sink.RenderSVG(scene, sink.WithStyle(styles.Classic()))
//
// With caching, as the CLI and server do:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{X: "half", Formats: []string{"png"}})
//
// # Other Packages
//
// [geom] - Points, affine matrices and arc helpers shared by every shape.
//
// [errors] - Coded errors (INVALID_FORMAT, INVALID_ORIENTATION, ...) that map to
// exit codes and HTTP statuses.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// [buildinfo] - Version metadata set at link time.
//
// [rink]: https://pkg.go.dev/github.com/matzehuels/rinkplot/pkg/rink
// [render]: https://pkg.go.dev/github.com/matzehuels/rinkplot/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/rinkplot/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/rinkplot/pkg/cache
// [geom]: https://pkg.go.dev/github.com/matzehuels/rinkplot/pkg/geom
// [errors]: https://pkg.go.dev/github.com/matzehuels/rinkplot/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/rinkplot/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/rinkplot/pkg/buildinfo
package pkg

// Package sink writes rink drawings in concrete output formats.
//
// # Formats
//
//   - [RenderSVG]: scalable vector graphics, written directly
//   - [RenderPNG]: raster image drawn with fogleman/gg
//   - [RenderPDF]: single page PDF drawn with seehuhn.de/go/pdf
//   - [RenderJSON]: the computed plan, for other renderers
//
// The image sinks take a [render.Scene] filled by [rink.Draw]. All of them
// paint items in layer order and take their colors from a
// [styles.Style], [styles.Classic] by default.
//
//	scene := rink.Draw(render.NewScene(), rink.Options{Orientation: rink.Vertical})
//	png, err := sink.RenderPNG(scene, sink.WithPNGDPI(200))
//
// [render.Scene]: github.com/matzehuels/rinkplot/pkg/render.Scene
// [rink.Draw]: github.com/matzehuels/rinkplot/pkg/rink.Draw
// [styles.Style]: github.com/matzehuels/rinkplot/pkg/render/styles.Style
// [styles.Classic]: github.com/matzehuels/rinkplot/pkg/render/styles.Classic
package sink

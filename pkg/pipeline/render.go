package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/matzehuels/rinkplot/pkg/render"
	"github.com/matzehuels/rinkplot/pkg/render/sink"
	"github.com/matzehuels/rinkplot/pkg/render/styles"
	"github.com/matzehuels/rinkplot/pkg/rink"
)

// Render generates output artifacts in the requested formats.
// planHash seeds the render ID written into JSON output so identical plans
// export identical documents.
func Render(ctx context.Context, p rink.Plan, planHash string, opts Options) (map[string][]byte, error) {
	return RenderFormats(ctx, p, planHash, opts, opts.Formats)
}

// RenderFormats renders only the listed formats. ctx is checked before each
// format; a format already being encoded runs to completion.
func RenderFormats(ctx context.Context, p rink.Plan, planHash string, opts Options, formats []string) (map[string][]byte, error) {
	style, ok := styles.Lookup(opts.Style)
	if !ok {
		return nil, ValidateStyle(opts.Style)
	}

	scene := render.NewScene()
	p.Replay(scene)

	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(scene, buildSVGOptions(style, opts)...)
		case FormatPNG:
			data, err = sink.RenderPNG(scene, buildPNGOptions(style, opts)...)
		case FormatPDF:
			data, err = sink.RenderPDF(scene, buildPDFOptions(style, opts)...)
		case FormatJSON:
			data, err = sink.RenderJSON(p,
				sink.WithJSONID(renderID(planHash)),
				sink.WithJSONStyle(style.Name))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func buildSVGOptions(style styles.Style, opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithStyle(style), sink.WithDPI(opts.DPI)}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	if opts.Transparent {
		svgOpts = append(svgOpts, sink.WithTransparent())
	}
	return svgOpts
}

func buildPNGOptions(style styles.Style, opts Options) []sink.PNGOption {
	pngOpts := []sink.PNGOption{sink.WithPNGStyle(style), sink.WithPNGDPI(opts.DPI)}
	if opts.Transparent {
		pngOpts = append(pngOpts, sink.WithPNGTransparent())
	}
	return pngOpts
}

func buildPDFOptions(style styles.Style, opts Options) []sink.PDFOption {
	pdfOpts := []sink.PDFOption{sink.WithPDFStyle(style)}
	if opts.Transparent {
		pdfOpts = append(pdfOpts, sink.WithPDFTransparent())
	}
	return pdfOpts
}

// renderID derives a stable UUID from the plan hash. Without a hash a
// random one is used.
func renderID(planHash string) uuid.UUID {
	if planHash == "" {
		return uuid.New()
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(planHash))
}

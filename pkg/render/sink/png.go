package sink

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/matzehuels/rinkplot/pkg/render"
	"github.com/matzehuels/rinkplot/pkg/render/styles"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	style       styles.Style
	dpi         float64
	transparent bool
}

// WithPNGStyle sets the palette.
func WithPNGStyle(s styles.Style) PNGOption {
	return func(r *pngRenderer) { r.style = s }
}

// WithPNGDPI sets the resolution (default 100, so a 14 inch figure is
// 1400 pixels wide).
func WithPNGDPI(dpi float64) PNGOption {
	return func(r *pngRenderer) { r.dpi = dpi }
}

// WithPNGTransparent leaves the background unpainted.
func WithPNGTransparent() PNGOption {
	return func(r *pngRenderer) { r.transparent = true }
}

// RenderPNG rasterizes the scene.
func RenderPNG(s *render.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{style: styles.Classic(), dpi: render.DefaultDPI}
	for _, opt := range opts {
		opt(&r)
	}
	if r.dpi <= 0 {
		r.dpi = render.DefaultDPI
	}

	f := s.Frame(r.dpi)
	w, h := f.Size()
	dc := gg.NewContext(w, h)
	if !r.transparent {
		dc.SetColor(r.style.Background)
		dc.Clear()
	}
	dc.SetLineCapButt()

	for _, it := range s.Sorted() {
		p := render.Outline(it, f)
		if len(p.Points) == 0 {
			continue
		}
		tracePath(dc, p)
		col := r.style.Color(it.Shape.Color)
		dc.SetColor(col)
		if p.Fill {
			dc.FillPreserve()
		}
		dc.SetLineWidth(r.style.StrokeWidth(it.Shape, r.dpi))
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func tracePath(dc *gg.Context, p render.Path) {
	dc.NewSubPath()
	dc.MoveTo(p.Points[0].X, p.Points[0].Y)
	for _, q := range p.Points[1:] {
		dc.LineTo(q.X, q.Y)
	}
	if p.Closed {
		dc.ClosePath()
	}
}

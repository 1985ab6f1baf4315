package sink

import (
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"github.com/matzehuels/rinkplot/pkg/render"
	"github.com/matzehuels/rinkplot/pkg/render/styles"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	style       styles.Style
	tempDir     string
	transparent bool
}

// WithPDFStyle sets the palette.
func WithPDFStyle(s styles.Style) PDFOption {
	return func(r *pdfRenderer) { r.style = s }
}

// WithPDFTransparent leaves the page unpainted behind the rink.
func WithPDFTransparent() PDFOption {
	return func(r *pdfRenderer) { r.transparent = true }
}

// WithPDFTempDir sets where the page is assembled before it is read back.
func WithPDFTempDir(dir string) PDFOption {
	return func(r *pdfRenderer) { r.tempDir = dir }
}

// pdfDPI makes one pixel of the frame one PDF point.
const pdfDPI = 72

// RenderPDF writes the scene as a single page PDF sized to the figure.
func RenderPDF(s *render.Scene, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{style: styles.Classic()}
	for _, opt := range opts {
		opt(&r)
	}

	dir, err := os.MkdirTemp(r.tempDir, "rinkplot-pdf-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "rink.pdf")

	f := s.Frame(pdfDPI)
	paper := &pdf.Rectangle{URx: f.Width, URy: f.Height}
	page, err := document.CreateSinglePage(path, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	if !r.transparent {
		page.SetFillColor(pdfColor(r.style.Background))
		page.Rectangle(0, 0, f.Width, f.Height)
		page.Fill()
	}

	// frame coordinates have their origin top left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, f.Height})

	for _, it := range s.Sorted() {
		p := render.Outline(it, f)
		if len(p.Points) == 0 {
			continue
		}
		col := pdfColor(r.style.Color(it.Shape.Color))
		page.SetStrokeColor(col)
		page.SetLineWidth(r.style.StrokeWidth(it.Shape, pdfDPI))

		if p.Fill {
			page.SetFillColor(col)
			tracePDF(page, p)
			page.Fill()
		}
		tracePDF(page, p)
		page.Stroke()
	}

	if err := page.Close(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

type pdfPath interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func tracePDF(page pdfPath, p render.Path) {
	page.MoveTo(p.Points[0].X, p.Points[0].Y)
	for _, q := range p.Points[1:] {
		page.LineTo(q.X, q.Y)
	}
	if p.Closed {
		page.ClosePath()
	}
}

func pdfColor(c colorful.Color) color.Color {
	c = c.Clamped()
	return color.DeviceRGB{c.R, c.G, c.B}
}

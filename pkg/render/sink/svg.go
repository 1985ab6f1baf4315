package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/rinkplot/pkg/geom"
	"github.com/matzehuels/rinkplot/pkg/render"
	"github.com/matzehuels/rinkplot/pkg/render/styles"
	"github.com/matzehuels/rinkplot/pkg/rink"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	dpi        float64
	background bool
	title      string
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithDPI(dpi float64) SVGOption      { return func(r *svgRenderer) { r.dpi = dpi } }
func WithTitle(t string) SVGOption       { return func(r *svgRenderer) { r.title = t } }

// WithTransparent leaves the background unpainted.
func WithTransparent() SVGOption { return func(r *svgRenderer) { r.background = false } }

// RenderSVG writes the scene as SVG. Shapes keep their rink coordinates
// inside one group per transform, so the file stays editable.
func RenderSVG(s *render.Scene, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	f := s.Frame(r.dpi)
	w, h := f.Size()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n", w, h, w, h)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(r.title))
	}
	if r.background {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.style.Background.Hex())
	}
	fmt.Fprintf(&buf, `  <clipPath id="view"><rect width="%d" height="%d"/></clipPath>`+"\n", w, h)
	buf.WriteString(`  <g clip-path="url(#view)">` + "\n")

	var open *geom.Matrix
	for _, it := range s.Sorted() {
		m := f.Matrix.Multiply(it.Transform)
		if open == nil || *open != m {
			if open != nil {
				buf.WriteString("    </g>\n")
			}
			fmt.Fprintf(&buf, `    <g transform="matrix(%s)">`+"\n", formatMatrix(m))
			open = &m
		}
		r.renderShape(&buf, it.Shape)
	}
	if open != nil {
		buf.WriteString("    </g>\n")
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Classic(), dpi: render.DefaultDPI, background: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.dpi <= 0 {
		r.dpi = render.DefaultDPI
	}
	return r
}

func (r *svgRenderer) renderShape(buf *bytes.Buffer, s rink.Shape) {
	paint := paintAttrs(r.style, s, r.dpi)
	fmt.Fprintf(buf, "      ")
	switch s.Kind {
	case rink.KindRect:
		fmt.Fprintf(buf, `<rect class="%s" x="%s" y="%s" width="%s" height="%s" %s/>`,
			s.Name, num(s.X), num(s.Y), num(s.W), num(s.H), paint)
	case rink.KindCircle:
		fmt.Fprintf(buf, `<circle class="%s" cx="%s" cy="%s" r="%s" %s/>`,
			s.Name, num(s.X), num(s.Y), num(s.R), paint)
	case rink.KindArc:
		fmt.Fprintf(buf, `<path class="%s" d="%s" %s/>`, s.Name, arcPath(s), paint)
	case rink.KindPolygon:
		fmt.Fprintf(buf, `<polygon class="%s" points="%s" %s/>`, s.Name, pointList(s.Points), paint)
	case rink.KindLine:
		fmt.Fprintf(buf, `<polyline class="%s" points="%s" %s/>`, s.Name, pointList(s.Points), paint)
	}
	buf.WriteByte('\n')
}

// paintAttrs fills and strokes in the shape color. Strokes do not scale
// with the group transform, so widths are given in pixels.
func paintAttrs(st styles.Style, s rink.Shape, dpi float64) string {
	col := st.Hex(s.Color)
	fill := "none"
	if s.Fill {
		fill = col
	}
	return fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="%s" vector-effect="non-scaling-stroke"`,
		fill, col, num(st.StrokeWidth(s, dpi)))
}

// arcPath draws the arc with SVG elliptical arc commands. Sweeps of a
// full turn are split in two since a single command cannot close a circle.
func arcPath(s rink.Shape) string {
	rx, ry := s.W/2, s.H/2
	at := func(deg float64) geom.Point {
		t := geom.Radians(deg)
		return geom.Pt(s.X+rx*math.Cos(t), s.Y+ry*math.Sin(t))
	}
	start := at(s.Theta1)
	d := fmt.Sprintf("M%s,%s", num(start.X), num(start.Y))
	sweep := s.Theta2 - s.Theta1
	from := s.Theta1
	for sweep > 0 {
		step := math.Min(sweep, 180)
		to := at(from + step)
		d += fmt.Sprintf(" A%s,%s 0 0 1 %s,%s", num(rx), num(ry), num(to.X), num(to.Y))
		from += step
		sweep -= step
	}
	return d
}

func pointList(pts []geom.Point) string {
	var b bytes.Buffer
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s,%s", num(p.X), num(p.Y))
	}
	return b.String()
}

func formatMatrix(m geom.Matrix) string {
	return fmt.Sprintf("%s %s %s %s %s %s", num(m[0]), num(m[1]), num(m[2]), num(m[3]), num(m[4]), num(m[5]))
}

// num formats with up to four decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("%g", v)
}

func escapeXML(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

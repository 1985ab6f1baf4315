package rink

import (
	"reflect"
	"sync"
	"testing"

	"github.com/matzehuels/rinkplot/pkg/geom"
)

type recorder struct {
	w, h     float64
	shapes   []Shape
	matrices []geom.Matrix
	xlim     Range
	ylim     Range
	inverted bool
	equal    bool
	calls    []string
}

func (r *recorder) SetSize(w, h float64) {
	r.w, r.h = w, h
	r.calls = append(r.calls, "size")
}

func (r *recorder) AddShape(s Shape, m geom.Matrix) {
	r.shapes = append(r.shapes, s)
	r.matrices = append(r.matrices, m)
}

func (r *recorder) SetLimits(x, y Range) {
	r.xlim, r.ylim = x, y
	r.calls = append(r.calls, "limits")
}

func (r *recorder) InvertY() {
	r.inverted = true
	r.calls = append(r.calls, "invert")
}

func (r *recorder) SetEqualAspect() {
	r.equal = true
	r.calls = append(r.calls, "aspect")
}

func TestDrawDefaults(t *testing.T) {
	r := Draw(&recorder{}, Options{})
	if r.xlim != (Range{-100, 100}) || r.ylim != (Range{-42.5, 42.5}) {
		t.Errorf("limits = %v %v", r.xlim, r.ylim)
	}
	if !near(r.w, 14) || !near(r.h, 5.95) {
		t.Errorf("size = %v x %v, want 14 x 5.95", r.w, r.h)
	}
	if r.inverted {
		t.Error("horizontal drawing should not invert")
	}
	if !r.equal {
		t.Error("equal aspect not requested")
	}
	if len(r.shapes) != len(Shapes()) {
		t.Errorf("drew %d shapes, want %d", len(r.shapes), len(Shapes()))
	}
	for _, m := range r.matrices {
		if !m.IsIdentity() {
			t.Fatalf("horizontal shape transform = %v", m)
		}
	}
}

func TestDrawOzoneHalf(t *testing.T) {
	r := Draw(&recorder{}, Options{X: Preset("ozone"), Y: Preset("half")})
	if r.xlim != (Range{25, 100}) || r.ylim != (Range{0, 42.5}) {
		t.Errorf("limits = %v %v", r.xlim, r.ylim)
	}
	if !near(r.w, 8) {
		t.Errorf("width = %v, want 8", r.w)
	}
}

func TestDrawVertical(t *testing.T) {
	r := Draw(&recorder{}, Options{Orientation: Vertical})
	if r.xlim != (Range{-42.5, 42.5}) || r.ylim != (Range{-100, 100}) {
		t.Errorf("limits = %v %v", r.xlim, r.ylim)
	}
	if !r.inverted {
		t.Error("vertical drawing should invert the y axis")
	}
	want := []string{"size", "aspect", "limits", "invert"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls = %v, want %v", r.calls, want)
	}
	for _, m := range r.matrices {
		if m != Vertical.Transform() {
			t.Fatalf("vertical shape transform = %v", m)
		}
	}
}

func TestOrientationInvariance(t *testing.T) {
	opts := Options{X: Between(-30, 90), Y: Preset("half")}
	h := Build(opts)
	opts.Orientation = Vertical
	v := Build(opts)
	if !reflect.DeepEqual(h.Shapes, v.Shapes) {
		t.Error("shape set depends on orientation")
	}
	if h.Viewport.X != v.Viewport.X || h.Viewport.Y != v.Viewport.Y {
		t.Error("normalized ranges depend on orientation")
	}
}

func TestPlanProject(t *testing.T) {
	tests := []struct {
		o    Orientation
		in   geom.Point
		want geom.Point
	}{
		{Horizontal, geom.Pt(89, 10), geom.Pt(89, 10)},
		{Vertical, geom.Pt(89, 10), geom.Pt(-10, 89)},
		{Vertical, geom.Pt(0, 0), geom.Pt(0, 0)},
	}
	for _, tt := range tests {
		p := Build(Options{Orientation: tt.o})
		if got := p.Project(tt.in.X, tt.in.Y); !got.Near(tt.want, 1e-12) {
			t.Errorf("%v Project(%v) = %v, want %v", tt.o, tt.in, got, tt.want)
		}
	}
}

func TestMarkers(t *testing.T) {
	p := Build(Options{Markers: []geom.Point{{X: 50, Y: -10}, {X: -80, Y: 5}}})
	n := len(p.Shapes)
	if n != len(Shapes())+2 {
		t.Fatalf("len(Shapes) = %d, want %d", n, len(Shapes())+2)
	}
	m := p.Shapes[n-2]
	if m.Layer != LayerOverlay || m.Kind != KindCircle || !m.Fill || m.Center() != geom.Pt(50, -10) {
		t.Errorf("unexpected marker %+v", m)
	}
}

func TestBuildConcurrent(t *testing.T) {
	opts := []Options{
		{},
		{Orientation: Vertical, X: Preset("ozone")},
		{X: ParseRangeSpec("10,60"), Y: Preset("half"), Length: 6},
	}
	want := make([]Plan, len(opts))
	for i, o := range opts {
		want[i] = Build(o)
	}

	var wg sync.WaitGroup
	got := make([]Plan, len(opts)*8)
	for i := range got {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = Build(opts[i%len(opts)])
		}()
	}
	wg.Wait()

	for i, p := range got {
		if !reflect.DeepEqual(p, want[i%len(opts)]) {
			t.Errorf("concurrent Build %d differs from serial result", i)
		}
	}
}

package sink

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/matzehuels/rinkplot/pkg/geom"
	"github.com/matzehuels/rinkplot/pkg/rink"
)

func TestRenderJSON(t *testing.T) {
	plan := rink.Build(rink.Options{
		Orientation: rink.Vertical,
		X:           rink.Preset("half"),
		Markers:     []geom.Point{{X: 60, Y: 10}},
	})
	data, err := RenderJSON(plan, WithJSONStyle("classic"))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if _, err := uuid.Parse(out.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", out.ID, err)
	}
	if out.Style != "classic" {
		t.Errorf("Style = %q", out.Style)
	}
	if out.Viewport.Orientation != rink.Vertical || !out.Viewport.InvertY {
		t.Errorf("viewport = %+v", out.Viewport)
	}
	if out.Viewport.X != (rink.Range{Lower: 0, Upper: 100}) {
		t.Errorf("viewport x = %v", out.Viewport.X)
	}
	if out.Transform != rink.Vertical.Transform() {
		t.Errorf("transform = %v", out.Transform)
	}
	if len(out.Shapes) != len(plan.Shapes) {
		t.Errorf("shapes = %d, want %d", len(out.Shapes), len(plan.Shapes))
	}
	if out.Layers[rink.LayerOverlay] != 1 {
		t.Errorf("overlay layer count = %d, want 1", out.Layers[rink.LayerOverlay])
	}
	total := 0
	for _, n := range out.Layers {
		total += n
	}
	if total != len(plan.Shapes) {
		t.Errorf("layer counts sum to %d, want %d", total, len(plan.Shapes))
	}
	if out.Shapes[0].Kind != rink.KindRect || out.Shapes[0].Name != "center-red-line" {
		t.Errorf("first shape = %+v", out.Shapes[0])
	}
}

func TestRenderJSONOptions(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	data, err := RenderJSON(rink.Build(rink.Options{}), WithJSONID(id), WithJSONCompact())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	if !strings.HasPrefix(string(data), `{"id":"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`) {
		t.Errorf("unexpected output: %.80s", data)
	}
	if strings.Contains(string(data), "\n") {
		t.Error("compact output contains newlines")
	}

	a, _ := RenderJSON(rink.Build(rink.Options{}))
	b, _ := RenderJSON(rink.Build(rink.Options{}))
	if string(a[:50]) == string(b[:50]) {
		t.Error("random IDs should differ")
	}
}

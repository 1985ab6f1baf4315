package sink

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/matzehuels/rinkplot/pkg/geom"
	"github.com/matzehuels/rinkplot/pkg/rink"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	id      uuid.UUID
	style   string
	compact bool
}

// WithJSONID sets the render ID. Without it a random one is generated.
func WithJSONID(id uuid.UUID) JSONOption { return func(r *jsonRenderer) { r.id = id } }

// WithJSONStyle records the style name for round-trip rendering.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONCompact disables indentation.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

type jsonOutput struct {
	ID        string        `json:"id"`
	Style     string        `json:"style,omitempty"`
	Viewport  rink.Viewport `json:"viewport"`
	Transform geom.Matrix   `json:"transform"`
	Layers    map[int]int   `json:"layers"`
	Shapes    []rink.Shape  `json:"shapes"`
}

// RenderJSON exports the plan: viewport, transform and every shape in rink
// coordinates, plus a shape count per layer.
func RenderJSON(p rink.Plan, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.id == uuid.Nil {
		r.id = uuid.New()
	}

	out := jsonOutput{
		ID:        r.id.String(),
		Style:     r.style,
		Viewport:  p.Viewport,
		Transform: p.Transform,
		Layers:    make(map[int]int),
		Shapes:    p.Shapes,
	}
	for _, s := range p.Shapes {
		out.Layers[s.Layer]++
	}

	if r.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}

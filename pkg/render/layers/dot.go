package layers

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/rinkplot/pkg/rink"
)

// Options configures layer diagram rendering.
type Options struct {
	// Detailed adds the primitive kinds and sides of each marking to its
	// label. When false, only the name and shape count are shown.
	Detailed bool
}

// Group is one marking on one layer: all shapes sharing a name.
type Group struct {
	Layer int         `json:"layer"`
	Name  string      `json:"name"`
	Color rink.Color  `json:"color"`
	Count int         `json:"count"`
	Kinds []rink.Kind `json:"kinds"`
	Sides []int       `json:"sides"`
}

// Groups collects shapes by layer and name, in paint order. Markings keep
// the order in which they first appear.
func Groups(shapes []rink.Shape) []Group {
	type key struct {
		layer int
		name  string
	}
	index := make(map[key]int)
	var groups []Group
	for _, s := range shapes {
		k := key{s.Layer, s.Name}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Layer: s.Layer, Name: s.Name, Color: s.Color})
		}
		g := &groups[i]
		g.Count++
		if !slices.Contains(g.Kinds, s.Kind) {
			g.Kinds = append(g.Kinds, s.Kind)
		}
		if !slices.Contains(g.Sides, s.Side) {
			g.Sides = append(g.Sides, s.Side)
		}
	}
	slices.SortStableFunc(groups, func(a, b Group) int { return cmp.Compare(a.Layer, b.Layer) })
	return groups
}

var layerNames = map[int]string{
	rink.LayerCrease:   "crease fill",
	rink.LayerMarkings: "ice markings",
	rink.LayerOutlines: "outlines",
	rink.LayerBoards:   "boards and nets",
	rink.LayerOverlay:  "overlay",
}

// ToDOT converts a shape list to Graphviz DOT format: one node per layer,
// chained in paint order, each pointing at the markings drawn on it.
// Marking nodes are filled with their marking color.
func ToDOT(shapes []rink.Shape, opts Options) string {
	groups := Groups(shapes)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	byLayer := make(map[int][]Group)
	for _, g := range groups {
		byLayer[g.Layer] = append(byLayer[g.Layer], g)
	}
	layers := slices.Sorted(maps.Keys(byLayer))

	for _, l := range layers {
		fmt.Fprintf(&buf, "  %q [label=%q, shape=folder, fillcolor=lightgrey];\n", layerID(l), layerLabel(l))
	}
	for i := 1; i < len(layers); i++ {
		fmt.Fprintf(&buf, "  %q -> %q [style=dashed, label=\"under\"];\n", layerID(layers[i-1]), layerID(layers[i]))
	}

	buf.WriteString("\n")
	for _, g := range groups {
		attrs := fmtAttrs(g, fmtLabel(g, opts.Detailed))
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(g), strings.Join(attrs, ", "))
		fmt.Fprintf(&buf, "  %q -> %q;\n", layerID(g.Layer), nodeID(g))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func layerID(l int) string { return fmt.Sprintf("layer%d", l) }

func nodeID(g Group) string { return fmt.Sprintf("%d/%s", g.Layer, g.Name) }

func layerLabel(l int) string {
	if name, ok := layerNames[l]; ok {
		return fmt.Sprintf("layer %d\n%s", l, name)
	}
	return fmt.Sprintf("layer %d", l)
}

func fmtLabel(g Group, detailed bool) string {
	label := fmt.Sprintf("%s x%d", g.Name, g.Count)
	if !detailed {
		return label
	}

	kinds := make([]string, len(g.Kinds))
	for i, k := range g.Kinds {
		kinds[i] = k.String()
	}
	sides := make([]string, len(g.Sides))
	for i, s := range g.Sides {
		sides[i] = strconv.Itoa(s)
	}
	return label + "\nkinds: " + strings.Join(kinds, ", ") + "\nsides: " + strings.Join(sides, ", ")
}

func fmtAttrs(g Group, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label), fmt.Sprintf("fillcolor=%q", string(g.Color))}
	switch g.Color {
	case rink.Red, rink.Blue, rink.Black, rink.Grey:
		attrs = append(attrs, "fontcolor=white")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// Package render turns an exported lattice snapshot into Graphviz DOT and
// SVG artifacts for visual inspection of the shared-suffix structure.
package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/wordlattice/wordlattice/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// RankByLevel groups nodes of equal level onto the same Graphviz rank,
	// so the drawing mirrors the BFS layering of the snapshot.
	RankByLevel bool
}

// ToDOT converts a snapshot to Graphviz DOT format. Character nodes are
// drawn as circles labeled with their character; the ROOT and END sentinels
// get a distinct double-circle shape. The resulting string can be rendered
// with [RenderSVG].
func ToDOT(g graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph lattice {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  n%d [%s];\n", n.ID, strings.Join(nodeAttrs(n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  n%d -> n%d;\n", e.Source, e.Target)
	}

	if opts.RankByLevel {
		buf.WriteString("\n")
		writeRanks(&buf, g)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n graph.Node) []string {
	attrs := []string{fmt.Sprintf("label=%q", n.Label)}
	if n.Label == graph.LabelRoot || n.Label == graph.LabelEnd {
		attrs = append(attrs, "shape=doublecircle", "fillcolor=lightgrey", "fontsize=12")
	}
	return attrs
}

func writeRanks(buf *bytes.Buffer, g graph.Graph) {
	byLevel := make(map[int][]int)
	maxLevel := 0
	for _, n := range g.Nodes {
		byLevel[n.Level] = append(byLevel[n.Level], n.ID)
		if n.Level > maxLevel {
			maxLevel = n.Level
		}
	}
	for level := 0; level <= maxLevel; level++ {
		ids := byLevel[level]
		if len(ids) == 0 {
			continue
		}
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = fmt.Sprintf("n%d", id)
		}
		fmt.Fprintf(buf, "  { rank=same; %s; }\n", strings.Join(parts, "; "))
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
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

// normalizeViewBox rewrites the Graphviz SVG header to a zero-origin
// viewBox with explicit pixel dimensions, which embeds cleanly in browsers.
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

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(header))
}

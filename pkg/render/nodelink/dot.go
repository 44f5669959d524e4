// Package nodelink renders a linkage as a traditional node-link graph.
//
// This is an alternative to the fixed-width arc diagram for embedding in
// web pages or documents: words appear as boxes in sentence order and
// each link as a labeled edge above them. The package produces Graphviz
// DOT source ([ToDOT]) and renders it in-process to SVG ([RenderSVG])
// with [github.com/goccy/go-graphviz].
//
// Word reconstruction and arc visibility follow the arc diagram: fused
// suffixes, suppressed walls, and empty-word links never appear here
// either.
package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/solversa/link-grammar/pkg/dict"
	"github.com/solversa/link-grammar/pkg/linkage"
	"github.com/solversa/link-grammar/pkg/render/diagram"
)

// ToDOT converts a linkage to Graphviz DOT format. The word boxes are
// chained left to right with invisible ordering edges so the sentence
// reads naturally; links are drawn as labeled curves above.
func ToDOT(lk *linkage.Linkage, m *dict.Markers, opts diagram.Options) (string, error) {
	l, err := diagram.Compute(lk, m, opts)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("digraph linkage {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  edge [fontsize=11];\n")
	buf.WriteString("\n")

	for w := l.First; w < l.NumPrint; w++ {
		label := l.Words[w]
		if label == "" {
			continue
		}
		fmt.Fprintf(&buf, "  w%d [label=%q];\n", w, label)
	}

	buf.WriteString("\n")
	prev := -1
	for w := l.First; w < l.NumPrint; w++ {
		if l.Words[w] == "" {
			continue
		}
		if prev >= 0 {
			fmt.Fprintf(&buf, "  w%d -> w%d [style=invis];\n", prev, w)
		}
		prev = w
	}

	buf.WriteString("\n")
	for _, arc := range l.Arcs {
		fmt.Fprintf(&buf, "  w%d -> w%d [label=%q, constraint=false];\n", arc.Left, arc.Right, arc.Label)
	}

	buf.WriteString("}\n")
	return buf.String(), nil
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

// normalizeViewBox rewrites the SVG root element so the graph anchors at
// origin, which keeps embedding markup simple.
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

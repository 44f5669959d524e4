// Package render provides the rendering pipeline for linkages.
//
// # Overview
//
// This package groups the renderers that turn a parsed linkage into
// output documents. All of them consume the immutable data model from
// [pkg/linkage] and the per-dictionary marker tables from [pkg/dict]:
//
//   - [diagram]: the fixed-width UTF-8 arc diagram and the layout
//     engine behind it (track packing, row wrapping)
//   - [postscript]: the PostScript document for the same layout
//   - [listing]: flat link/domain, disjunct, and word-sense listings
//   - [nodelink]: a Graphviz node-link view of the linkage
//
// # Shared layout decision
//
// The diagram and PostScript outputs must stay visually consistent for
// one sentence and width. [diagram.Compute] makes every layout decision
// exactly once (display words, arc track assignment, row breaks) and
// both serializers read the resulting [diagram.Layout] without
// recomputing anything:
//
//	lay, err := diagram.Compute(lk, dict.English(), diagram.DefaultOptions())
//	if err != nil { ... }
//	text := diagram.RenderASCII(lay)
//	ps := postscript.Render(lay, postscript.ModeDocument)
//
// # Concurrency
//
// A Layout belongs to one render call. Rendering different linkages is
// safe from any number of goroutines; nothing in this tree holds shared
// mutable state.
//
// [diagram]: github.com/solversa/link-grammar/pkg/render/diagram
// [postscript]: github.com/solversa/link-grammar/pkg/render/postscript
// [listing]: github.com/solversa/link-grammar/pkg/render/listing
// [nodelink]: github.com/solversa/link-grammar/pkg/render/nodelink
// [pkg/linkage]: github.com/solversa/link-grammar/pkg/linkage
// [pkg/dict]: github.com/solversa/link-grammar/pkg/dict
package render

// Package pkg provides the core libraries for linkage diagram rendering.
//
// # Overview
//
// lgrender draws completed parse results (linkages) as diagrams and
// listings. The pkg directory is organized into four main areas:
//
//  1. [linkage] - The immutable data model and its JSON interchange
//  2. [dict] - Per-dictionary marker tables (walls, suffixes, subscripts)
//  3. [render] - The renderers: arc diagram, PostScript, listings, graphs
//  4. [corpus], [cache], [server] - Collaborators: sense scoring,
//     artifact caching, and the HTTP surface
//
// # Architecture
//
// The typical data flow:
//
//	Parser output (linkage JSON)
//	         ↓
//	linkage.ReadLinkage → validated Linkage
//	         ↓
//	diagram.Compute → Layout (words, centers, tracks, row breaks)
//	         ↓
//	diagram.RenderASCII / postscript.Render / nodelink.ToDOT
//
// The layout is computed exactly once per render; every serializer
// reads the same Layout so the text and vector outputs never disagree.
//
// [linkage]: github.com/solversa/link-grammar/pkg/linkage
// [dict]: github.com/solversa/link-grammar/pkg/dict
// [render]: github.com/solversa/link-grammar/pkg/render
// [corpus]: github.com/solversa/link-grammar/pkg/corpus
// [cache]: github.com/solversa/link-grammar/pkg/cache
// [server]: github.com/solversa/link-grammar/pkg/server
package pkg

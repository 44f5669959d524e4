// Package listing renders the flat text listings that accompany a
// diagram: the link/domain table, the per-word disjunct table, and the
// word-sense annotations.
//
// Unlike the diagram renderers these are plain line-oriented reports
// with fixed-width columns. They share the word reconstruction rules
// with the diagram (wall display names, subscript stripping) but never
// compute a layout.
package listing

import (
	"fmt"
	"strings"

	"github.com/solversa/link-grammar/pkg/dict"
	"github.com/solversa/link-grammar/pkg/linkage"
	"github.com/solversa/link-grammar/pkg/render/diagram"
)

const (
	wordColumn      = 15
	connectorColumn = 5
)

// Links renders the link/domain listing: one line per non-removed link,
// the link's domain names in columns padded to the widest domain list,
// then a fixed-width rendering of the link itself. A postprocessor
// violation, if any, is reported in a trailing block.
func Links(lk *linkage.Linkage, m *dict.Markers, opts diagram.Options) string {
	words := diagram.DisplayWords(lk, m, opts)
	last := lk.NumWords() - 1

	longest := 0
	for _, link := range lk.Links {
		if link.Removed() {
			continue
		}
		if len(link.Domains) > longest {
			longest = len(link.Domains)
		}
	}

	var b strings.Builder
	for _, link := range lk.Links {
		if link.Removed() {
			continue
		}
		for _, d := range link.Domains {
			fmt.Fprintf(&b, " (%s)", d)
		}
		for j := len(link.Domains); j < longest; j++ {
			b.WriteString("    ")
		}
		b.WriteString("   ")

		leftWord := words[link.Left]
		if link.Left == 0 && lk.LeftWallDefined {
			leftWord = m.LeftWallDisplay
		} else if link.Left == last && lk.RightWallDefined {
			leftWord = m.RightWallDisplay
		}

		b.WriteString(overlay(leftWord, wordColumn, ' '))
		b.WriteString(overlay(link.LeftConnector, connectorColumn, ' '))
		b.WriteString("   <---")
		b.WriteString(overlay(link.Label, connectorColumn, '-'))
		b.WriteString("->  ")
		b.WriteString(overlay(link.RightConnector, connectorColumn, ' '))
		fmt.Fprintf(&b, "     %s\n", words[link.Right])
	}
	b.WriteString("\n")

	if lk.Violation != "" {
		b.WriteString("P.P. violations:\n")
		fmt.Fprintf(&b, "        %s\n\n", lk.Violation)
	}
	return b.String()
}

// overlay writes s over a column of width glyphs filled with pad,
// truncating s when it is longer than the column.
func overlay(s string, width int, pad rune) string {
	glyphs := []rune(s)
	if len(glyphs) > width {
		glyphs = glyphs[:width]
	}
	for len(glyphs) < width {
		glyphs = append(glyphs, pad)
	}
	return string(glyphs)
}

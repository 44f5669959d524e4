// Package postscript re-expresses a computed diagram layout as a
// PostScript document.
//
// The serializer does not draw anything itself. It emits three data
// arrays (the display words, the visible arcs with their track
// assignments, and the row-break indices) and wraps them in a fixed
// drawing-procedure template that interprets the data into curves and
// labels. Because the arrays come verbatim from [diagram.Layout], the
// vector output always breaks rows and stacks arcs exactly like the
// text diagram for the same sentence and width.
package postscript

import (
	"fmt"
	"strings"

	"github.com/solversa/link-grammar/pkg/render/diagram"
)

// Mode selects how much of the fixed template surrounds the data body.
type Mode int

const (
	// ModeBody emits only the generated data body.
	ModeBody Mode = iota

	// ModeDocument wraps the body in the full EPS header and trailer.
	ModeDocument
)

// Render serializes the layout. The data body lists, in order: the
// display words as a PostScript array of strings, the visible arcs as
// [left right track (label)] tuples in the parser's link order, and the
// row-start word indices of the shared row-break plan. Word indices are
// rebased so the first printed word is 0; arcs hidden by the layout
// engine (removed links, suppressed walls, empty-word and fused-suffix
// links) are absent here too.
func Render(l *diagram.Layout, mode Mode) string {
	var b strings.Builder
	if mode == ModeDocument {
		b.WriteString(header)
	}
	writeBody(&b, l)
	if mode == ModeDocument {
		b.WriteString(trailer)
	}
	return b.String()
}

func writeBody(b *strings.Builder, l *diagram.Layout) {
	b.WriteString("[")
	for i, w := 0, l.First; w < l.NumPrint; i, w = i+1, w+1 {
		if i%10 == 0 && i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "(%s)", l.Words[w])
	}
	b.WriteString("]\n")

	b.WriteString("[")
	for i, arc := range l.Arcs {
		if i%7 == 0 && i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "[%d %d %d (%s)]", arc.Left-l.First, arc.Right-l.First, arc.Row, arc.Label)
	}
	b.WriteString("]\n")

	b.WriteString("[")
	for i, start := range l.RowStarts {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(b, "%d", start)
	}
	b.WriteString("]\n")
}

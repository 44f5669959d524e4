// Package diagram implements the layout engine for fixed-width linkage
// diagrams and the UTF-8 text renderer on top of it.
//
// # Layout engine
//
// [Compute] turns a linkage into a [Layout] in five steps:
//
//  1. Reconstruct display words with [DisplayWords] (stem+suffix
//     fusion, subscript stripping, wall substitution).
//  2. Decide wall visibility from the arcs attaching to each boundary.
//  3. Derive per-word center columns under glyph (code point) widths.
//  4. Pack every arc into the lowest track row whose interior columns
//     are still free, drawing corners, rule, label, and vertical
//     connectors into a character grid.
//  5. Wrap the sentence into print-rows bounded by the screen width.
//
// The resulting Layout is the single source of truth for both the text
// renderer ([RenderASCII]) and the PostScript serializer; neither
// recomputes any positioning.
//
// # Track packing invariant
//
// Arcs are processed by increasing span. Each arc takes the first row,
// scanning upward from 0, in which every grid cell strictly between its
// endpoint columns is blank. Two arcs sharing a row therefore never
// overlap in interior columns (endpoints may touch), and no arc sits
// higher than it has to. A diagram whose packed height would exceed
// Options.MaxHeight physical lines aborts with DIAGRAM_TOO_TALL.
package diagram

import (
	"strings"
	"unicode"

	"github.com/solversa/link-grammar/pkg/dict"
	"github.com/solversa/link-grammar/pkg/errors"
	"github.com/solversa/link-grammar/pkg/linkage"
)

// Arc is one drawn arc with its final track assignment. Word indices
// are the linkage's own; subtract Layout.First for printed coordinates.
type Arc struct {
	Left, Right int
	Row         int
	Label       string
}

// PrintRow is one wrapped row of the diagram: the half-open word index
// range it covers and its total glyph width including separators.
type PrintRow struct {
	Start, End int
	Width      int
}

// Layout is the complete, immutable layout decision for one linkage
// render. It is produced by [Compute], owned by a single render call,
// and read by the text and PostScript serializers.
type Layout struct {
	// Words holds the display text of every linkage position.
	Words []string

	// Centers holds the center column of each printed word, in glyphs.
	Centers []int

	// ShowLeftWall and ShowRightWall record the wall policy decision.
	ShowLeftWall  bool
	ShowRightWall bool

	// First is the first printed word index: 0, or 1 when the left
	// wall is hidden. NumPrint is one past the last printed word.
	First    int
	NumPrint int

	// Grid is the packed track grid. Row 0 is the track nearest the
	// words; cells hold corner, rule, label, connector, or blank
	// glyphs. Renderers must treat it as read-only.
	Grid [][]rune

	// TopRow is the highest track row in use.
	TopRow int

	// Arcs lists the drawn arcs in the linkage's link order, with
	// their assigned rows. Hidden arcs (removed, wall-suppressed,
	// empty-word or fused-suffix links) do not appear.
	Arcs []Arc

	// Rows is the row-break plan shared by both renderers, and
	// RowStarts the same plan as printed-word start indices (the form
	// the PostScript template consumes).
	Rows      []PrintRow
	RowStarts []int

	// Opts is the resolved option bundle the layout was computed with.
	Opts Options
}

// Compute makes every layout decision for one linkage: display words,
// wall visibility, centers, arc track packing, and row wrapping. The
// only error condition besides an invalid linkage is a diagram taller
// than Opts.MaxHeight.
func Compute(lk *linkage.Linkage, m *dict.Markers, opts Options) (*Layout, error) {
	if err := lk.Validate(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	words := DisplayWords(lk, m, opts)
	showLeft, showRight := wallVisibility(lk, m, opts.ShowWalls)

	nPrint := lk.NumWords()
	if !showRight {
		nPrint--
	}
	first := 0
	if !showLeft {
		first = 1
	}
	if first >= nPrint {
		return nil, errors.New(errors.ErrCodeInvalidLinkage, "no words left to print")
	}

	centers := computeCenters(words, m, opts.HideSuffix, first, nPrint)
	lineLen := centers[nPrint-1] + 1

	l := &Layout{
		Words:         words,
		Centers:       centers,
		ShowLeftWall:  showLeft,
		ShowRightWall: showRight,
		First:         first,
		NumPrint:      nPrint,
		Grid:          [][]rune{blankRow(lineLen)},
		Opts:          opts,
	}

	if err := l.packArcs(lk, m); err != nil {
		return nil, err
	}
	l.wrapRows()
	return l, nil
}

// packArcs assigns every visible arc to a track, shortest spans first,
// and draws it into the grid.
func (l *Layout) packArcs(lk *linkage.Linkage, m *dict.Markers) error {
	last := lk.NumWords() - 1

	// Track assignment per link index; -1 marks a hidden link.
	rows := make([]int, len(lk.Links))
	for j := range rows {
		rows[j] = -1
	}

	for span := 1; span < l.NumPrint; span++ {
		for j := range lk.Links {
			arc := &lk.Links[j]
			if arc.Removed() || arc.Right-arc.Left != span {
				continue
			}
			if !l.ShowLeftWall && arc.Left == 0 {
				continue
			}
			if !l.ShowRightWall && arc.Right == last {
				continue
			}
			if arc.Label == m.EmptyWordSuppress {
				continue
			}
			if l.Opts.HideSuffix && strings.HasPrefix(arc.Label, m.SuffixLinkPrefix) {
				continue
			}

			cl, cr := l.Centers[arc.Left], l.Centers[arc.Right]
			row := l.findRow(cl, cr)

			// The packed grid doubles in height when interleaved with
			// connector rows; the hard limit is on physical lines.
			if 2*row+2 > l.Opts.MaxHeight-1 {
				return errors.New(errors.ErrCodeDiagramTooTall,
					"the diagram is too high: arc %s [%d,%d] needs track %d, limit is %d lines",
					arc.Label, arc.Left, arc.Right, row, l.Opts.MaxHeight)
			}

			l.drawArc(row, cl, cr, arc.Label)
			rows[j] = row
			if row > l.TopRow {
				l.TopRow = row
			}
		}
	}

	// Downstream consumers index arcs the way the parser emitted the
	// links, not in packing order.
	for j, link := range lk.Links {
		if rows[j] < 0 {
			continue
		}
		l.Arcs = append(l.Arcs, Arc{Left: link.Left, Right: link.Right, Row: rows[j], Label: link.Label})
	}
	return nil
}

// findRow returns the lowest row whose cells strictly between cl and cr
// are all blank, growing the grid when every existing row conflicts.
func (l *Layout) findRow(cl, cr int) int {
	for row := 0; ; row++ {
		if row == len(l.Grid) {
			l.Grid = append(l.Grid, blankRow(len(l.Grid[0])))
			return row
		}
		free := true
		for k := cl + 1; k < cr; k++ {
			if l.Grid[row][k] != ' ' {
				free = false
				break
			}
		}
		if free {
			return row
		}
	}
}

// drawArc marks the corners and rule of an arc, centers its label over
// the span, and backfills vertical connectors in the rows below.
func (l *Layout) drawArc(row, cl, cr int, label string) {
	g := l.Grid[row]
	g[cl] = '+'
	g[cr] = '+'
	for k := cl + 1; k < cr; k++ {
		g[k] = '-'
	}

	text := label
	if !l.Opts.ShowLinkSubscripts {
		text = leadingUpperRun(text)
	}
	glyphs := []rune(text)
	if len(glyphs) > maxLabelGlyphs {
		glyphs = glyphs[:maxLabelGlyphs]
	}

	// Center the label over the span, but never start left of the
	// first interior column.
	pos := (cl + cr + 2 - len(glyphs)) / 2
	if (cl+cr-len(glyphs))/2+1 <= cl {
		pos = cl + 1
	}
	for _, r := range glyphs {
		if pos >= len(g) || g[pos] != '-' {
			break
		}
		g[pos] = r
		pos++
	}

	// Connect arcs passing through these columns at lower levels
	// upward to this one.
	for k := 0; k < row; k++ {
		if l.Grid[k][cl] == ' ' {
			l.Grid[k][cl] = '|'
		}
		if l.Grid[k][cr] == ' ' {
			l.Grid[k][cr] = '|'
		}
	}
}

// wrapRows splits the printed words into rows bounded by the screen
// width: words accumulate at glyph width plus one separator until the
// next word would meet or exceed the budget. The plan is computed once
// and shared verbatim by the text and PostScript renderers.
func (l *Layout) wrapRows() {
	i := l.First
	for i < l.NumPrint {
		start := i
		width := glyphWidth(l.Words[i]) + 1
		i++
		for i < l.NumPrint && width+glyphWidth(l.Words[i])+1 < l.Opts.ScreenWidth {
			width += glyphWidth(l.Words[i]) + 1
			i++
		}
		l.Rows = append(l.Rows, PrintRow{Start: start, End: i, Width: width})
		l.RowStarts = append(l.RowStarts, start-l.First)
	}
}

func blankRow(n int) []rune {
	row := make([]rune, n)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// leadingUpperRun returns the leading run of upper-case glyphs, or ""
// when the text does not start with one.
func leadingUpperRun(s string) string {
	for i, r := range s {
		if !unicode.IsUpper(r) {
			return s[:i]
		}
	}
	return s
}

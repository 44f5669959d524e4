package diagram

// RenderASCII serializes a computed layout into the final text block.
//
// The picture is assembled from the word line upward: in normal mode a
// vertical-connector row is interleaved under every track row; in short
// mode a single collapsed connector row stands in for all of them. The
// picture is then emitted window by window following the shared
// row-break plan, slicing every line by the window's glyph width.
// Lines that are blank within a window are suppressed.
func RenderASCII(l *Layout) string {
	lines := expand(l)

	var b []rune
	offset := 0
	for _, row := range l.Rows {
		b = append(b, '\n')
		for i := len(lines) - 1; i >= 0; i-- {
			seg := slice(lines[i], offset, row.Width)
			if allBlank(seg) {
				continue
			}
			b = append(b, seg...)
			b = append(b, '\n')
		}
		b = append(b, '\n')
		offset += row.Width
	}
	return string(b)
}

// expand builds the printable picture: index 0 is the word line, higher
// indices are connector and track rows in display order bottom-up.
func expand(l *Layout) [][]rune {
	var wordLine []rune
	for i := l.First; i < l.NumPrint; i++ {
		wordLine = append(wordLine, []rune(l.Words[i])...)
		wordLine = append(wordLine, ' ')
	}

	lines := [][]rune{wordLine}

	if l.Opts.ShortDisplay {
		// One collapsed indicator row: a bar wherever the lowest track
		// has an endpoint or a connector passing through.
		lines = append(lines, connectorRow(l.Grid[0]))
		for row := 0; row <= l.TopRow; row++ {
			lines = append(lines, l.Grid[row])
		}
		return lines
	}

	for row := 0; row <= l.TopRow; row++ {
		lines = append(lines, connectorRow(l.Grid[row]), l.Grid[row])
	}
	return lines
}

// connectorRow derives the vertical-connector line shown under a track
// row: bars under corners and pass-through connectors, blanks elsewhere.
func connectorRow(track []rune) []rune {
	row := make([]rune, len(track))
	for k, r := range track {
		if r == '+' || r == '|' {
			row[k] = '|'
		} else {
			row[k] = ' '
		}
	}
	return row
}

func slice(line []rune, offset, width int) []rune {
	lo, hi := offset, offset+width
	if lo > len(line) {
		lo = len(line)
	}
	if hi > len(line) {
		hi = len(line)
	}
	return line[lo:hi]
}

func allBlank(seg []rune) bool {
	for _, r := range seg {
		if r != ' ' {
			return false
		}
	}
	return true
}

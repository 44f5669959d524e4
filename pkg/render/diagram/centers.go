package diagram

import (
	"unicode/utf8"

	"github.com/solversa/link-grammar/pkg/dict"
)

// glyphWidth measures a display string in glyphs: decodable code
// points, never bytes. All diagram positioning is in glyph units so
// multi-byte sentences line up with their arcs.
func glyphWidth(s string) int { return utf8.RuneCountInString(s) }

// computeCenters derives the horizontal center column of each printed
// word from cumulative glyph widths. Words before first (a hidden left
// wall) reserve no column at all. Under HideSuffix, a suffix token that
// survived unfused contributes no visible glyphs but still reserves its
// trailing separator column.
func computeCenters(words []string, m *dict.Markers, hideSuffix bool, first, nPrint int) []int {
	centers := make([]int, nPrint)
	tot := 0
	for i := first; i < nPrint; i++ {
		if hideSuffix && m.IsSuffix(words[i]) {
			centers[i] = tot
			tot++
			continue
		}
		w := glyphWidth(words[i])
		centers[i] = tot + w/2
		tot += w + 1
	}
	return centers
}

package diagram

import (
	"strings"
	"testing"

	"github.com/solversa/link-grammar/pkg/linkage"
)

func TestRenderASCIISimpleSentence(t *testing.T) {
	lk := &linkage.Linkage{
		Words: chosen("the", "cat", "ran"),
		Links: []linkage.Link{
			{Left: 0, Right: 1, Label: "Ds"},
			{Left: 1, Right: 2, Label: "Ss"},
		},
	}
	l := mustCompute(t, lk, DefaultOptions())

	want := "\n" +
		" +-Ds+-Ss+\n" +
		" |   |   |\n" +
		"the cat ran \n" +
		"\n"
	if got := RenderASCII(l); got != want {
		t.Errorf("RenderASCII() = %q, want %q", got, want)
	}
}

func TestRenderASCIISuppressesBlankRows(t *testing.T) {
	lk := &linkage.Linkage{
		Words: chosen("lonely", "words"),
	}
	l := mustCompute(t, lk, DefaultOptions())

	want := "\nlonely words \n\n"
	if got := RenderASCII(l); got != want {
		t.Errorf("RenderASCII() = %q, want %q", got, want)
	}
}

func TestRenderASCIIShortDisplay(t *testing.T) {
	lk := &linkage.Linkage{
		Words: chosen("a", "b", "c"),
		Links: []linkage.Link{
			{Left: 0, Right: 1, Label: "S"},
			{Left: 1, Right: 2, Label: "O"},
			{Left: 0, Right: 2, Label: "X"},
		},
	}

	normal := mustCompute(t, lk, DefaultOptions())
	opts := DefaultOptions()
	opts.ShortDisplay = true
	short := mustCompute(t, lk, opts)

	// Two track rows: normal mode shows a connector row per track,
	// short mode collapses them into a single indicator row.
	normalLines := strings.Count(RenderASCII(normal), "\n")
	shortLines := strings.Count(RenderASCII(short), "\n")
	if shortLines != normalLines-1 {
		t.Errorf("short display lines = %d, normal = %d, want exactly one fewer", shortLines, normalLines)
	}
}

func TestRenderASCIIWrapsRows(t *testing.T) {
	lk := &linkage.Linkage{
		Words: chosen("abcd", "efg", "hijkl", "mnopqr", "stuv"),
		Links: []linkage.Link{
			{Left: 0, Right: 1, Label: "A"},
			{Left: 3, Right: 4, Label: "B"},
		},
	}
	opts := DefaultOptions()
	opts.ScreenWidth = 20
	l := mustCompute(t, lk, opts)

	out := RenderASCII(l)

	// Two print-rows, separated by a blank line; the second starts
	// with the word that did not fit.
	if !strings.Contains(out, "abcd efg hijkl \n") {
		t.Errorf("output missing first print-row word line:\n%s", out)
	}
	if !strings.Contains(out, "mnopqr stuv \n") {
		t.Errorf("output missing second print-row word line:\n%s", out)
	}
	// Both word lines carry their own arc.
	if strings.Count(out, "+") != 4 {
		t.Errorf("output corner count = %d, want 4:\n%s", strings.Count(out, "+"), out)
	}
}

func TestRenderASCIIMultibyteAlignment(t *testing.T) {
	lk := &linkage.Linkage{
		Words: chosen("кот", "спал"),
		Links: []linkage.Link{{Left: 0, Right: 1, Label: "S"}},
	}
	l := mustCompute(t, lk, DefaultOptions())

	want := "\n" +
		" +--S-+\n" +
		" |    |\n" +
		"кот спал \n" +
		"\n"
	if got := RenderASCII(l); got != want {
		t.Errorf("RenderASCII() = %q, want %q", got, want)
	}
}

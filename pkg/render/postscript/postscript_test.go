package postscript

import (
	"strings"
	"testing"

	"github.com/solversa/link-grammar/pkg/dict"
	"github.com/solversa/link-grammar/pkg/linkage"
	"github.com/solversa/link-grammar/pkg/render/diagram"
)

func chosen(tokens ...string) []linkage.Word {
	words := make([]linkage.Word, len(tokens))
	for i, tok := range tokens {
		words[i] = linkage.Word{Token: tok, HasToken: true, Unsplit: tok}
	}
	return words
}

func layout(t *testing.T, lk *linkage.Linkage, opts diagram.Options) *diagram.Layout {
	t.Helper()
	l, err := diagram.Compute(lk, dict.English(), opts)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return l
}

func TestRenderBody(t *testing.T) {
	lk := &linkage.Linkage{
		Words: chosen("the", "cat", "ran"),
		Links: []linkage.Link{
			{Left: 0, Right: 1, Label: "Ds"},
			{Left: 1, Right: 2, Label: "Ss"},
		},
	}
	l := layout(t, lk, diagram.DefaultOptions())

	want := "[(the)(cat)(ran)]\n" +
		"[[0 1 0 (Ds)][1 2 0 (Ss)]]\n" +
		"[0]\n"
	if got := Render(l, ModeBody); got != want {
		t.Errorf("Render(ModeBody) = %q, want %q", got, want)
	}
}

func TestRenderDocumentWrapsBody(t *testing.T) {
	lk := &linkage.Linkage{
		Words: chosen("hello", "world"),
		Links: []linkage.Link{{Left: 0, Right: 1, Label: "Ss"}},
	}
	l := layout(t, lk, diagram.DefaultOptions())

	body := Render(l, ModeBody)
	doc := Render(l, ModeDocument)

	if !strings.HasPrefix(doc, "%!PS-Adobe-2.0 EPSF-1.2\n") {
		t.Errorf("document does not start with the EPS header: %q", doc[:40])
	}
	if !strings.HasSuffix(doc, "diagram\n\n%%EndDocument\n") {
		t.Errorf("document does not end with the trailer")
	}
	if !strings.Contains(doc, body) {
		t.Error("document does not embed the body verbatim")
	}
}

// Arcs hidden by the layout engine stay hidden in the vector output,
// and word indices are rebased when the left wall is suppressed.
func TestRenderSkipsHiddenArcs(t *testing.T) {
	lk := &linkage.Linkage{
		Words: chosen("LEFT-WALL", "hello", "world"),
		Links: []linkage.Link{
			{Left: 0, Right: 1, Label: "Wd", LeftConnector: "Wd"},
			{Left: 1, Right: 2, Label: "Ss", LeftConnector: "Ss"},
		},
		LeftWallDefined: true,
	}
	l := layout(t, lk, diagram.DefaultOptions())

	want := "[(hello)(world)]\n" +
		"[[0 1 0 (Ss)]]\n" +
		"[0]\n"
	if got := Render(l, ModeBody); got != want {
		t.Errorf("Render(ModeBody) = %q, want %q", got, want)
	}
}

func TestRenderBodyRowBreaks(t *testing.T) {
	lk := &linkage.Linkage{
		Words: chosen("abcd", "efg", "hijkl", "mnopqr", "stuv"),
	}
	opts := diagram.DefaultOptions()
	opts.ScreenWidth = 20
	l := layout(t, lk, opts)

	out := Render(l, ModeBody)
	if !strings.HasSuffix(out, "[0 3]\n") {
		t.Errorf("row-break array missing or wrong: %q", out)
	}
}

func TestRenderBodyWrapsLongArrays(t *testing.T) {
	lkWords := make([]linkage.Word, 12)
	for i := range lkWords {
		lkWords[i] = linkage.Word{Token: "w", HasToken: true}
	}
	var links []linkage.Link
	for i := 0; i < 11; i++ {
		links = append(links, linkage.Link{Left: i, Right: i + 1, Label: "L"})
	}
	l := layout(t, &linkage.Linkage{Words: lkWords, Links: links}, diagram.DefaultOptions())

	out := Render(l, ModeBody)
	lines := strings.Split(out, "\n")

	// 12 words break after the 10th, 11 arcs after the 7th.
	if lines[0] != "[(w)(w)(w)(w)(w)(w)(w)(w)(w)(w)" {
		t.Errorf("word array line 1 = %q", lines[0])
	}
	if lines[1] != "(w)(w)]" {
		t.Errorf("word array line 2 = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "[[0 1 0 (L)]") || !strings.HasSuffix(lines[2], "[6 7 0 (L)]") {
		t.Errorf("arc array line 1 = %q", lines[2])
	}
	if !strings.HasSuffix(lines[3], "[10 11 0 (L)]]") {
		t.Errorf("arc array line 2 = %q", lines[3])
	}
}

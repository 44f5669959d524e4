package diagram

import (
	"reflect"
	"testing"

	"github.com/solversa/link-grammar/pkg/dict"
	"github.com/solversa/link-grammar/pkg/linkage"
)

func chosen(tokens ...string) []linkage.Word {
	words := make([]linkage.Word, len(tokens))
	for i, tok := range tokens {
		words[i] = linkage.Word{Token: tok, HasToken: true, Unsplit: tok}
	}
	return words
}

func TestDisplayWords(t *testing.T) {
	m := dict.English()

	tests := []struct {
		name string
		lk   linkage.Linkage
		opts Options
		want []string
	}{
		{
			name: "subscripts stripped",
			lk:   linkage.Linkage{Words: chosen("the", "dog.n", "ran.v")},
			opts: DefaultOptions(),
			want: []string{"the", "dog", "ran"},
		},
		{
			name: "island word bracketed",
			lk: linkage.Linkage{Words: []linkage.Word{
				{Token: "a", HasToken: true},
				{Unsplit: "xyzzy"},
				{},
			}},
			opts: DefaultOptions(),
			want: []string{"a", "[xyzzy]", ""},
		},
		{
			name: "empty word suppressed",
			lk:   linkage.Linkage{Words: chosen("hey", "=.zzz")},
			opts: DefaultOptions(),
			want: []string{"hey", ""},
		},
		{
			name: "stem and suffix fused",
			lk:   linkage.Linkage{Words: chosen("happy.a", "=ing")},
			opts: Options{HideSuffix: true, ShowWordSubscripts: true},
			want: []string{"happying", ""},
		},
		{
			name: "suffix kept apart without hideSuffix",
			lk:   linkage.Linkage{Words: chosen("happy.a", "=ing")},
			opts: DefaultOptions(),
			want: []string{"happy", "=ing"},
		},
		{
			name: "null suffix fuses to the bare stem",
			lk:   linkage.Linkage{Words: chosen("vid.v", "=.xyz")},
			opts: Options{HideSuffix: true, ShowWordSubscripts: true},
			want: []string{"vid", ""},
		},
		{
			name: "splice skipped when stem has no subscript",
			lk:   linkage.Linkage{Words: chosen("happy", "=ing")},
			opts: Options{HideSuffix: true, ShowWordSubscripts: true},
			want: []string{"", "=ing"},
		},
		{
			name: "walls substituted",
			lk: linkage.Linkage{
				Words:            chosen("LEFT-WALL.x", "hello", "RIGHT-WALL.x"),
				LeftWallDefined:  true,
				RightWallDefined: true,
			},
			opts: DefaultOptions(),
			want: []string{"LEFT-WALL", "hello", "RIGHT-WALL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayWords(&tt.lk, m, tt.opts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DisplayWords() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Reconstruction is idempotent on suffix-free input: the display word
// is exactly the stripped chosen token.
func TestDisplayWordsIdempotent(t *testing.T) {
	m := dict.English()
	lk := linkage.Linkage{Words: chosen("quick.a", "brown", "fox.n")}

	plain := DisplayWords(&lk, m, DefaultOptions())
	fused := DisplayWords(&lk, m, Options{HideSuffix: true, ShowWordSubscripts: true})

	want := []string{"quick", "brown", "fox"}
	if !reflect.DeepEqual(plain, want) || !reflect.DeepEqual(fused, want) {
		t.Errorf("DisplayWords() = %q / %q, want %q in both modes", plain, fused, want)
	}
}

func TestComputeCenters(t *testing.T) {
	m := dict.English()

	// Widths 3, 3, 3: centers 1, 5, 9 with one separator column each.
	got := computeCenters([]string{"the", "cat", "ran"}, m, false, 0, 3)
	want := []int{1, 5, 9}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("computeCenters() = %v, want %v", got, want)
	}
}

func TestComputeCentersMultibyte(t *testing.T) {
	m := dict.English()

	// Cyrillic words measure in code points, not bytes.
	got := computeCenters([]string{"кот", "спал"}, m, false, 0, 2)
	want := []int{1, 6}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("computeCenters() = %v, want %v", got, want)
	}
}

func TestComputeCentersSuffixReservesSeparator(t *testing.T) {
	m := dict.English()

	// An unfused suffix contributes no glyphs but keeps its separator.
	got := computeCenters([]string{"ab", "=ing", "cd"}, m, true, 0, 3)
	want := []int{1, 3, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("computeCenters() = %v, want %v", got, want)
	}
}

func TestComputeCentersSkipsHiddenWall(t *testing.T) {
	m := dict.English()

	got := computeCenters([]string{"LEFT-WALL", "hi"}, m, false, 1, 2)
	if got[1] != 1 {
		t.Errorf("center[1] = %d, want 1 when position 0 is hidden", got[1])
	}
	if got[0] != 0 {
		t.Errorf("center[0] = %d, want 0 (unreserved)", got[0])
	}
}

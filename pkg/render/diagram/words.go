package diagram

import (
	"github.com/solversa/link-grammar/pkg/dict"
	"github.com/solversa/link-grammar/pkg/linkage"
)

// DisplayWords reconstructs the final display text for every word
// position of a linkage. The rules, applied per position:
//
//  1. An island word (no chosen token) shows its original surface word
//     in brackets, or nothing when no surface word is recorded.
//  2. A chosen token is stripped of its disambiguation subscript; the
//     empty-word placeholder renders as an empty string.
//  3. Under HideSuffix, a suffix token is spliced onto the previous
//     position's stem, replacing the stem's subscript tail, and the
//     suffix position renders empty. A stem without a subscript marker
//     cannot be spliced onto; the suffix is then left unfused.
//  4. Under HideSuffix, a stem directly followed by a suffix token
//     renders empty here, because rule 3 re-emits it fused when the
//     neighbor is processed.
//  5. Boundary positions take the dictionary's wall display names when
//     the walls are structurally defined, overriding everything above.
//
// The historical non-subscript token-selection branch was unreachable
// and is not carried; see Options.ShowWordSubscripts.
func DisplayWords(lk *linkage.Linkage, m *dict.Markers, opts Options) []string {
	n := lk.NumWords()
	words := make([]string, n)

	for i := range lk.Words {
		w := &lk.Words[i]

		var t string
		switch {
		case !w.HasToken:
			if w.Unsplit != "" {
				t = "[" + w.Unsplit + "]"
			}
		case w.Token == m.EmptyWord:
			t = ""
		default:
			t = m.StripSubscript(w.Token)
		}

		if opts.HideSuffix && w.HasToken {
			// The suffix predicate runs on the raw token, not the
			// stripped text: a null suffix like "=.xyz" strips down to
			// the bare marker, which alone is not a suffix, yet its stem
			// still has to be fused (with an empty suffix body).
			if m.IsSuffix(w.Token) && w.Token != m.EmptyWord && i > 0 && lk.Words[i-1].HasToken {
				stem := lk.Words[i-1].Token
				// A stem can lack a subscript marker when the sentence
				// happens to contain an equals sign for other reasons;
				// the splice is skipped and the suffix stays as is.
				if m.HasSubscript(stem) {
					words[i-1] = m.StripSubscript(stem) + m.SuffixBody(t)
					t = ""
				}
			}

			if i+1 < n && lk.Words[i+1].HasToken {
				next := lk.Words[i+1].Token
				if m.IsSuffix(next) && next != m.EmptyWord {
					t = ""
				}
			}
		}

		words[i] = t
	}

	if lk.LeftWallDefined {
		words[0] = m.LeftWallDisplay
	}
	if lk.RightWallDefined {
		words[n-1] = m.RightWallDisplay
	}
	return words
}

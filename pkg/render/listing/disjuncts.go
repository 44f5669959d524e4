package listing

import (
	"context"
	"fmt"
	"strings"

	"github.com/solversa/link-grammar/pkg/corpus"
	"github.com/solversa/link-grammar/pkg/linkage"
)

// Disjuncts renders the per-word disjunct table: one line per attached
// word between the walls with its subscripted token, disjunct cost, and
// disjunct string. With a scorer the line also carries the corpus score
// of the chosen disjunct. A nil scorer selects the score-free format.
func Disjuncts(ctx context.Context, lk *linkage.Linkage, scorer corpus.Scorer) (string, error) {
	var b strings.Builder
	for w := 1; w < lk.NumWords()-1; w++ {
		word := lk.Words[w]
		if !word.HasToken {
			continue
		}
		if scorer == nil {
			fmt.Fprintf(&b, "%21s    %5.1f  %s\n", word.Token, word.Cost, word.Disjunct)
			continue
		}
		score, err := scorer.DisjunctScore(ctx, word.Token, word.Disjunct)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%21s    %5.1f %6.3f %s\n", word.Token, word.Cost, score, word.Disjunct)
	}
	return b.String(), nil
}

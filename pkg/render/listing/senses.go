package listing

import (
	"context"
	"fmt"
	"strings"

	"github.com/solversa/link-grammar/pkg/corpus"
	"github.com/solversa/link-grammar/pkg/linkage"
)

// sensesDisabled is the whole listing when no scorer is configured.
const sensesDisabled = "Corpus statistics is not enabled in this version\n"

// Senses renders the word-sense annotations: one line per (word, sense)
// pair with the word's position, subscripted token, disjunct, sense tag,
// and score. Without a scorer the sense subsystem counts as disabled and
// a fixed placeholder is returned.
func Senses(ctx context.Context, lk *linkage.Linkage, scorer corpus.Scorer) (string, error) {
	if scorer == nil {
		return sensesDisabled, nil
	}

	var b strings.Builder
	for w, word := range lk.Words {
		if !word.HasToken {
			continue
		}
		senses, err := scorer.WordSenses(ctx, word.Token, word.Disjunct)
		if err != nil {
			return "", err
		}
		for _, sns := range senses {
			fmt.Fprintf(&b, "%d %s dj=%s sense=%s score=%f\n",
				w, word.Token, word.Disjunct, sns.Label, sns.Score)
		}
	}
	return b.String(), nil
}

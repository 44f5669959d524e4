package corpus

import (
	"context"
	"sort"
)

// StaticScorer serves corpus statistics from in-memory tables. Useful
// for testing or for small bundled corpora.
type StaticScorer struct {
	senses map[pairKey][]Sense
	scores map[pairKey]float64
}

type pairKey struct {
	word     string
	disjunct string
}

// NewStaticScorer builds a scorer over the given annotations. The
// disjunct score of a pair is the score of its best sense.
func NewStaticScorer(senses []Sense) *StaticScorer {
	s := &StaticScorer{
		senses: make(map[pairKey][]Sense),
		scores: make(map[pairKey]float64),
	}
	for _, sns := range senses {
		key := pairKey{word: sns.Word, disjunct: sns.Disjunct}
		s.senses[key] = append(s.senses[key], sns)
		if best, ok := s.scores[key]; !ok || sns.Score < best {
			s.scores[key] = sns.Score
		}
	}
	for _, list := range s.senses {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Score < list[j].Score })
	}
	return s
}

// DisjunctScore returns the best sense score for the pair, or
// UnknownScore when the tables have no entry.
func (s *StaticScorer) DisjunctScore(ctx context.Context, word, disjunct string) (float64, error) {
	score, ok := s.scores[pairKey{word: word, disjunct: disjunct}]
	if !ok {
		return UnknownScore, nil
	}
	return score, nil
}

// WordSenses returns the annotations for the pair, best score first.
func (s *StaticScorer) WordSenses(ctx context.Context, word, disjunct string) ([]Sense, error) {
	return s.senses[pairKey{word: word, disjunct: disjunct}], nil
}

// Close does nothing for the static scorer.
func (s *StaticScorer) Close(ctx context.Context) error {
	return nil
}

// Ensure StaticScorer implements Scorer.
var _ Scorer = (*StaticScorer)(nil)

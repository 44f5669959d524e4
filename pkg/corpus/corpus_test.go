package corpus

import (
	"context"
	"testing"
)

func TestStaticScorerDisjunctScore(t *testing.T) {
	s := NewStaticScorer([]Sense{
		{Word: "run.v", Disjunct: "Ss-", Label: "run%2:38:00", Score: 2.5},
		{Word: "run.v", Disjunct: "Ss-", Label: "run%2:30:07", Score: 1.2},
		{Word: "bank.n", Disjunct: "Ds-", Label: "bank%1:14:00", Score: 0.7},
	})
	ctx := context.Background()

	tests := []struct {
		word     string
		disjunct string
		want     float64
	}{
		{"run.v", "Ss-", 1.2},
		{"bank.n", "Ds-", 0.7},
		{"bank.n", "Os-", UnknownScore},
		{"missing", "Ss-", UnknownScore},
	}
	for _, tt := range tests {
		got, err := s.DisjunctScore(ctx, tt.word, tt.disjunct)
		if err != nil {
			t.Fatalf("DisjunctScore(%q, %q) error = %v", tt.word, tt.disjunct, err)
		}
		if got != tt.want {
			t.Errorf("DisjunctScore(%q, %q) = %v, want %v", tt.word, tt.disjunct, got, tt.want)
		}
	}
}

func TestStaticScorerWordSensesSorted(t *testing.T) {
	s := NewStaticScorer([]Sense{
		{Word: "run.v", Disjunct: "Ss-", Label: "worse", Score: 2.5},
		{Word: "run.v", Disjunct: "Ss-", Label: "best", Score: 1.2},
		{Word: "run.v", Disjunct: "Ss-", Label: "middle", Score: 1.9},
	})

	senses, err := s.WordSenses(context.Background(), "run.v", "Ss-")
	if err != nil {
		t.Fatalf("WordSenses() error = %v", err)
	}
	var labels []string
	for _, sns := range senses {
		labels = append(labels, sns.Label)
	}
	want := []string{"best", "middle", "worse"}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("WordSenses() order = %v, want %v", labels, want)
		}
	}
}

func TestStaticScorerUnknownPair(t *testing.T) {
	s := NewStaticScorer(nil)

	senses, err := s.WordSenses(context.Background(), "ghost", "Xx-")
	if err != nil {
		t.Fatalf("WordSenses() error = %v", err)
	}
	if len(senses) != 0 {
		t.Errorf("WordSenses() = %v, want empty", senses)
	}
}

// Package corpus provides sense scoring for parsed linkages.
//
// This package defines the capability interface the listing renderers
// query for corpus statistics, with implementations for different
// backends:
//   - static: In-memory tables for development/testing
//   - mongo: MongoDB-backed statistics for production deployments
//
// A renderer holding a nil Scorer treats corpus statistics as disabled
// and falls back to the score-free output formats.
package corpus

import "context"

// UnknownScore is reported for disjuncts the corpus has no record of.
const UnknownScore = 99.999

// Sense is one corpus annotation for a (word, disjunct) pair: the sense
// tag assigned to the subscripted word and its likelihood score. Lower
// scores indicate a better fit.
type Sense struct {
	Word     string  `json:"word" bson:"word"`
	Disjunct string  `json:"disjunct" bson:"disjunct"`
	Label    string  `json:"sense" bson:"sense"`
	Score    float64 `json:"score" bson:"score"`
}

// Scorer answers corpus-statistics queries for single words. Both
// methods key on the subscripted word token and the disjunct string the
// parser chose for it.
type Scorer interface {
	// DisjunctScore returns the likelihood score for the word's chosen
	// disjunct, or UnknownScore when the corpus has no record.
	DisjunctScore(ctx context.Context, word, disjunct string) (float64, error)

	// WordSenses returns the sense annotations for the word's chosen
	// disjunct, best score first. An unknown pair yields an empty list,
	// not an error.
	WordSenses(ctx context.Context, word, disjunct string) ([]Sense, error)

	// Close releases the backend connection.
	Close(ctx context.Context) error
}

package corpus

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/solversa/link-grammar/pkg/errors"
)

// MongoConfig configures the MongoDB-backed scorer.
type MongoConfig struct {
	// URI is the connection string, e.g. "mongodb://localhost:27017".
	URI string

	// Database and Collection locate the sense documents. Each document
	// carries the Sense fields: word, disjunct, sense, score.
	Database   string
	Collection string
}

// MongoScorer serves corpus statistics from a MongoDB collection of
// sense documents.
type MongoScorer struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoScorer connects to the configured MongoDB deployment and
// verifies the connection with a ping.
func NewMongoScorer(ctx context.Context, cfg MongoConfig) (*MongoScorer, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCorpus, err, "connecting to corpus database")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeCorpus, err, "corpus database unreachable")
	}
	return &MongoScorer{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// DisjunctScore returns the best sense score recorded for the pair, or
// UnknownScore when no document matches.
func (s *MongoScorer) DisjunctScore(ctx context.Context, word, disjunct string) (float64, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "score", Value: 1}})
	var sns Sense
	err := s.coll.FindOne(ctx, bson.M{"word": word, "disjunct": disjunct}, opts).Decode(&sns)
	if err == mongo.ErrNoDocuments {
		return UnknownScore, nil
	}
	if err != nil {
		return UnknownScore, errors.Wrap(errors.ErrCodeCorpus, err, "scoring %q", word)
	}
	return sns.Score, nil
}

// WordSenses returns all sense documents for the pair, best score first.
func (s *MongoScorer) WordSenses(ctx context.Context, word, disjunct string) ([]Sense, error) {
	opts := options.Find().SetSort(bson.D{{Key: "score", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{"word": word, "disjunct": disjunct}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCorpus, err, "fetching senses for %q", word)
	}
	var senses []Sense
	if err := cur.All(ctx, &senses); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCorpus, err, "decoding senses for %q", word)
	}
	return senses, nil
}

// Close disconnects from the deployment.
func (s *MongoScorer) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoScorer implements Scorer.
var _ Scorer = (*MongoScorer)(nil)

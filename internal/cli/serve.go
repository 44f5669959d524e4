package cli

import (
	"github.com/spf13/cobra"

	"github.com/solversa/link-grammar/pkg/cache"
	"github.com/solversa/link-grammar/pkg/corpus"
	"github.com/solversa/link-grammar/pkg/server"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string // listen address
	dictName   string // dictionary name or marker TOML path
	redisAddr  string // Redis address for the shared artifact cache
	redisDB    int    // Redis logical database
	corpusURI  string // MongoDB URI for corpus statistics
	corpusDB   string // corpus database name
	corpusColl string // corpus collection name
}

// serveCommand creates the serve command running the HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering service",
		Long:  `Serve exposes the renderers over HTTP: POST a linkage JSON document to /render and receive the requested artifact. With --redis, rendered artifacts are shared across replicas.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.dictName, "dict", "en", "dictionary: en, ru, or a marker TOML path")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for the shared artifact cache (empty disables)")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "Redis logical database")
	cmd.Flags().StringVar(&opts.corpusURI, "corpus-uri", "", "MongoDB URI for corpus statistics")
	cmd.Flags().StringVar(&opts.corpusDB, "corpus-db", "linkgrammar", "corpus database name")
	cmd.Flags().StringVar(&opts.corpusColl, "corpus-collection", "senses", "corpus collection name")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	markers, err := loadMarkers(opts.dictName)
	if err != nil {
		return err
	}

	artifacts := cache.NewNullCache()
	if opts.redisAddr != "" {
		artifacts, err = cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr: opts.redisAddr,
			DB:   opts.redisDB,
		})
		if err != nil {
			return err
		}
		logger.Info("artifact cache enabled", "backend", "redis", "addr", opts.redisAddr)
	}
	defer artifacts.Close()

	var scorer corpus.Scorer
	if opts.corpusURI != "" {
		scorer, err = corpus.NewMongoScorer(ctx, corpus.MongoConfig{
			URI:        opts.corpusURI,
			Database:   opts.corpusDB,
			Collection: opts.corpusColl,
		})
		if err != nil {
			return err
		}
		defer scorer.Close(ctx)
		logger.Info("corpus statistics enabled", "db", opts.corpusDB)
	}

	srv := server.New(server.Config{
		Addr:    opts.addr,
		Markers: markers,
		Cache:   artifacts,
		Scorer:  scorer,
		Logger:  logger,
	})

	logger.Info("listening", "addr", opts.addr)
	return srv.ListenAndServe(ctx)
}

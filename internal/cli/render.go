package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solversa/link-grammar/pkg/cache"
	"github.com/solversa/link-grammar/pkg/corpus"
	"github.com/solversa/link-grammar/pkg/errors"
	"github.com/solversa/link-grammar/pkg/linkage"
	"github.com/solversa/link-grammar/pkg/render"
	"github.com/solversa/link-grammar/pkg/render/diagram"
)

// renderOpts holds the command-line flags for the render command.
// These options mirror the renderer option bundle plus output selection.
type renderOpts struct {
	output           string   // output file (single format) or base path (multiple)
	formats          []string // output formats: ascii, ps, ps-body, links, disjuncts, senses, dot, svg
	index            int      // which linkage of a multi-linkage file to render
	showWalls        bool     // force boundary word display
	hideSuffix       bool     // fuse split stem+suffix pairs
	noLinkSubscripts bool     // draw only the upper-case run of arc labels
	short            bool     // collapse connector rows
	width            int      // wrap width in glyphs
	maxHeight        int      // diagram height limit in lines
	dictName         string   // dictionary name or marker TOML path
	noCache          bool     // bypass the artifact cache
	corpusURI        string   // MongoDB URI for corpus statistics
	corpusDB         string   // corpus database name
	corpusColl       string   // corpus collection name
}

// fileExt maps each format to the extension used for multi-format output.
var fileExt = map[render.Format]string{
	render.FormatASCII:     ".txt",
	render.FormatPS:        ".ps",
	render.FormatPSBody:    ".ps",
	render.FormatLinks:     ".links.txt",
	render.FormatDisjuncts: ".disjuncts.txt",
	render.FormatSenses:    ".senses.txt",
	render.FormatDOT:       ".dot",
	render.FormatSVG:       ".svg",
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		width:     diagram.DefaultScreenWidth,
		maxHeight: diagram.DefaultMaxHeight,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a linkage file to diagrams and listings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple formats)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): ascii (default), ps, ps-body, links, disjuncts, senses, dot, svg (comma-separated)")
	cmd.Flags().IntVar(&opts.index, "index", 0, "which linkage of a multi-linkage file to render")
	cmd.Flags().BoolVar(&opts.showWalls, "show-walls", false, "always display the boundary words")
	cmd.Flags().BoolVar(&opts.hideSuffix, "hide-suffix", false, "fuse split stem+suffix pairs into one word")
	cmd.Flags().BoolVar(&opts.noLinkSubscripts, "no-link-subscripts", false, "draw only the upper-case part of arc labels")
	cmd.Flags().BoolVar(&opts.short, "short", false, "collapse connector rows into a single row")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "wrap width in glyphs")
	cmd.Flags().IntVar(&opts.maxHeight, "max-height", opts.maxHeight, "diagram height limit in lines")
	cmd.Flags().StringVar(&opts.dictName, "dict", "en", "dictionary: en, ru, or a marker TOML path")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	cmd.Flags().StringVar(&opts.corpusURI, "corpus-uri", "", "MongoDB URI for corpus statistics (disjunct/sense scores)")
	cmd.Flags().StringVar(&opts.corpusDB, "corpus-db", "linkgrammar", "corpus database name")
	cmd.Flags().StringVar(&opts.corpusColl, "corpus-collection", "senses", "corpus collection name")

	return cmd
}

// parseFormats parses the --format flag into a slice of format names.
// If empty, defaults to ["ascii"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{string(render.FormatASCII)}
	}
	return strings.Split(s, ",")
}

func (o *renderOpts) diagramOptions() diagram.Options {
	opts := diagram.DefaultOptions()
	opts.ShowWalls = o.showWalls
	opts.HideSuffix = o.hideSuffix
	opts.ShowLinkSubscripts = !o.noLinkSubscripts
	opts.ShortDisplay = o.short
	opts.ScreenWidth = o.width
	opts.MaxHeight = o.maxHeight
	return opts
}

func (c *CLI) runRender(ctx context.Context, path string, opts *renderOpts) error {
	markers, err := loadMarkers(opts.dictName)
	if err != nil {
		return err
	}

	formats := make([]render.Format, 0, len(opts.formats))
	needsScorer := false
	for _, name := range opts.formats {
		f, err := render.ParseFormat(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		if f == render.FormatDisjuncts || f == render.FormatSenses {
			needsScorer = true
		}
		formats = append(formats, f)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	linkages, err := linkage.ReadLinkages(bytes.NewReader(raw))
	if err != nil {
		return err
	}
	if opts.index < 0 || opts.index >= len(linkages) {
		return fmt.Errorf("linkage index %d out of range: file holds %d", opts.index, len(linkages))
	}
	lk := linkages[opts.index]

	var scorer corpus.Scorer
	if needsScorer && opts.corpusURI != "" {
		scorer, err = corpus.NewMongoScorer(ctx, corpus.MongoConfig{
			URI:        opts.corpusURI,
			Database:   opts.corpusDB,
			Collection: opts.corpusColl,
		})
		if err != nil {
			return err
		}
		defer scorer.Close(ctx)
	}

	artifacts, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer artifacts.Close()
	keyer := cache.NewDefaultKeyer()

	dopts := opts.diagramOptions()
	bodyHash := cache.Hash(raw)
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	for _, f := range formats {
		key := keyer.ArtifactKey(bodyHash, fmt.Sprintf("%s@%d", f, opts.index), dopts)
		data, hit, err := artifacts.Get(ctx, key)
		if err != nil || !hit {
			data, err = render.Render(ctx, f, lk, markers, dopts, scorer)
			switch {
			case errors.Is(err, errors.ErrCodeDiagramTooTall):
				// The overflow diagnostic takes the diagram's place in
				// the artifact, as the original prints it in-band. The
				// command still exits zero. Diagnostics are not cached.
				data = []byte(errors.UserMessage(err) + "\n")
				logger.Warn("diagram too tall, emitted the diagnostic instead", "format", f)
			case err != nil:
				return err
			default:
				_ = artifacts.Set(ctx, key, data, cache.TTLArtifact)
			}
		} else {
			logger.Debug("artifact served from cache", "format", f)
		}

		out := outputPath(opts.output, f, len(formats))
		if out == "" {
			if _, err := os.Stdout.Write(data); err != nil {
				return err
			}
			continue
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		printFile(out)
	}

	if opts.output != "" {
		prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(formats)))
	}
	return nil
}

// outputPath decides where one artifact goes: stdout when no output was
// requested, the literal path for a single format, or base+extension
// when several formats share one base path.
func outputPath(base string, f render.Format, nformats int) string {
	if base == "" {
		return ""
	}
	if nformats == 1 {
		return base
	}
	return base + fileExt[f]
}

// Package cli implements the lgrender command-line interface.
//
// This package provides commands for rendering linkage JSON documents
// into text diagrams, PostScript, flat listings, and graph views, for
// browsing multi-linkage files interactively, for running the HTTP
// rendering service, and for managing the artifact cache. The CLI is
// built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Render a linkage file to one or more output formats
//   - view: Page through the linkages of a file interactively
//   - serve: Run the HTTP rendering service
//   - cache: Manage the rendered-artifact cache
//   - dict: Inspect dictionary marker tables
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context for structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/solversa/link-grammar/pkg/buildinfo"
	"github.com/solversa/link-grammar/pkg/cache"
	"github.com/solversa/link-grammar/pkg/dict"
	"github.com/solversa/link-grammar/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "lgrender"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "lgrender draws linkage diagrams from parsed sentences",
		Long:         `lgrender renders completed parse results (linkages) as fixed-width text diagrams, PostScript documents, flat link listings, and node-link graphs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Commands pull the logger back out with loggerFromContext, so
	// helpers deep in a run function never need the CLI value itself.
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.dictCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Factories
// =============================================================================

// newCache selects the artifact cache backing the render command.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		printWarning("Artifact cache disabled: %v", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// loadMarkers resolves the --dict flag: a built-in dictionary name
// ("en", "ru") or a path to a marker TOML file.
func loadMarkers(name string) (*dict.Markers, error) {
	if name == "" {
		return dict.English(), nil
	}
	if m, err := dict.ByName(name); err == nil {
		return m, nil
	}
	if strings.HasSuffix(name, ".toml") {
		return dict.LoadFile(name)
	}
	return nil, errors.New(errors.ErrCodeNotFound, "unknown dictionary %q (use en, ru, or a marker TOML path)", name)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/lgrender/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Package cli implements the activitycard command-line interface.
//
// The main commands are:
//   - serve: Run the card-rendering HTTP service
//   - card: Render a single activity card to a file or stdout
//   - themes: List color themes and card types
//   - cache: Manage the local summary cache
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/buildinfo"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/cache"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/github"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "activitycard"

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

// New creates a new CLI instance writing logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Activitycard renders GitHub activity as SVG cards",
		Long:         `Activitycard fetches a GitHub user's public activity, summarizes it, and renders it as a themed SVG card for embedding in profile READMEs.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cardCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for one-shot CLI use. The local
// file cache keeps repeated renders of the same user from refetching.
func (c *CLI) newRunner(token, apiURL string, noCache bool) (*pipeline.Runner, error) {
	store, err := newCache(noCache)
	if err != nil {
		return nil, err
	}

	var opts []github.Option
	if apiURL != "" {
		opts = append(opts, github.WithBaseURL(apiURL))
	}
	client := github.NewClient(token, opts...)

	return pipeline.NewRunner(client, store, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Environment Helpers
// =============================================================================

// githubToken resolves the API token: an explicit flag wins, otherwise
// the GITHUB_TOKEN environment variable.
func githubToken(flagToken string) string {
	if flagToken != "" {
		return flagToken
	}
	return os.Getenv("GITHUB_TOKEN")
}

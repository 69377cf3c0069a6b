package cli

import (
	"github.com/spf13/cobra"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/cache"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/config"
	apperrors "github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/errors"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/github"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/pipeline"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/server"
)

// serveCommand creates the serve command for running the HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the card-rendering HTTP service",
		Long: `Run the HTTP service that renders activity cards on demand.

Configuration is read from an optional TOML file, then overridden by
environment variables (GITHUB_TOKEN, ACTIVITYCARD_ADDR, ...). The
service shuts down gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			return c.runServe(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

// runServe builds the cache backend, GitHub client and runner from the
// configuration and serves until the context is canceled.
func (c *CLI) runServe(cmd *cobra.Command, cfg config.Config) error {
	store, err := buildCache(cfg)
	if err != nil {
		return err
	}

	if cfg.GitHubToken == "" {
		printWarning("No GitHub token configured; anonymous rate limits apply")
		printDetail("Set GITHUB_TOKEN or github_token in the config file")
	}

	var opts []github.Option
	if cfg.GitHubAPIURL != "" {
		opts = append(opts, github.WithBaseURL(cfg.GitHubAPIURL))
	}
	client := github.NewClient(cfg.GitHubToken, opts...)

	runner := pipeline.NewRunner(client, store, c.Logger)
	srv := server.New(cfg, runner, c.Logger)

	printInfo("Serving activity cards on %s", StyleHighlight.Render(cfg.Addr))
	printDetail("Cache backend: %s", cfg.CacheBackend)

	return srv.Start(cmd.Context())
}

// buildCache constructs the summary cache backend named by the config.
func buildCache(cfg config.Config) (cache.Cache, error) {
	switch cfg.CacheBackend {
	case config.BackendMemory:
		entries := cfg.CacheEntries
		if entries <= 0 {
			entries = cache.DefaultMaxEntries
		}
		return cache.NewMemoryCache(entries), nil
	case config.BackendRedis:
		return cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case config.BackendFile:
		dir := cfg.CacheDir
		if dir == "" {
			d, err := cache.DefaultDir()
			if err != nil {
				return nil, apperrors.Wrap(apperrors.ErrCodeCache, err, "resolve cache directory")
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	case config.BackendNone:
		return cache.NewNullCache(), nil
	}
	return nil, apperrors.New(apperrors.ErrCodeInvalidOption, "unknown cache backend %q", cfg.CacheBackend)
}

package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/analyze"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/cache"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/card"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/github"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/observability"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/summary"
)

// Source fetches a user's public activity. *github.Client satisfies it;
// tests substitute fixtures.
type Source interface {
	FetchUserData(ctx context.Context, username string) (*github.UserData, error)
}

// Runner executes the pipeline with summary caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely share one
// Runner with different options.
type Runner struct {
	Source Source
	Cache  cache.Cache
	Logger *log.Logger

	// Now supplies timestamps for log fields. Overridable in tests.
	Now func() time.Time
}

// NewRunner creates a runner around a source.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, the default logger is used.
func NewRunner(src Source, c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Source: src,
		Cache:  c,
		Logger: logger,
		Now:    time.Now,
	}
}

// Execute runs the complete summarize → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	s, stats, err := r.summarize(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Summary = s
	result.Stats = stats

	renderStart := r.now()
	observability.Pipeline().OnRenderStart(ctx, opts.Type)
	svg, err := card.Render(s, opts.CardOptions())
	result.Stats.RenderTime = r.now().Sub(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Type, len(svg), result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.SVG = svg

	opts.Logger.Info("card rendered",
		"request", opts.String(),
		"bytes", len(svg),
		"cache_hit", result.Stats.CacheHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Summarize returns the cached or freshly synthesized summary for a user
// without rendering a card.
func (r *Runner) Summarize(ctx context.Context, username string) (summary.ActivitySummary, error) {
	opts := Options{Username: username}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return summary.ActivitySummary{}, err
	}
	s, _, err := r.summarize(ctx, opts)
	return s, err
}

// summarize resolves a summary through the cache, fetching and
// synthesizing on a miss.
func (r *Runner) summarize(ctx context.Context, opts Options) (summary.ActivitySummary, Stats, error) {
	var stats Stats
	key := cache.SummaryKey(opts.Username)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var s summary.ActivitySummary
			if err := json.Unmarshal(data, &s); err == nil {
				observability.Cache().OnCacheHit(ctx, "summary")
				stats.CacheHit = true
				opts.Logger.Debug("summary cache hit", "username", opts.Username)
				return s, stats, nil
			}
			// Corrupt entry, drop it and refetch.
			_ = r.Cache.Delete(ctx, key)
		} else if err != nil {
			opts.Logger.Warn("summary cache read failed", "username", opts.Username, "error", err)
		}
	}
	observability.Cache().OnCacheMiss(ctx, "summary")

	fetchStart := r.now()
	observability.Pipeline().OnFetchStart(ctx, opts.Username)
	data, err := r.Source.FetchUserData(ctx, opts.Username)
	stats.FetchTime = r.now().Sub(fetchStart)
	if data != nil {
		stats.EventCount = len(data.Events)
		stats.RepoCount = len(data.Repositories)
	}
	observability.Pipeline().OnFetchComplete(ctx, opts.Username, stats.EventCount, stats.RepoCount, stats.FetchTime, err)
	if err != nil {
		return summary.ActivitySummary{}, stats, err
	}

	opts.Logger.Info("fetched activity",
		"username", opts.Username,
		"events", stats.EventCount,
		"repos", stats.RepoCount,
		"duration", stats.FetchTime)

	analyzeStart := r.now()
	analysis := analyze.Analyze(data.Events)
	contrib := analyze.AggregateContributions(data.Repositories)
	s := summary.Synthesize(data.Profile, analysis, contrib, data.Events)
	stats.AnalyzeTime = r.now().Sub(analyzeStart)
	observability.Pipeline().OnAnalyzeComplete(ctx, opts.Username, analysis.TotalEvents, stats.AnalyzeTime)

	if payload, err := json.Marshal(s); err == nil {
		if err := r.Cache.Set(ctx, key, payload, cache.DefaultSummaryTTL); err != nil {
			opts.Logger.Warn("summary cache write failed", "username", opts.Username, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "summary", len(payload))
		}
	}

	return s, stats, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// now defends against a zero Now when a Runner is built as a literal.
func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

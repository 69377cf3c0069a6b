// Package pipeline runs the complete fetch → analyze → synthesize →
// render flow behind every card. The HTTP server and the CLI both drive
// this package, so defaults and validation live here once.
//
// # Architecture
//
// A card is produced in three stages:
//
//  1. Summarize: fetch the user's public activity from GitHub, derive
//     statistics, and synthesize a natural-language summary. This stage
//     is cached per username.
//  2. Render: draw the summary as a themed SVG card. Rendering is pure
//     and cheap, so it always runs, letting one cached summary serve
//     every theme and card type combination.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(client, cache, logger)
//	opts := pipeline.Options{
//	    Username: "octocat",
//	    Theme:    "dark",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.SVG
//
// Or summarize without rendering:
//
//	summary, err := runner.Summarize(ctx, "octocat")
package pipeline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/card"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/errors"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/github"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/summary"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultCacheSeconds is the max-age handed to browsers and proxies
	// when a request does not override it.
	DefaultCacheSeconds = 14400

	// MaxCacheSeconds caps client-requested cache lifetimes at one day so
	// a stale embed cannot pin an ancient card forever.
	MaxCacheSeconds = 86400

	// DefaultBorderRadius matches the renderer's corner rounding.
	DefaultBorderRadius = 4.5
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one card generation. The zero value of every field
// means "use the default", except BorderRadius where nil means default
// and an explicit zero draws square corners.
type Options struct {
	// Username is the GitHub login to summarize. Required.
	Username string `json:"username"`

	// Card options
	Type         string   `json:"type,omitempty"`
	Theme        string   `json:"theme,omitempty"`
	HideBorder   bool     `json:"hide_border,omitempty"`
	BorderRadius *float64 `json:"border_radius,omitempty"`
	HideStats    bool     `json:"hide_stats,omitempty"`
	HideProjects bool     `json:"hide_projects,omitempty"`
	Width        int      `json:"width,omitempty"`
	Layout       string   `json:"layout,omitempty"`

	// CacheSeconds controls the Cache-Control max-age of the response.
	// Zero or negative values use DefaultCacheSeconds.
	CacheSeconds int `json:"cache_seconds,omitempty"`

	// Refresh bypasses the summary cache and refetches from GitHub.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// SVG is the rendered card.
	SVG []byte

	// Summary is the synthesized activity summary the card was drawn from.
	Summary summary.ActivitySummary

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CacheHit    bool
	FetchTime   time.Duration
	AnalyzeTime time.Duration
	RenderTime  time.Duration
	EventCount  int
	RepoCount   int
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	o.Username = strings.TrimSpace(o.Username)
	if err := github.ValidateUsername(o.Username); err != nil {
		return err
	}

	if o.Type == "" {
		o.Type = card.TypeActivity
	}
	if !card.ValidType(o.Type) {
		return errors.New(errors.ErrCodeInvalidCardType,
			"invalid card type %q (must be one of: %s)", o.Type, strings.Join(card.TypeNames(), ", "))
	}

	if o.Theme == "" {
		o.Theme = card.DefaultTheme
	}
	if !card.ValidTheme(o.Theme) {
		return errors.New(errors.ErrCodeInvalidTheme,
			"invalid theme %q (must be one of: %s)", o.Theme, strings.Join(card.ThemeNames(), ", "))
	}

	if o.Layout == "" {
		o.Layout = card.LayoutDefault
	}
	if o.Layout != card.LayoutDefault && o.Layout != card.LayoutVertical {
		return errors.New(errors.ErrCodeInvalidOption,
			"invalid layout %q (must be %q or %q)", o.Layout, card.LayoutDefault, card.LayoutVertical)
	}

	if o.CacheSeconds <= 0 {
		o.CacheSeconds = DefaultCacheSeconds
	}
	if o.CacheSeconds > MaxCacheSeconds {
		o.CacheSeconds = MaxCacheSeconds
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// CardOptions converts the pipeline options into renderer options.
func (o *Options) CardOptions() card.Options {
	opts := card.DefaultOptions()
	opts.Type = o.Type
	opts.Theme = o.Theme
	opts.ShowBorder = !o.HideBorder
	if o.BorderRadius != nil {
		opts.BorderRadius = *o.BorderRadius
	}
	opts.HideStats = o.HideStats
	opts.HideProjects = o.HideProjects
	if o.Width != 0 {
		opts.Width = o.Width
	}
	opts.Layout = o.Layout
	return opts
}

// String identifies the request in logs without dumping every field.
func (o Options) String() string {
	return fmt.Sprintf("%s/%s/%s", o.Username, o.Type, o.Theme)
}

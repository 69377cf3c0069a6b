// Package pkg provides the core libraries for Activitycard.
//
// # Overview
//
// Activitycard turns a GitHub user's public event stream into a themed
// SVG card suitable for embedding in a profile README. The pkg directory
// is organized around the data flow:
//
//	GitHub REST API
//	         ↓
//	    [github] package (fetch profile, events, repositories)
//	         ↓
//	    [analyze] package (counts, top repos, peak hour, streaks)
//	         ↓
//	    [summary] package (narrative, highlights, achievements)
//	         ↓
//	    [card] package (deterministic SVG rendering)
//
// The [pipeline] package composes these stages behind a cached Runner,
// and [server] exposes the pipeline over HTTP.
//
// # Quick Start
//
// Render a card for a user:
//
//	import (
//	    "context"
//	    "github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/cache"
//	    "github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/github"
//	    "github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/pipeline"
//	)
//
//	client := github.NewClient(token)
//	runner := pipeline.NewRunner(client, cache.NewMemoryCache(1000), nil)
//	defer runner.Close()
//
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Username: "octocat",
//	    Theme:    "dark",
//	})
//	// result.SVG holds the rendered card.
//
// # Main Packages
//
// [github] - REST API client for public user data. Fetches the profile,
// the first page of recent events, and owned repositories concurrently.
// Validates usernames before any network call and maps API failures to
// coded errors.
//
// [analyze] - Pure derivation of statistics from events: per-kind counts,
// most-active repositories, peak activity hour (UTC), and the consecutive
// daily streak. No I/O, no clock reads.
//
// [summary] - Synthesizes the analysis into natural-language output:
// a narrative sentence, highlights, detected patterns, and achievements.
// Deterministic for a given input.
//
// [card] - Renders summaries as SVG. Three card types (activity, compact,
// languages), eight color themes, layout options. Byte-identical output
// for identical inputs; all user-derived text is XML-escaped.
//
// [cache] - Summary cache behind a small interface with memory, Redis,
// file, and null backends. The pipeline caches summaries for four hours;
// rendering always runs so one cached summary serves every theme.
//
// [pipeline] - Options validation, the Runner, and execution statistics.
// Both the HTTP server and the CLI drive this package.
//
// [server] - chi router, request-ID and logging middleware, the card and
// health endpoints, themed error responses, graceful shutdown.
//
// [config] - TOML file plus environment variable configuration for the
// serving process.
//
// [errors] - Coded application errors shared by every layer; the HTTP
// layer maps codes to status codes.
//
// [observability] - Hook interfaces (pipeline, cache, HTTP) with no-op
// defaults, for wiring metrics or tracing without touching call sites.
//
// [buildinfo] - ldflags-injected version information.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...        # All tests
//	go test ./pkg/card/...   # Specific package
package pkg

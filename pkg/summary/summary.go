// Package summary turns raw analysis numbers into human-readable form:
// detected activity patterns, highlights, achievement badges, recent
// projects, and a short natural-language narrative.
//
// Synthesis is pure. The same profile, analysis, and event list always
// produce the same summary, which is what makes cached summaries and
// re-rendered cards stable.
package summary

import (
	"time"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/github"
)

// Pattern types.
const (
	PatternStreak   = "streak"
	PatternSchedule = "schedule"
)

// Pattern severities.
const (
	SeverityNotable     = "notable"
	SeverityExceptional = "exceptional"
)

// Thresholds for patterns, highlights, and achievements.
const (
	streakPatternMin     = 7
	streakExceptionalMin = 30
	reviewerMin          = 5  // more than this many review events
	issueTrackerMin      = 10 // more than this many issue events
	starMilestone        = 100
	repoMilestone        = 50
	polyglotMin          = 5

	maxRecentProjects     = 5
	narrativeProjectLimit = 3
)

// Pattern is a detected activity pattern.
type Pattern struct {
	Type     string `json:"type"`
	Severity string `json:"severity,omitempty"`
	Text     string `json:"text"`
}

// Project is a repository the user recently touched, annotated with the
// most recent event observed for it.
type Project struct {
	ShortName  string    `json:"short_name"`
	FullName   string    `json:"full_name"`
	Label      string    `json:"label"`
	Detail     string    `json:"detail,omitempty"`
	LastActive time.Time `json:"last_active,omitempty"`
}

// ActivitySummary is the complete synthesized view of a user's public
// activity. It carries everything the card renderers need, so a cached
// summary can be re-rendered with different options without refetching.
type ActivitySummary struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url,omitempty"`

	TotalEvents  int                      `json:"total_events"`
	CountsByKind map[github.EventKind]int `json:"counts_by_kind,omitempty"`
	PeakHour     int                      `json:"peak_hour"`
	Streak       int                      `json:"streak_days"`

	TotalStars int `json:"total_stars"`
	TotalForks int `json:"total_forks"`
	TotalRepos int `json:"total_repos"`

	PrimaryLanguage string         `json:"primary_language,omitempty"`
	LanguageSizes   map[string]int `json:"language_sizes,omitempty"`

	Patterns       []Pattern `json:"patterns,omitempty"`
	Highlights     []string  `json:"highlights,omitempty"`
	Achievements   []string  `json:"achievements,omitempty"`
	RecentProjects []Project `json:"recent_projects,omitempty"`

	Narrative string `json:"narrative"`
	ShortLine string `json:"short_line"`
}

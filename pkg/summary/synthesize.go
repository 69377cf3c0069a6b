package summary

import (
	"fmt"
	"strings"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/analyze"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/github"
)

// Synthesize builds the full activity summary from the fetched profile,
// the derived statistics, and the raw event list. The event list is
// needed on top of the analysis because recent projects keep
// event-level detail (commit counts, titles) the analysis discards.
func Synthesize(profile github.Profile, analysis analyze.Analysis, stats analyze.ContributionStats, events []github.Event) ActivitySummary {
	s := ActivitySummary{
		Username:        profile.Login,
		DisplayName:     profile.DisplayName(),
		AvatarURL:       profile.AvatarURL,
		TotalEvents:     analysis.TotalEvents,
		CountsByKind:    analysis.CountsByKind,
		PeakHour:        analysis.PeakHour,
		Streak:          analysis.ActivityStreak,
		TotalStars:      stats.TotalStars,
		TotalForks:      stats.TotalForks,
		TotalRepos:      stats.TotalRepos,
		PrimaryLanguage: primaryLanguage(stats.LanguageSizes),
		LanguageSizes:   stats.LanguageSizes,
	}

	s.Patterns = detectPatterns(analysis)
	s.Highlights = buildHighlights(analysis)
	s.Achievements = buildAchievements(analysis, stats)
	s.RecentProjects = recentProjects(events)

	s.Narrative = Narrative(s)
	s.ShortLine = ShortLine(s)
	return s
}

// detectPatterns emits the streak pattern (when the streak is long
// enough to mean something) followed by the schedule pattern (whenever
// a peak hour exists).
func detectPatterns(analysis analyze.Analysis) []Pattern {
	var patterns []Pattern

	if analysis.ActivityStreak >= streakPatternMin {
		severity := SeverityNotable
		text := fmt.Sprintf("Consistent contributor: %d-day activity streak", analysis.ActivityStreak)
		if analysis.ActivityStreak >= streakExceptionalMin {
			severity = SeverityExceptional
			text = fmt.Sprintf("On fire! %d consecutive days of activity", analysis.ActivityStreak)
		}
		patterns = append(patterns, Pattern{Type: PatternStreak, Severity: severity, Text: text})
	}

	if analysis.PeakHour != analyze.NoPeakHour {
		patterns = append(patterns, Pattern{
			Type: PatternSchedule,
			Text: fmt.Sprintf("Most active during the %s", dayPeriod(analysis.PeakHour)),
		})
	}

	return patterns
}

// dayPeriod buckets an hour of the day into a named period.
func dayPeriod(hour int) string {
	switch {
	case hour < 6:
		return "night"
	case hour < 12:
		return "morning"
	case hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

func buildHighlights(analysis analyze.Analysis) []string {
	var highlights []string

	if most, ok := analysis.MostActive(); ok {
		highlights = append(highlights, fmt.Sprintf("Most active in %s", shortName(most.Name)))
	}
	if analysis.TotalEvents > 0 &&
		analysis.CountsByKind[github.KindPush]*2 > analysis.TotalEvents {
		highlights = append(highlights, "Primarily pushing code")
	}
	if analysis.CountsByKind[github.KindReview] > reviewerMin {
		highlights = append(highlights, "Active code reviewer")
	}
	if analysis.CountsByKind[github.KindIssue] > issueTrackerMin {
		highlights = append(highlights, "Engaged in issue tracking")
	}

	return highlights
}

func buildAchievements(analysis analyze.Analysis, stats analyze.ContributionStats) []string {
	var achievements []string

	if analysis.CountsByKind[github.KindReview] > reviewerMin {
		achievements = append(achievements, "Code Review Champion")
	}
	if stats.TotalStars >= starMilestone {
		achievements = append(achievements, fmt.Sprintf("%d Stars Earned", stats.TotalStars))
	}
	if stats.TotalRepos >= repoMilestone {
		achievements = append(achievements, fmt.Sprintf("%d+ Repositories", repoMilestone))
	}
	if len(stats.LanguageSizes) >= polyglotMin {
		achievements = append(achievements, fmt.Sprintf("Polyglot: %d Languages", len(stats.LanguageSizes)))
	}

	return achievements
}

// primaryLanguage picks the language with the largest summed size.
// Ties resolve to the lexicographically smaller name so the result is
// stable regardless of map iteration order.
func primaryLanguage(sizes map[string]int) string {
	best, bestSize := "", -1
	for lang, size := range sizes {
		if size > bestSize || (size == bestSize && lang < best) {
			best, bestSize = lang, size
		}
	}
	return best
}

// recentProjects walks the newest-first event list and keeps the first
// event seen for each repository, up to maxRecentProjects distinct
// repositories.
func recentProjects(events []github.Event) []Project {
	var projects []Project
	seen := make(map[string]bool)

	for _, ev := range events {
		if seen[ev.Repo] {
			continue
		}
		seen[ev.Repo] = true

		projects = append(projects, Project{
			ShortName:  shortName(ev.Repo),
			FullName:   ev.Repo,
			Label:      ev.Kind.Label(),
			Detail:     eventDetail(ev),
			LastActive: ev.CreatedAt,
		})
		if len(projects) == maxRecentProjects {
			break
		}
	}
	return projects
}

// eventDetail renders the kind-specific payload of an event as a short
// human-readable fragment.
func eventDetail(ev github.Event) string {
	switch ev.Kind {
	case github.KindPush:
		if ev.CommitCount == 1 {
			return "1 commit"
		}
		return fmt.Sprintf("%d commits", ev.CommitCount)
	case github.KindPullRequest, github.KindIssue:
		return ev.Title
	case github.KindCreate:
		if ev.RefType != "" {
			return "Created " + ev.RefType
		}
		return ""
	default:
		return ""
	}
}

// shortName returns the repository name without its owner prefix.
func shortName(fullName string) string {
	if i := strings.LastIndex(fullName, "/"); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}

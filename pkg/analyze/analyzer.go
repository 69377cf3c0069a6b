// Package analyze derives statistics from a user's public GitHub
// activity: per-kind event counts, most-active repositories, the peak
// activity hour, consecutive-day streaks, and aggregate contribution
// numbers over the repository list.
//
// Everything in this package is pure. No I/O, no clock reads, no
// randomness; the same inputs always produce the same outputs.
package analyze

import (
	"sort"
	"time"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/github"
)

// NoPeakHour marks an analysis where no event carried a usable
// timestamp. Hour 0 would be indistinguishable from real midnight
// activity, so the absence is explicit.
const NoPeakHour = -1

const (
	// topRepoLimit caps the ranked repository list.
	topRepoLimit = 5

	// dayKeyFormat produces ISO day keys that sort in date order.
	dayKeyFormat = "2006-01-02"
)

// RepoActivity is one repository's share of the event list.
type RepoActivity struct {
	Name   string `json:"name"`
	Events int    `json:"events"`
}

// Analysis holds the statistics derived from one event list.
type Analysis struct {
	TotalEvents     int                      `json:"total_events"`
	CountsByKind    map[github.EventKind]int `json:"counts_by_kind"`
	TopRepositories []RepoActivity           `json:"top_repositories,omitempty"`
	PeakHour        int                      `json:"peak_hour"`
	ActivityStreak  int                      `json:"activity_streak"`
	ActivityByDay   map[string]int           `json:"activity_by_day,omitempty"`
}

// MostActive returns the repository with the most events, if any.
func (a Analysis) MostActive() (RepoActivity, bool) {
	if len(a.TopRepositories) == 0 {
		return RepoActivity{}, false
	}
	return a.TopRepositories[0], true
}

// Analyze derives statistics from events ordered newest first, the
// order the API delivers them in.
//
// Events without a timestamp still count toward totals and kind counts
// but contribute nothing to hour or day statistics.
func Analyze(events []github.Event) Analysis {
	a := Analysis{
		TotalEvents:   len(events),
		CountsByKind:  make(map[github.EventKind]int),
		ActivityByDay: make(map[string]int),
	}

	var hours [24]int
	hourTotal := 0
	repoCounts := make(map[string]int)
	repoOrder := make([]string, 0, len(events))

	for _, ev := range events {
		a.CountsByKind[ev.Kind]++

		if _, seen := repoCounts[ev.Repo]; !seen {
			repoOrder = append(repoOrder, ev.Repo)
		}
		repoCounts[ev.Repo]++

		if ev.CreatedAt.IsZero() {
			continue
		}
		hours[ev.CreatedAt.Hour()]++
		hourTotal++
		a.ActivityByDay[ev.CreatedAt.Format(dayKeyFormat)]++
	}

	a.TopRepositories = rankRepositories(repoCounts, repoOrder)
	a.PeakHour = peakHour(hours, hourTotal)
	a.ActivityStreak = longestStreak(a.ActivityByDay)
	return a
}

// rankRepositories orders repositories by event count descending. Ties
// keep first-seen order, which for a newest-first event list means the
// more recently active repository ranks higher.
func rankRepositories(counts map[string]int, order []string) []RepoActivity {
	ranked := make([]RepoActivity, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, RepoActivity{Name: name, Events: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Events > ranked[j].Events
	})
	if len(ranked) > topRepoLimit {
		ranked = ranked[:topRepoLimit]
	}
	return ranked
}

// peakHour returns the first hour holding the maximum count, or
// NoPeakHour when no event contributed a slot.
func peakHour(hours [24]int, total int) int {
	if total == 0 {
		return NoPeakHour
	}
	peak := 0
	for h := 1; h < 24; h++ {
		if hours[h] > hours[peak] {
			peak = h
		}
	}
	return peak
}

// longestStreak finds the longest run of consecutive calendar days in
// the day-key set.
func longestStreak(byDay map[string]int) int {
	if len(byDay) == 0 {
		return 0
	}
	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	sort.Strings(days)

	longest, run := 1, 1
	prev, _ := time.Parse(dayKeyFormat, days[0])
	for _, key := range days[1:] {
		cur, _ := time.Parse(dayKeyFormat, key)
		if cur.Sub(prev) == 24*time.Hour {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
		prev = cur
	}
	return longest
}

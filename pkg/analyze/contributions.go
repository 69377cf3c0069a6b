package analyze

import (
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/github"
)

const (
	// languageSampleSize bounds how many repositories feed the language
	// distribution. The list arrives ordered by most recent push, so the
	// sample reflects current work.
	languageSampleSize = 20

	// recentRepoLimit caps the recent-repository list.
	recentRepoLimit = 10
)

// ContributionStats aggregates numbers over a user's repository list.
type ContributionStats struct {
	TotalStars         int                 `json:"total_stars"`
	TotalForks         int                 `json:"total_forks"`
	TotalRepos         int                 `json:"total_repos"`
	LanguageSizes      map[string]int      `json:"language_sizes,omitempty"`
	RecentRepositories []github.Repository `json:"recent_repositories,omitempty"`
}

// AggregateContributions sums stars and forks over the full repository
// list, builds the language size distribution over the first
// languageSampleSize entries, and keeps the first recentRepoLimit
// repositories as the recent list.
func AggregateContributions(repos []github.Repository) ContributionStats {
	stats := ContributionStats{
		TotalRepos:    len(repos),
		LanguageSizes: make(map[string]int),
	}

	for i, r := range repos {
		stats.TotalStars += r.Stars
		stats.TotalForks += r.Forks
		if i < languageSampleSize && r.Language != "" {
			stats.LanguageSizes[r.Language] += r.Size
		}
	}

	recent := repos
	if len(recent) > recentRepoLimit {
		recent = recent[:recentRepoLimit]
	}
	stats.RecentRepositories = append([]github.Repository(nil), recent...)

	return stats
}

package summary

import (
	"fmt"
	"strings"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/analyze"
)

// Narrative renders the summary as a short paragraph. Sentences appear
// in a fixed order and are joined by single spaces, so the output is
// stable for a given summary.
func Narrative(s ActivitySummary) string {
	var sentences []string

	if s.PrimaryLanguage != "" {
		sentences = append(sentences,
			fmt.Sprintf("%s is a developer who primarily works with %s.", s.DisplayName, s.PrimaryLanguage))
	} else {
		sentences = append(sentences,
			fmt.Sprintf("%s is an active developer on GitHub.", s.DisplayName))
	}

	if s.PeakHour != analyze.NoPeakHour {
		sentences = append(sentences,
			fmt.Sprintf("They tend to be most active during the %s.", dayPeriod(s.PeakHour)))
	}

	if s.Streak >= streakPatternMin {
		if s.Streak >= streakExceptionalMin {
			sentences = append(sentences,
				fmt.Sprintf("They're on an exceptional %d-day activity streak.", s.Streak))
		} else {
			sentences = append(sentences,
				fmt.Sprintf("They've maintained a solid %d-day activity streak.", s.Streak))
		}
	}

	if len(s.RecentProjects) > 0 {
		names := make([]string, 0, narrativeProjectLimit)
		for _, p := range s.RecentProjects {
			names = append(names, p.ShortName)
			if len(names) == narrativeProjectLimit {
				break
			}
		}
		sentences = append(sentences,
			fmt.Sprintf("Recent work includes %s.", joinNatural(names)))
	}

	if len(s.Achievements) > 0 {
		sentences = append(sentences,
			fmt.Sprintf("Notable achievements: %s.", strings.Join(s.Achievements, ", ")))
	}

	if s.TotalRepos > 0 || s.TotalStars > 0 {
		sentences = append(sentences,
			fmt.Sprintf("They maintain %d public repositories with %d stars earned.", s.TotalRepos, s.TotalStars))
	}

	return strings.Join(sentences, " ")
}

// ShortLine renders a one-line version of the summary for compact
// surfaces.
func ShortLine(s ActivitySummary) string {
	switch {
	case s.PrimaryLanguage != "" && s.Streak >= streakPatternMin:
		return fmt.Sprintf("%s: %s developer on a %d-day streak", s.DisplayName, s.PrimaryLanguage, s.Streak)
	case s.PrimaryLanguage != "":
		return fmt.Sprintf("%s: %s developer", s.DisplayName, s.PrimaryLanguage)
	default:
		return fmt.Sprintf("%s: Active GitHub contributor", s.DisplayName)
	}
}

// joinNatural joins words as an English list: "a", "a and b",
// "a, b, and c".
func joinNatural(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " and " + words[1]
	default:
		return strings.Join(words[:len(words)-1], ", ") + ", and " + words[len(words)-1]
	}
}

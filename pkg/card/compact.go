package card

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/summary"
)

const minCompactHeight = 90

// renderCompact draws the condensed card: identity line, the one-line
// summary, and a single muted stat line.
func renderCompact(s summary.ActivitySummary, o Options) []byte {
	theme := LookupTheme(o.Theme)
	budget := lineBudget(o.Width)
	lines := WrapText(s.ShortLine, budget)

	statLine := compactStatLine(s)

	y := padding + titleSize
	y += sectionGap
	y += len(lines) * lineHeight
	if !o.HideStats && statLine != "" {
		y += sectionGap
	}
	height := y + padding
	if height < minCompactHeight {
		height = minCompactHeight
	}

	var buf bytes.Buffer
	openSVG(&buf, o.Width, height, fmt.Sprintf("%s's GitHub activity", s.DisplayName))
	frame(&buf, o, theme, height)

	y = padding + titleSize
	title(&buf, theme, y, s.DisplayName)

	y += sectionGap
	for _, line := range lines {
		y += lineHeight
		fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s">%s</text>`+"\n",
			padding, y-lineHeight+textSize, fontFamily, textSize, theme.Text, EscapeXML(line))
	}

	if !o.HideStats && statLine != "" {
		y += sectionGap
		fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s">%s</text>`+"\n",
			padding, y, fontFamily, smallSize, theme.Muted, EscapeXML(statLine))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// compactStatLine joins the headline numbers into one separator-delimited
// line, skipping zero entries.
func compactStatLine(s summary.ActivitySummary) string {
	var parts []string
	if s.TotalEvents > 0 {
		parts = append(parts, fmt.Sprintf("%d events", s.TotalEvents))
	}
	if s.Streak > 1 {
		parts = append(parts, fmt.Sprintf("%d-day streak", s.Streak))
	}
	if s.TotalStars > 0 {
		parts = append(parts, fmt.Sprintf("%d stars", s.TotalStars))
	}
	if s.TotalRepos > 0 {
		parts = append(parts, fmt.Sprintf("%d repos", s.TotalRepos))
	}
	return strings.Join(parts, " | ")
}

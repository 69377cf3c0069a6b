package card

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/summary"
)

const (
	langRowHeight     = 28
	langBarHeight     = 6
	maxLanguageRows   = 6
	minLanguageHeight = 100
)

// langEntry is one language's share of the distribution.
type langEntry struct {
	name    string
	size    int
	percent float64
}

// languageEntries orders the distribution by size descending with a
// name tiebreak, so rendering is stable regardless of map order.
// Percentages are shares of the full distribution, not just the rows
// that fit on the card.
func languageEntries(sizes map[string]int) []langEntry {
	total := 0
	for _, size := range sizes {
		total += size
	}
	if total == 0 {
		return nil
	}

	entries := make([]langEntry, 0, len(sizes))
	for name, size := range sizes {
		entries = append(entries, langEntry{
			name:    name,
			size:    size,
			percent: float64(size) * 100 / float64(total),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].size != entries[j].size {
			return entries[i].size > entries[j].size
		}
		return entries[i].name < entries[j].name
	})

	if len(entries) > maxLanguageRows {
		entries = entries[:maxLanguageRows]
	}
	return entries
}

// renderLanguages draws the language distribution card with one bar
// per language and a one-decimal percentage label.
func renderLanguages(s summary.ActivitySummary, o Options) []byte {
	theme := LookupTheme(o.Theme)
	entries := languageEntries(s.LanguageSizes)

	y := padding + titleSize
	y += sectionGap
	if len(entries) == 0 {
		y += lineHeight
	} else {
		y += len(entries) * langRowHeight
	}
	height := y + padding
	if height < minLanguageHeight {
		height = minLanguageHeight
	}

	var buf bytes.Buffer
	openSVG(&buf, o.Width, height, fmt.Sprintf("%s's most used languages", s.DisplayName))
	frame(&buf, o, theme, height)

	y = padding + titleSize
	title(&buf, theme, y, "Most Used Languages")

	y += sectionGap
	if len(entries) == 0 {
		y += lineHeight
		fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s">No language data</text>`+"\n",
			padding, y-lineHeight+textSize, fontFamily, textSize, theme.Muted)
		buf.WriteString("</svg>\n")
		return buf.Bytes()
	}

	innerW := o.Width - 2*padding
	for _, e := range entries {
		rowTop := y
		fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s">%s</text>`+"\n",
			padding, rowTop+textSize, fontFamily, textSize, theme.Text, EscapeXML(e.name))
		fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s" text-anchor="end">%.1f%%</text>`+"\n",
			o.Width-padding, rowTop+textSize, fontFamily, textSize, theme.Muted, e.percent)

		barW := int(float64(innerW) * e.percent / 100)
		if barW < 2 {
			barW = 2
		}
		fmt.Fprintf(&buf, `  <rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="%s" opacity="0.25"/>`+"\n",
			padding, rowTop+textSize+5, innerW, langBarHeight, theme.Border)
		fmt.Fprintf(&buf, `  <rect x="%d" y="%d" width="%d" height="%d" rx="3" fill="%s"/>`+"\n",
			padding, rowTop+textSize+5, barW, langBarHeight, languageColor(e.name))

		y += langRowHeight
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

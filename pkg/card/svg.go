package card

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/errors"
	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/summary"
)

// Shared layout metrics. All cards use the same grid so a README with
// several cards lines up.
const (
	padding    = 24
	titleSize  = 18
	textSize   = 13
	smallSize  = 11
	lineHeight = 18
	sectionGap = 16

	statValueSize   = 16
	statBlockHeight = 34
	statRowHeight   = 20

	projectHeaderGap = 20
	projectRowHeight = 32
	maxProjectRows   = 3

	charWidthPx       = 7
	minActivityHeight = 140

	fontFamily = "'Segoe UI', Ubuntu, Sans-Serif"
)

// Render renders a summary as an SVG card. The card type selects the
// variant; an unknown type is a coded error. An unknown theme is not an
// error here: the renderer falls back to the default palette.
func Render(s summary.ActivitySummary, opts Options) ([]byte, error) {
	opts.normalize()
	switch opts.Type {
	case TypeActivity:
		return renderActivity(s, opts), nil
	case TypeCompact:
		return renderCompact(s, opts), nil
	case TypeLanguages:
		return renderLanguages(s, opts), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidCardType, "unknown card type: %s", opts.Type)
	}
}

// statEntry is one block in the stat row.
type statEntry struct {
	label string
	value string
}

func statEntries(s summary.ActivitySummary) []statEntry {
	return []statEntry{
		{"Events", compactNumber(s.TotalEvents)},
		{"Day Streak", strconv.Itoa(s.Streak)},
		{"Stars", compactNumber(s.TotalStars)},
		{"Repos", compactNumber(s.TotalRepos)},
	}
}

func renderActivity(s summary.ActivitySummary, o Options) []byte {
	theme := LookupTheme(o.Theme)
	budget := lineBudget(o.Width)
	lines := WrapText(s.Narrative, budget)

	projects := s.RecentProjects
	if len(projects) > maxProjectRows {
		projects = projects[:maxProjectRows]
	}

	stats := statEntries(s)

	// Measure before emitting: the frame needs the final height.
	y := padding + titleSize
	y += sectionGap
	y += len(lines) * lineHeight
	if !o.HideStats {
		y += sectionGap
		if o.Layout == LayoutVertical {
			y += len(stats) * statRowHeight
		} else {
			y += statBlockHeight
		}
	}
	if !o.HideProjects && len(projects) > 0 {
		y += projectHeaderGap + textSize
		y += len(projects) * projectRowHeight
	}
	height := y + padding
	if height < minActivityHeight {
		height = minActivityHeight
	}

	var buf bytes.Buffer
	openSVG(&buf, o.Width, height, fmt.Sprintf("%s's GitHub activity", s.DisplayName))
	frame(&buf, o, theme, height)

	y = padding + titleSize
	title(&buf, theme, y, fmt.Sprintf("%s's GitHub Activity", s.DisplayName))

	y += sectionGap
	for _, line := range lines {
		y += lineHeight
		fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s">%s</text>`+"\n",
			padding, y-lineHeight+textSize, fontFamily, textSize, theme.Text, EscapeXML(line))
	}

	if !o.HideStats {
		y += sectionGap
		if o.Layout == LayoutVertical {
			for _, st := range stats {
				y += statRowHeight
				fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s"><tspan font-weight="600" fill="%s">%s</tspan> %s</text>`+"\n",
					padding, y-statRowHeight+textSize, fontFamily, textSize, theme.Muted, theme.Accent, EscapeXML(st.value), EscapeXML(st.label))
			}
		} else {
			innerW := o.Width - 2*padding
			step := innerW / len(stats)
			for i, st := range stats {
				x := padding + i*step
				fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" font-weight="700" fill="%s">%s</text>`+"\n",
					x, y+statValueSize, fontFamily, statValueSize, theme.Accent, EscapeXML(st.value))
				fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s">%s</text>`+"\n",
					x, y+statValueSize+14, fontFamily, smallSize, theme.Muted, EscapeXML(st.label))
			}
			y += statBlockHeight
		}
	}

	if !o.HideProjects && len(projects) > 0 {
		y += projectHeaderGap
		fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" font-weight="600" fill="%s">Recent Projects</text>`+"\n",
			padding, y+textSize, fontFamily, textSize, theme.Title)
		y += textSize

		detailBudget := lineBudget(o.Width) - 4
		for _, p := range projects {
			y += projectRowHeight
			rowTop := y - projectRowHeight
			fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" font-weight="600" fill="%s">%s</text>`+"\n",
				padding, rowTop+textSize+4, fontFamily, textSize, theme.Accent, EscapeXML(p.ShortName))
			if !p.LastActive.IsZero() {
				fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s" text-anchor="end">%s</text>`+"\n",
					o.Width-padding, rowTop+textSize+4, fontFamily, smallSize, theme.Muted, p.LastActive.Format("Jan 2"))
			}
			detail := p.Label
			if p.Detail != "" {
				detail += ": " + p.Detail
			}
			fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s">%s</text>`+"\n",
				padding, rowTop+textSize+18, fontFamily, smallSize, theme.Muted, EscapeXML(truncate(detail, detailBudget)))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// openSVG writes the document header with an accessible title.
func openSVG(buf *bytes.Buffer, width, height int, label string) {
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img" aria-label="%s">`+"\n",
		width, height, width, height, EscapeXML(label))
	fmt.Fprintf(buf, `  <title>%s</title>`+"\n", EscapeXML(label))
}

// frame draws the card background and optional border.
func frame(buf *bytes.Buffer, o Options, theme Theme, height int) {
	stroke := "none"
	if o.ShowBorder {
		stroke = theme.Border
	}
	fmt.Fprintf(buf, `  <rect x="0.5" y="0.5" width="%d" height="%d" rx="%g" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
		o.Width-1, height-1, o.BorderRadius, theme.Background, stroke)
}

func title(buf *bytes.Buffer, theme Theme, baseline int, text string) {
	fmt.Fprintf(buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" font-weight="600" fill="%s">%s</text>`+"\n",
		padding, baseline, fontFamily, titleSize, theme.Title, EscapeXML(text))
}

// lineBudget converts a card width into a character budget for greedy
// wrapping.
func lineBudget(width int) int {
	return (width - 2*padding) / charWidthPx
}

// compactNumber renders counts the way profile cards usually do:
// 1500 becomes 1.5k.
func compactNumber(n int) string {
	if n < 1000 {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%.1fk", float64(n)/1000)
}

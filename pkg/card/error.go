package card

import (
	"bytes"
	"fmt"
)

const minErrorHeight = 100

// RenderError draws a small card carrying an error message. Hosted
// deployments serve this instead of JSON so a broken README embed still
// shows something readable.
func RenderError(message string, o Options) []byte {
	o.normalize()
	theme := LookupTheme(o.Theme)
	lines := WrapText(message, lineBudget(o.Width))

	y := padding + titleSize
	y += sectionGap
	y += len(lines) * lineHeight
	height := y + padding
	if height < minErrorHeight {
		height = minErrorHeight
	}

	var buf bytes.Buffer
	openSVG(&buf, o.Width, height, "Something went wrong")
	frame(&buf, o, theme, height)

	y = padding + titleSize
	title(&buf, theme, y, "Something went wrong")

	y += sectionGap
	for _, line := range lines {
		y += lineHeight
		fmt.Fprintf(&buf, `  <text x="%d" y="%d" font-family="%s" font-size="%d" fill="%s">%s</text>`+"\n",
			padding, y-lineHeight+textSize, fontFamily, textSize, theme.Muted, EscapeXML(line))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

package card

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// EscapeXML escapes text for safe interpolation into SVG markup.
// Covers & < > " and '.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// WrapText greedily wraps text into lines of at most limit characters.
// A word longer than the limit gets its own line rather than being
// split mid-word.
func WrapText(s string, limit int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) <= limit {
			line += " " + word
			continue
		}
		lines = append(lines, line)
		line = word
	}
	return append(lines, line)
}

// truncate shortens s to at most limit runes, appending an ellipsis
// marker when something was cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 2 {
		return string(runes[:limit])
	}
	return string(runes[:limit-2]) + ".."
}

// Package card renders activity summaries as SVG cards for embedding
// in GitHub READMEs.
//
// Rendering is deterministic: the same summary and options always
// produce byte-identical output. There are no clock reads and every
// iteration over map-backed data is sorted first. All user-derived text
// is XML-escaped before interpolation.
package card

import (
	"sort"
)

// Card types.
const (
	TypeActivity  = "activity"
	TypeCompact   = "compact"
	TypeLanguages = "languages"
)

// DefaultTheme is the theme used when none is requested.
const DefaultTheme = "default"

// Theme is a named color palette.
type Theme struct {
	Name       string
	Background string
	Border     string
	Title      string
	Text       string
	Accent     string
	Muted      string
}

var themes = map[string]Theme{
	"default": {
		Name:       "default",
		Background: "#fffefe",
		Border:     "#e4e2e2",
		Title:      "#2f80ed",
		Text:       "#434d58",
		Accent:     "#4c71f2",
		Muted:      "#8b949e",
	},
	"dark": {
		Name:       "dark",
		Background: "#151515",
		Border:     "#30363d",
		Title:      "#fefefe",
		Text:       "#9f9f9f",
		Accent:     "#79ff97",
		Muted:      "#6e7681",
	},
	"radical": {
		Name:       "radical",
		Background: "#141321",
		Border:     "#2b2942",
		Title:      "#fe428e",
		Text:       "#a9fef7",
		Accent:     "#f8d847",
		Muted:      "#6a679e",
	},
	"merko": {
		Name:       "merko",
		Background: "#0a0f0b",
		Border:     "#1f2a22",
		Title:      "#abd200",
		Text:       "#68b587",
		Accent:     "#b7d364",
		Muted:      "#46604f",
	},
	"gruvbox": {
		Name:       "gruvbox",
		Background: "#282828",
		Border:     "#504945",
		Title:      "#fabd2f",
		Text:       "#8ec07c",
		Accent:     "#fe8019",
		Muted:      "#928374",
	},
	"tokyonight": {
		Name:       "tokyonight",
		Background: "#1a1b27",
		Border:     "#2f334d",
		Title:      "#70a5fd",
		Text:       "#38bdae",
		Accent:     "#bf91f3",
		Muted:      "#565f89",
	},
	"dracula": {
		Name:       "dracula",
		Background: "#282a36",
		Border:     "#44475a",
		Title:      "#ff6e96",
		Text:       "#f8f8f2",
		Accent:     "#bd93f9",
		Muted:      "#6272a4",
	},
	"onedark": {
		Name:       "onedark",
		Background: "#282c34",
		Border:     "#3e4451",
		Title:      "#e4bf7a",
		Text:       "#df6d74",
		Accent:     "#8eb573",
		Muted:      "#5c6370",
	},
}

// LookupTheme resolves a theme by name, falling back to the default
// palette for unknown names. The HTTP layer rejects unknown names
// before rendering; the fallback keeps library callers safe.
func LookupTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// ValidTheme reports whether a theme name exists.
func ValidTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// ThemeNames lists all theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidType reports whether a card type exists.
func ValidType(cardType string) bool {
	switch cardType {
	case TypeActivity, TypeCompact, TypeLanguages:
		return true
	}
	return false
}

// TypeNames lists all card types in sorted order.
func TypeNames() []string {
	return []string{TypeActivity, TypeCompact, TypeLanguages}
}

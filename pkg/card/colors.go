package card

// languageColors is a subset of the GitHub linguist palette covering
// common languages. Anything else falls back to a neutral gray.
var languageColors = map[string]string{
	"Go":         "#00ADD8",
	"JavaScript": "#f1e05a",
	"TypeScript": "#3178c6",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"C":          "#555555",
	"C++":        "#f34b7d",
	"C#":         "#178600",
	"Rust":       "#dea584",
	"Ruby":       "#701516",
	"PHP":        "#4F5D95",
	"Swift":      "#F05138",
	"Kotlin":     "#A97BFF",
	"Dart":       "#00B4AB",
	"Shell":      "#89e051",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"SCSS":       "#c6538c",
	"Vue":        "#41b883",
	"Svelte":     "#ff3e00",
	"Elixir":     "#6e4a7e",
	"Erlang":     "#B83998",
	"Haskell":    "#5e5086",
	"Lua":        "#000080",
	"Perl":       "#0298c3",
	"R":          "#198CE7",
	"Scala":      "#c22d40",
	"Zig":        "#ec915c",
	"OCaml":      "#ef7a08",
	"Clojure":    "#db5855",
	"Objective-C": "#438eff",
}

const neutralLanguageColor = "#858585"

// languageColor returns the display color for a language name.
func languageColor(name string) string {
	if c, ok := languageColors[name]; ok {
		return c
	}
	return neutralLanguageColor
}

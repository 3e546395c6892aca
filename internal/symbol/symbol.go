// Package symbol maps news organization names to the display glyph shown
// next to their articles.
package symbol

// DefaultSymbol is returned for any source not present in the table.
const DefaultSymbol = "📱"

var newsSymbols = map[string]string{
	"Reuters":                 "🌐",
	"BBC News":                "🇬🇧",
	"CNN":                     "🔴",
	"The New York Times":      "📰",
	"Associated Press":        "📡",
	"Bloomberg":               "💹",
	"CNBC":                    "💼",
	"Fox News":                "🦊",
	"The Guardian":            "👁️",
	"The Washington Post":     "📝",
	"ABC News":                "🎯",
	"NBC News":                "🔵",
	"CBS News":                "👁️",
	"USA Today":               "🗽",
	"The Wall Street Journal": "📊",
	"Business Insider":        "💼",
	"TechCrunch":              "💻",
	"Engadget":                "🔧",
	"The Verge":               "▼",
	"Wired":                   "🔌",
}

// Lookup resolves a source name to its symbol. The lookup is total: names
// outside the table resolve to DefaultSymbol, never to an empty string.
func Lookup(sourceName string) string {
	if s, ok := newsSymbols[sourceName]; ok {
		return s
	}
	return DefaultSymbol
}

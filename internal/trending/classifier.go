package trending

import (
	"strings"

	"github.com/TommTerc/news-matrix-2.0/internal/model"
)

type categoryKeywords struct {
	category string
	keywords []string
}

// Table order is significant: classification is first-match-wins.
var categoryTable = []categoryKeywords{
	{"Technology", []string{"ai", "tech", "cyber", "digital", "software", "hardware", "app"}},
	{"Business", []string{"market", "economy", "finance", "stock", "trade", "business"}},
	{"Science", []string{"science", "research", "study", "discovery", "space", "climate"}},
	{"Politics", []string{"policy", "government", "election", "political", "vote"}},
	{"Entertainment", []string{"movie", "music", "celebrity", "film", "tv", "show"}},
	{"Sports", []string{"sport", "game", "player", "team", "match", "tournament"}},
}

// Categorize classifies a topic name by case-insensitive keyword substring
// match against the static table. Topics matching no entry are "General".
func Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, entry := range categoryTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return model.GeneralCategory
}

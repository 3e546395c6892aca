package feed

import "github.com/TommTerc/news-matrix-2.0/internal/model"

// DefaultSources is the static feed configuration the aggregator serves.
var DefaultSources = []model.FeedSource{
	{
		ID:       "google-business",
		Name:     "Google Business News",
		URL:      "https://news.google.com/rss/headlines/section/topic/BUSINESS?hl=en-US&gl=US&ceid=US:en",
		Category: "business",
	},
}

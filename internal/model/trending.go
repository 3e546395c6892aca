package model

import "time"

const (
	TrendSourceTwitter = "twitter"
	TrendSourceNews    = "news"

	GeneralCategory = "General"
)

// TrendingTopic is an externally supplied subject of current discussion
// volume, classified into the internal category taxonomy.
type TrendingTopic struct {
	ID         string
	Name       string
	TweetCount int
	Category   string
	Source     string
	Timestamp  time.Time
}

package model

import "time"

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// FeedSource describes a configured syndication endpoint. Instances are
// created from static configuration at startup and never mutated.
type FeedSource struct {
	ID       string
	Name     string
	URL      string
	Category string
}

type Engagement struct {
	Likes    int
	Comments int
	Shares   int
	Views    int
}

// NewsItem is the application-internal representation of a single feed
// entry, produced by the feed fetcher on every fetch.
type NewsItem struct {
	ID          string
	Title       string
	Description string
	Source      string
	PublishedAt time.Time
	Image       string
	Engagement  Engagement
	Trending    bool
	Keywords    []string
}

// ArchivedItem is a NewsItem persisted by the fetcher job, plus the
// bookkeeping columns the analyzer pipeline needs.
type ArchivedItem struct {
	ID          int64
	ItemID      string
	SourceID    string
	Title       string
	Description string
	SourceName  string
	PublishedAt time.Time
	FetchedAt   time.Time
	Keywords    []string
	Status      string
}

// Article is the headline-proxy output shape consumed by the frontend.
type Article struct {
	SourceName   string
	SourceSymbol string
	Title        string
	Description  string
	URL          string
	PublishedAt  string
}

// FeedInfo carries the channel-level metadata returned by the RSS proxy.
type FeedInfo struct {
	Title       string
	Description string
	Link        string
}

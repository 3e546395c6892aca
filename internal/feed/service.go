package feed

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/TommTerc/news-matrix-2.0/internal/model"
)

type ItemFetcher interface {
	Fetch(ctx context.Context, source model.FeedSource) ([]model.NewsItem, error)
}

// Service aggregates the configured feed sources behind a TTL cache. One
// instance is constructed at startup and shared by its consumers.
type Service struct {
	sources []model.FeedSource
	fetcher ItemFetcher
	cache   *Cache
}

func NewService(sources []model.FeedSource, fetcher ItemFetcher) *Service {
	return &Service{
		sources: sources,
		fetcher: fetcher,
		cache:   NewCache(CacheTTL),
	}
}

func (s *Service) Sources() []model.FeedSource {
	return s.sources
}

func (s *Service) Source(id string) (model.FeedSource, bool) {
	for _, src := range s.sources {
		if src.ID == id {
			return src, true
		}
	}
	return model.FeedSource{}, false
}

// GetFeed returns a source's items, fetching only when the cached entry
// has expired. Fetch and parse failures are logged and collapse to an
// empty result so one bad source never fails an aggregate response.
func (s *Service) GetFeed(ctx context.Context, source model.FeedSource) []model.NewsItem {
	if items, ok := s.cache.Get(source.ID); ok {
		return items
	}

	items, err := s.fetcher.Fetch(ctx, source)
	if err != nil {
		slog.Error("error fetching feed", "feed", source.Name, "error", err)
		return []model.NewsItem{}
	}

	s.cache.Set(source.ID, items)
	return items
}

// FetchAll fetches every configured source concurrently and returns the
// flattened result sorted by publication time, newest first. Items with
// equal timestamps keep their source declaration order.
func (s *Service) FetchAll(ctx context.Context) []model.NewsItem {
	perSource := make([][]model.NewsItem, len(s.sources))

	var wg sync.WaitGroup
	for i, src := range s.sources {
		wg.Add(1)
		go func(i int, src model.FeedSource) {
			defer wg.Done()
			perSource[i] = s.GetFeed(ctx, src)
		}(i, src)
	}
	wg.Wait()

	var items []model.NewsItem
	for _, batch := range perSource {
		items = append(items, batch...)
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].PublishedAt.After(items[b].PublishedAt)
	})

	return items
}

// FilterByCategory keeps the items whose keyword list contains the given
// category, compared case-insensitively. An unmatched category yields an
// empty slice, not an error.
func FilterByCategory(items []model.NewsItem, category string) []model.NewsItem {
	filtered := []model.NewsItem{}
	for _, item := range items {
		for _, kw := range item.Keywords {
			if strings.EqualFold(kw, category) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

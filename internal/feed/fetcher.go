package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/TommTerc/news-matrix-2.0/internal/model"
	"github.com/TommTerc/news-matrix-2.0/internal/symbol"
)

const (
	fetchTimeout     = 10 * time.Second
	placeholderImage = "https://via.placeholder.com/800x400"
)

type Fetcher struct {
	parser *gofeed.Parser
}

func NewFetcher() *Fetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: fetchTimeout}
	return &Fetcher{parser: parser}
}

// Fetch retrieves a configured feed and normalizes its entries. A network
// or parse failure is returned as an error; callers decide whether to
// surface or swallow it.
func (f *Fetcher) Fetch(ctx context.Context, source model.FeedSource) ([]model.NewsItem, error) {
	parsed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching feed %s: %w", source.Name, err)
	}

	items := make([]model.NewsItem, 0, len(parsed.Items))
	for i, item := range parsed.Items {
		id := item.GUID
		if id == "" {
			id = fmt.Sprintf("%s-%d", source.ID, i)
		}

		title := item.Title
		if title == "" {
			title = "Untitled"
		}

		items = append(items, model.NewsItem{
			ID:          id,
			Title:       title,
			Description: itemDescription(item),
			Source:      source.Name,
			PublishedAt: publishedAt(item),
			Image:       extractImage(item),
			Keywords:    append([]string{source.Category}, item.Categories...),
		})
	}

	return items, nil
}

// Parse fetches an arbitrary feed URL and reshapes it for the RSS proxy
// endpoint. The feed title resolves the source symbol; feeds without a
// title fall back to "Unknown Source".
func (f *Fetcher) Parse(ctx context.Context, url string) (model.FeedInfo, []model.Article, error) {
	parsed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return model.FeedInfo{}, nil, fmt.Errorf("fetching feed %s: %w", url, err)
	}

	sourceName := parsed.Title
	if sourceName == "" {
		sourceName = "Unknown Source"
	}

	articles := make([]model.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		articles = append(articles, model.Article{
			SourceName:   sourceName,
			SourceSymbol: symbol.Lookup(parsed.Title),
			Title:        item.Title,
			Description:  itemDescription(item),
			URL:          item.Link,
			PublishedAt:  item.Published,
		})
	}

	info := model.FeedInfo{
		Title:       parsed.Title,
		Description: parsed.Description,
		Link:        parsed.Link,
	}

	return info, articles, nil
}

func itemDescription(item *gofeed.Item) string {
	if desc := stripHTML(item.Description); desc != "" {
		return desc
	}
	return stripHTML(item.Content)
}

func publishedAt(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	return time.Now()
}

// extractImage picks an item image in priority order: media:content,
// media:thumbnail, enclosure, placeholder. Never returns an empty string.
func extractImage(item *gofeed.Item) string {
	if url := mediaURL(item, "content"); url != "" {
		return url
	}
	if url := mediaURL(item, "thumbnail"); url != "" {
		return url
	}
	for _, enc := range item.Enclosures {
		if enc.URL != "" {
			return enc.URL
		}
	}
	return placeholderImage
}

func mediaURL(item *gofeed.Item, element string) string {
	media, ok := item.Extensions["media"]
	if !ok {
		return ""
	}
	for _, ext := range media[element] {
		if url := ext.Attrs["url"]; url != "" {
			return url
		}
	}
	return ""
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

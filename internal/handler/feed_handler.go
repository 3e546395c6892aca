package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TommTerc/news-matrix-2.0/internal/feed"
	"github.com/TommTerc/news-matrix-2.0/internal/model"
)

type FeedService interface {
	Sources() []model.FeedSource
	Source(id string) (model.FeedSource, bool)
	GetFeed(ctx context.Context, source model.FeedSource) []model.NewsItem
	FetchAll(ctx context.Context) []model.NewsItem
}

type FeedHandler struct {
	service FeedService
}

func NewFeedHandler(service FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

// GetSources lists the configured feed sources.
func (h *FeedHandler) GetSources(c *gin.Context) {
	sources := h.service.Sources()

	res := make([]FeedSourceResponse, 0, len(sources))
	for _, src := range sources {
		res = append(res, FeedSourceResponse{
			ID:       src.ID,
			Name:     src.Name,
			URL:      src.URL,
			Category: src.Category,
		})
	}

	c.JSON(http.StatusOK, gin.H{"sources": res})
}

// GetFeedItems serves the aggregated feed, optionally narrowed to a single
// configured source and/or a category. Failed sources contribute nothing;
// the response shape is always well-formed.
func (h *FeedHandler) GetFeedItems(c *gin.Context) {
	var items []model.NewsItem

	if feedID := c.Query("feedId"); feedID != "" {
		source, ok := h.service.Source(feedID)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Feed not found",
			})
			return
		}
		items = h.service.GetFeed(c.Request.Context(), source)
	} else {
		items = h.service.FetchAll(c.Request.Context())
	}

	if category := c.Query("category"); category != "" {
		items = feed.FilterByCategory(items, category)
	}

	res := FeedItemsResponse{
		Items: make([]NewsItemResponse, 0, len(items)),
		Total: len(items),
	}
	for _, item := range items {
		res.Items = append(res.Items, toNewsItemResponse(item))
	}

	c.JSON(http.StatusOK, res)
}

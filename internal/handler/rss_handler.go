package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TommTerc/news-matrix-2.0/internal/model"
)

type FeedParser interface {
	Parse(ctx context.Context, url string) (model.FeedInfo, []model.Article, error)
}

type RSSHandler struct {
	parser FeedParser
}

func NewRSSHandler(parser FeedParser) *RSSHandler {
	return &RSSHandler{parser: parser}
}

func (h *RSSHandler) GetRSS(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "RSS feed URL is required",
		})
		return
	}

	info, articles, err := h.parser.Parse(c.Request.Context(), url)
	if err != nil {
		slog.Error("error fetching RSS feed", "url", url, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to fetch RSS feed",
		})
		return
	}

	c.JSON(http.StatusOK, RSSResponse{
		Status: "success",
		Feed: FeedInfoResponse{
			Title:       info.Title,
			Description: info.Description,
			Link:        info.Link,
		},
		Articles: toArticleResponses(articles),
	})
}

func (h *RSSHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

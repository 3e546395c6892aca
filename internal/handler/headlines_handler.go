package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/TommTerc/news-matrix-2.0/internal/headlines"
)

type HeadlineClient interface {
	TopHeadlines(ctx context.Context, params url.Values) (*headlines.Result, error)
}

type HeadlinesHandler struct {
	client HeadlineClient
}

func NewHeadlinesHandler(client HeadlineClient) *HeadlinesHandler {
	return &HeadlinesHandler{client: client}
}

// GetTopHeadlines proxies the query upstream. Upstream failures keep their
// status and message; anything else becomes a generic 500 envelope.
func (h *HeadlinesHandler) GetTopHeadlines(c *gin.Context) {
	result, err := h.client.TopHeadlines(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		var upstream *headlines.UpstreamError
		if errors.As(err, &upstream) {
			slog.Error("upstream headlines error", "status", upstream.Status, "message", upstream.Message)
			c.JSON(upstream.Status, gin.H{
				"status":  "error",
				"message": upstream.Message,
			})
			return
		}

		slog.Error("error fetching top headlines", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, HeadlinesResponse{
		Status:       result.Status,
		TotalResults: result.TotalResults,
		Articles:     toArticleResponses(result.Articles),
	})
}

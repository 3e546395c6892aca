package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TommTerc/news-matrix-2.0/internal/model"
)

type TrendService interface {
	GetAllTrends(ctx context.Context) []model.TrendingTopic
}

type TrendHistoryStore interface {
	GetRecent(limit int) ([]model.TrendingTopic, error)
}

type TrendingHandler struct {
	service TrendService
	history TrendHistoryStore
}

func NewTrendingHandler(service TrendService, history TrendHistoryStore) *TrendingHandler {
	return &TrendingHandler{service: service, history: history}
}

func (h *TrendingHandler) GetTrending(c *gin.Context) {
	trends := h.service.GetAllTrends(c.Request.Context())

	res := TrendsResponse{Trends: make([]TrendResponse, 0, len(trends))}
	for _, t := range trends {
		res.Trends = append(res.Trends, TrendResponse{
			ID:         t.ID,
			Name:       t.Name,
			TweetCount: t.TweetCount,
			Category:   t.Category,
			Source:     t.Source,
			Timestamp:  t.Timestamp.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, res)
}

// GetTrendingHistory returns previously persisted trend batches, newest
// first.
func (h *TrendingHandler) GetTrendingHistory(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid limit",
			})
			return
		}
		limit = parsed
	}

	trends, err := h.history.GetRecent(limit)
	if err != nil {
		slog.Error("error fetching trend history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database error",
		})
		return
	}

	res := TrendsResponse{Trends: make([]TrendResponse, 0, len(trends))}
	for _, t := range trends {
		res.Trends = append(res.Trends, TrendResponse{
			ID:         t.ID,
			Name:       t.Name,
			TweetCount: t.TweetCount,
			Category:   t.Category,
			Source:     t.Source,
			Timestamp:  t.Timestamp.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, res)
}

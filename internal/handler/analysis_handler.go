package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TommTerc/news-matrix-2.0/internal/model"
)

type AnalysisStore interface {
	GetByItemID(itemID int64) (*model.Analysis, error)
}

type AnalysisHandler struct {
	repository AnalysisStore
}

func NewAnalysisHandler(repository AnalysisStore) *AnalysisHandler {
	return &AnalysisHandler{repository: repository}
}

func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	id := c.Param("itemId")

	itemID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.Error("invalid item id", "id", id, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	analysis, err := h.repository.GetByItemID(itemID)
	if err != nil {
		slog.Error("error fetching analysis", "error", err, "item_id", itemID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if analysis == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	c.JSON(http.StatusOK, AnalysisResponse{
		ItemID:             analysis.ItemID,
		Summary:            analysis.Summary,
		KeyPoints:          analysis.KeyPoints,
		Sentiment:          analysis.Sentiment,
		Topics:             analysis.Topics,
		SuggestedQuestions: analysis.SuggestedQuestions,
		ModelUsed:          analysis.ModelUsed,
		CreatedAt:          analysis.CreatedAt.Format(time.RFC3339),
	})
}

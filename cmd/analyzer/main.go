package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/TommTerc/news-matrix-2.0/db"
	"github.com/TommTerc/news-matrix-2.0/internal/model"
	"github.com/TommTerc/news-matrix-2.0/internal/repository"
	"github.com/TommTerc/news-matrix-2.0/pkg/gpt"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	const maxRetries = 3

	err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	err = db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	itemRepo := repository.NewItemRepository(db.DB)
	analysisRepo := repository.NewAnalysisRepository(db.DB)

	var client gpt.AnalysisClient
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		client = gpt.NewAnthropicClient(key)
	} else {
		client = gpt.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
	}

	for {
		id, err := db.PopFromQueue(db.AnalyzeQueueKey, 0)
		if err != nil {
			slog.Error("error popping from Redis queue", "error", err)
			break
		}

		itemID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			slog.Error("invalid item id in queue", "id", id, "error", err)
			continue
		}

		errorCount, err := itemRepo.GetErrorCount(itemID)
		if err != nil {
			slog.Error("error getting error count", "error", err, "item_id", itemID)
			continue
		}

		if errorCount >= maxRetries {
			slog.Warn("item exceeded max retries, marking as failed", "item_id", itemID, "error_count", errorCount)
			itemRepo.UpdateStatus(itemID, model.StatusFailed)
			db.PushToQueue(db.DeadLetterKey, id)
			continue
		}

		item, err := itemRepo.GetByID(itemID)
		if err != nil {
			slog.Error("error getting item from DB", "error", err, "item_id", itemID)
			continue
		}

		if item == nil {
			slog.Warn("item not found in DB", "item_id", itemID)
			continue
		}

		input := gpt.AnalyzeInput{
			Title:       item.Title,
			Description: item.Description,
		}

		result, err := client.Analyze(input)
		if err != nil {
			slog.Error("error analyzing item", "error", err, "item_id", itemID)

			itemRepo.SaveError(itemID, err.Error(), "gpt_error")

			db.PushToQueue(db.AnalyzeQueueKey, strconv.FormatInt(itemID, 10))

			time.Sleep(5 * time.Second)
			continue
		}

		analysis := model.Analysis{
			ItemID:             item.ID,
			Summary:            result.Summary,
			KeyPoints:          result.KeyPoints,
			Sentiment:          result.Sentiment,
			Topics:             result.Topics,
			SuggestedQuestions: result.SuggestedQuestions,
			ModelUsed:          result.ModelUsed,
		}

		err = analysisRepo.SaveAnalysis(&analysis)
		if err != nil {
			slog.Error("error saving analysis", "error", err, "item_id", itemID)
			continue
		}

		err = itemRepo.UpdateStatus(itemID, model.StatusCompleted)
		if err != nil {
			slog.Error("error updating item status", "error", err, "item_id", itemID)
			continue
		}

		slog.Info("item analyzed successfully", "item_id", item.ID)
	}

}

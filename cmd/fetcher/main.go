package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/TommTerc/news-matrix-2.0/db"
	"github.com/TommTerc/news-matrix-2.0/internal/feed"
	"github.com/TommTerc/news-matrix-2.0/internal/model"
	"github.com/TommTerc/news-matrix-2.0/internal/repository"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	repo := repository.NewItemRepository(db.DB)
	fetcher := feed.NewFetcher()
	ctx := context.Background()

	for _, source := range feed.DefaultSources {
		items, err := fetcher.Fetch(ctx, source)
		if err != nil {
			slog.Error("error fetching feed", "feed", source.Name, "error", err)
			continue
		}

		var saved, duplicated, errors int

		for _, item := range items {
			archived := model.ArchivedItem{
				ItemID:      item.ID,
				SourceID:    source.ID,
				Title:       item.Title,
				Description: item.Description,
				SourceName:  item.Source,
				PublishedAt: item.PublishedAt,
				Keywords:    item.Keywords,
			}

			success, err := repo.SaveItem(&archived)
			if err != nil {
				slog.Error("error saving item", "feed", source.Name, "error", err)
				errors++
				continue
			}

			if !success {
				slog.Info("duplicate item skipped", "feed", source.Name, "item_id", item.ID)
				duplicated++
				continue
			}

			saved++

			err = db.PushToQueue(db.AnalyzeQueueKey, strconv.FormatInt(archived.ID, 10))
			if err != nil {
				slog.Error("error pushing to Redis queue", "feed", source.Name, "error", err, "item_id", archived.ID)
				errors++
			}
		}

		slog.Info("fetch complete", "feed", source.Name, "saved", saved, "duplicated", duplicated, "errors", errors)
	}
}

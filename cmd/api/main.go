package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/TommTerc/news-matrix-2.0/db"
	"github.com/TommTerc/news-matrix-2.0/internal/feed"
	"github.com/TommTerc/news-matrix-2.0/internal/handler"
	"github.com/TommTerc/news-matrix-2.0/internal/headlines"
	"github.com/TommTerc/news-matrix-2.0/internal/repository"
	"github.com/TommTerc/news-matrix-2.0/internal/trending"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	fetcher := feed.NewFetcher()
	feedService := feed.NewService(feed.DefaultSources, fetcher)

	headlinesClient := headlines.NewClient(os.Getenv("NEWS_API_KEY"))

	trendRepo := repository.NewTrendRepository(db.DB)
	trendSource := trending.NewTwitterClient(os.Getenv("TWITTER_BEARER_TOKEN"))
	trendService := trending.NewService(trendSource, trendRepo)

	analysisRepo := repository.NewAnalysisRepository(db.DB)

	rssHandler := handler.NewRSSHandler(fetcher)
	headlinesHandler := handler.NewHeadlinesHandler(headlinesClient)
	feedHandler := handler.NewFeedHandler(feedService)
	trendingHandler := handler.NewTrendingHandler(trendService, trendRepo)
	analysisHandler := handler.NewAnalysisHandler(analysisRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/health", rssHandler.GetHealth)
	r.GET("/api/rss", rssHandler.GetRSS)
	r.GET("/api/news/top-headlines", headlinesHandler.GetTopHeadlines)
	r.GET("/api/feeds", feedHandler.GetFeedItems)
	r.GET("/api/feeds/sources", feedHandler.GetSources)
	r.GET("/api/trending", trendingHandler.GetTrending)
	r.GET("/api/trending/history", trendingHandler.GetTrendingHistory)
	r.GET("/api/analysis/:itemId", analysisHandler.GetAnalysis)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

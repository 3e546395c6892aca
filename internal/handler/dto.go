package handler

import (
	"time"

	"github.com/TommTerc/news-matrix-2.0/internal/model"
)

type SourceResponse struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

type ArticleResponse struct {
	Source      SourceResponse `json:"source"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	URL         string         `json:"url"`
	PublishedAt string         `json:"publishedAt"`
}

type FeedInfoResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type RSSResponse struct {
	Status   string            `json:"status"`
	Feed     FeedInfoResponse  `json:"feed"`
	Articles []ArticleResponse `json:"articles"`
}

type HeadlinesResponse struct {
	Status       string            `json:"status"`
	TotalResults int               `json:"totalResults"`
	Articles     []ArticleResponse `json:"articles"`
}

type FeedSourceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
}

type NewsItemResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Source      string   `json:"source"`
	Timestamp   string   `json:"timestamp"`
	Image       string   `json:"image"`
	Likes       int      `json:"likes"`
	Comments    int      `json:"comments"`
	Shares      int      `json:"shares"`
	Views       int      `json:"views"`
	Trending    bool     `json:"trending"`
	Keywords    []string `json:"keywords"`
}

type FeedItemsResponse struct {
	Items []NewsItemResponse `json:"items"`
	Total int                `json:"total"`
}

type TrendResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TweetCount int    `json:"tweetCount"`
	Category   string `json:"category"`
	Source     string `json:"source"`
	Timestamp  string `json:"timestamp"`
}

type TrendsResponse struct {
	Trends []TrendResponse `json:"trends"`
}

type AnalysisResponse struct {
	ItemID             int64    `json:"item_id"`
	Summary            string   `json:"summary"`
	KeyPoints          []string `json:"key_points"`
	Sentiment          string   `json:"sentiment"`
	Topics             []string `json:"topics"`
	SuggestedQuestions []string `json:"suggested_questions"`
	ModelUsed          string   `json:"model_used"`
	CreatedAt          string   `json:"created_at"`
}

func toArticleResponse(a model.Article) ArticleResponse {
	return ArticleResponse{
		Source: SourceResponse{
			Name:   a.SourceName,
			Symbol: a.SourceSymbol,
		},
		Title:       a.Title,
		Description: a.Description,
		URL:         a.URL,
		PublishedAt: a.PublishedAt,
	}
}

func toArticleResponses(articles []model.Article) []ArticleResponse {
	res := make([]ArticleResponse, 0, len(articles))
	for _, a := range articles {
		res = append(res, toArticleResponse(a))
	}
	return res
}

func toNewsItemResponse(item model.NewsItem) NewsItemResponse {
	return NewsItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Source:      item.Source,
		Timestamp:   item.PublishedAt.Format(time.RFC3339),
		Image:       item.Image,
		Likes:       item.Engagement.Likes,
		Comments:    item.Engagement.Comments,
		Shares:      item.Engagement.Shares,
		Views:       item.Engagement.Views,
		Trending:    item.Trending,
		Keywords:    item.Keywords,
	}
}

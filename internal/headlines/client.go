// Package headlines proxies top-headline queries to NewsAPI, keeping the
// server-held credential out of the forwarded query string.
package headlines

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/TommTerc/news-matrix-2.0/internal/model"
	"github.com/TommTerc/news-matrix-2.0/internal/symbol"
)

const topHeadlinesURL = "https://newsapi.org/v2/top-headlines"

// UpstreamError carries a non-2xx NewsAPI response through to the caller.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Message)
}

type Result struct {
	Status       string
	TotalResults int
	Articles     []model.Article
}

type Client struct {
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// TopHeadlines forwards the client-supplied query upstream. Any apiKey in
// the incoming query is dropped; the server key travels in the X-Api-Key
// header only. Missing country and pageSize get the application defaults.
func (c *Client) TopHeadlines(ctx context.Context, params url.Values) (*Result, error) {
	query := url.Values{}
	for key, values := range params {
		if key == "apiKey" {
			continue
		}
		for _, v := range values {
			query.Add(key, v)
		}
	}
	if query.Get("country") == "" {
		query.Set("country", "us")
	}
	if query.Get("pageSize") == "" {
		query.Set("pageSize", "5")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, topHeadlinesURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, upstreamError(resp)
	}

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	articles := make([]model.Article, 0, len(raw.Articles))
	for _, a := range raw.Articles {
		articles = append(articles, model.Article{
			SourceName:   a.Source.Name,
			SourceSymbol: symbol.Lookup(a.Source.Name),
			Title:        a.Title,
			Description:  a.Description,
			URL:          a.URL,
			PublishedAt:  a.PublishedAt,
		})
	}

	return &Result{
		Status:       raw.Status,
		TotalResults: raw.TotalResults,
		Articles:     articles,
	}, nil
}

func upstreamError(resp *http.Response) *UpstreamError {
	upstream := &UpstreamError{Status: resp.StatusCode, Message: "Internal server error"}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		upstream.Message = body.Message
	}
	return upstream
}

type newsAPIResponse struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Articles     []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

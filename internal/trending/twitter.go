package trending

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/TommTerc/news-matrix-2.0/internal/model"
)

// worldwide WOEID
const twitterTrendsURL = "https://api.twitter.com/2/trends/by/woeid/1"

type TwitterClient struct {
	bearerToken string
	httpClient  *http.Client
}

func NewTwitterClient(bearerToken string) *TwitterClient {
	return &TwitterClient{
		bearerToken: bearerToken,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *TwitterClient) FetchTrends(ctx context.Context) ([]model.TrendingTopic, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, twitterTrendsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("twitter request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("twitter fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("twitter fetch: unexpected status %d", resp.StatusCode)
	}

	var raw twitterResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("twitter decode: %w", err)
	}

	now := time.Now()
	trends := make([]model.TrendingTopic, 0, len(raw.Data))
	for _, t := range raw.Data {
		trends = append(trends, model.TrendingTopic{
			ID:         t.ID,
			Name:       t.Name,
			TweetCount: t.TweetVolume,
			Source:     model.TrendSourceTwitter,
			Timestamp:  now,
		})
	}

	return trends, nil
}

type twitterResponse struct {
	Data []twitterTrend `json:"data"`
}

type twitterTrend struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TweetVolume int    `json:"tweet_volume"`
}

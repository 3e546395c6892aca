package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"

	"github.com/TommTerc/news-matrix-2.0/internal/model"
)

type fakeFeedService struct {
	sources []model.FeedSource
	byID    map[string][]model.NewsItem
	all     []model.NewsItem
}

func (f *fakeFeedService) Sources() []model.FeedSource {
	return f.sources
}

func (f *fakeFeedService) Source(id string) (model.FeedSource, bool) {
	for _, s := range f.sources {
		if s.ID == id {
			return s, true
		}
	}
	return model.FeedSource{}, false
}

func (f *fakeFeedService) GetFeed(ctx context.Context, source model.FeedSource) []model.NewsItem {
	return f.byID[source.ID]
}

func (f *fakeFeedService) FetchAll(ctx context.Context) []model.NewsItem {
	return f.all
}

func newFeedRouter(service FeedService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewFeedHandler(service)
	r.GET("/api/feeds", h.GetFeedItems)
	r.GET("/api/feeds/sources", h.GetSources)
	return r
}

func TestGetSources(t *testing.T) {
	service := &fakeFeedService{
		sources: []model.FeedSource{
			{ID: "google-business", Name: "Google Business News", URL: "https://news.google.com/rss", Category: "business"},
		},
	}
	r := newFeedRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/feeds/sources", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Sources []FeedSourceResponse `json:"sources"`
	}
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, len(res.Sources))
	assert.Equal(t, "google-business", res.Sources[0].ID)
	assert.Equal(t, "business", res.Sources[0].Category)
}

func TestGetFeedItems_AllSources(t *testing.T) {
	service := &fakeFeedService{
		all: []model.NewsItem{
			{ID: "1", Title: "First", PublishedAt: time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC), Keywords: []string{"business"}},
			{ID: "2", Title: "Second", PublishedAt: time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC), Keywords: []string{"technology"}},
		},
	}
	r := newFeedRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/feeds", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res FeedItemsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "First", res.Items[0].Title)
	assert.Equal(t, "2026-03-03T10:00:00Z", res.Items[0].Timestamp)
}

func TestGetFeedItems_SingleFeed(t *testing.T) {
	service := &fakeFeedService{
		sources: []model.FeedSource{{ID: "google-business", Name: "Google Business News"}},
		byID: map[string][]model.NewsItem{
			"google-business": {{ID: "g-1", Title: "Only"}},
		},
	}
	r := newFeedRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/feeds?feedId=google-business", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res FeedItemsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "g-1", res.Items[0].ID)
}

func TestGetFeedItems_UnknownFeed(t *testing.T) {
	r := newFeedRouter(&fakeFeedService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/feeds?feedId=nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var res errorEnvelope
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "error", res.Status)
	assert.Equal(t, "Feed not found", res.Message)
}

func TestGetFeedItems_CategoryFilter(t *testing.T) {
	service := &fakeFeedService{
		all: []model.NewsItem{
			{ID: "1", Keywords: []string{"business"}},
			{ID: "2", Keywords: []string{"Technology"}},
		},
	}
	r := newFeedRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/feeds?category=technology", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res FeedItemsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "2", res.Items[0].ID)
}

func TestGetFeedItems_EmptyIsWellFormed(t *testing.T) {
	r := newFeedRouter(&fakeFeedService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/feeds", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res FeedItemsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 0, res.Total)
	assert.NotEqual(t, res.Items, nil)
}

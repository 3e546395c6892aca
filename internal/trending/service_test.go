package trending

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/TommTerc/news-matrix-2.0/internal/model"
)

type fakeSource struct {
	mu     sync.Mutex
	calls  int
	trends []model.TrendingTopic
	err    error
}

func (f *fakeSource) FetchTrends(ctx context.Context) ([]model.TrendingTopic, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.trends, nil
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeTrendStore struct {
	batches chan []model.TrendingTopic
	err     error
}

func newFakeTrendStore() *fakeTrendStore {
	return &fakeTrendStore{batches: make(chan []model.TrendingTopic, 1)}
}

func (f *fakeTrendStore) SaveBatch(trends []model.TrendingTopic) error {
	f.batches <- trends
	return f.err
}

func (f *fakeTrendStore) waitForBatch(t *testing.T) []model.TrendingTopic {
	t.Helper()
	select {
	case batch := <-f.batches:
		return batch
	case <-time.After(time.Second):
		t.Fatal("no batch persisted within 1s")
		return nil
	}
}

func someTrends(n int) []model.TrendingTopic {
	trends := make([]model.TrendingTopic, 0, n)
	for i := 0; i < n; i++ {
		trends = append(trends, model.TrendingTopic{
			ID:         string(rune('a' + i)),
			Name:       "topic",
			TweetCount: (i + 1) * 100,
			Source:     model.TrendSourceTwitter,
			Timestamp:  time.Now(),
		})
	}
	return trends
}

func TestGetAllTrendsTopTenByTweetCount(t *testing.T) {
	source := &fakeSource{trends: someTrends(12)}
	store := newFakeTrendStore()

	s := NewService(source, store)

	trends := s.GetAllTrends(context.Background())

	assert.Equal(t, 10, len(trends))
	assert.Equal(t, 1200, trends[0].TweetCount)
	assert.Equal(t, 300, trends[9].TweetCount)

	store.waitForBatch(t)
}

func TestGetAllTrendsCachesWithinTTL(t *testing.T) {
	source := &fakeSource{trends: someTrends(3)}
	store := newFakeTrendStore()

	s := NewService(source, store)

	s.GetAllTrends(context.Background())
	store.waitForBatch(t)
	s.GetAllTrends(context.Background())

	assert.Equal(t, 1, source.callCount())
}

func TestGetAllTrendsRefetchesAfterTTL(t *testing.T) {
	source := &fakeSource{trends: someTrends(3)}
	store := newFakeTrendStore()

	s := NewService(source, store)
	now := time.Now()
	s.now = func() time.Time { return now }

	s.GetAllTrends(context.Background())
	store.waitForBatch(t)

	now = now.Add(cacheTTL + time.Second)
	s.GetAllTrends(context.Background())
	store.waitForBatch(t)

	assert.Equal(t, 2, source.callCount())
}

func TestGetAllTrendsClassifiesTopics(t *testing.T) {
	source := &fakeSource{trends: []model.TrendingTopic{
		{ID: "1", Name: "AI assistants", TweetCount: 10},
		{ID: "2", Name: "unclassifiable", TweetCount: 5},
	}}
	store := newFakeTrendStore()

	s := NewService(source, store)

	trends := s.GetAllTrends(context.Background())

	assert.Equal(t, "Technology", trends[0].Category)
	assert.Equal(t, "General", trends[1].Category)

	store.waitForBatch(t)
}

func TestGetAllTrendsSourceFailureYieldsEmpty(t *testing.T) {
	source := &fakeSource{err: errors.New("timeout")}

	s := NewService(source, newFakeTrendStore())

	trends := s.GetAllTrends(context.Background())

	assert.NotEqual(t, trends, nil)
	assert.Equal(t, 0, len(trends))
}

func TestGetAllTrendsServesCacheWhenSourceFails(t *testing.T) {
	source := &fakeSource{trends: someTrends(3)}
	store := newFakeTrendStore()

	s := NewService(source, store)

	first := s.GetAllTrends(context.Background())
	store.waitForBatch(t)

	source.mu.Lock()
	source.err = errors.New("timeout")
	source.mu.Unlock()

	second := s.GetAllTrends(context.Background())

	assert.Equal(t, len(first), len(second))
	assert.Equal(t, 1, source.callCount())
}

func TestPersistFailureDoesNotAffectResult(t *testing.T) {
	source := &fakeSource{trends: someTrends(2)}
	store := newFakeTrendStore()
	store.err = errors.New("db down")

	s := NewService(source, store)

	trends := s.GetAllTrends(context.Background())

	assert.Equal(t, 2, len(trends))
	store.waitForBatch(t)
}

package trending

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/TommTerc/news-matrix-2.0/internal/model"
)

const (
	cacheTTL  = 5 * time.Minute
	maxTrends = 10
)

type Source interface {
	FetchTrends(ctx context.Context) ([]model.TrendingTopic, error)
}

type TrendStore interface {
	SaveBatch(trends []model.TrendingTopic) error
}

// Service serves classified trending topics from a single-entry TTL cache,
// refreshing from the external source on expiry. Every fresh batch is also
// written to the durable store; that write never blocks or fails a read.
type Service struct {
	source Source
	store  TrendStore

	mu        sync.Mutex
	cached    []model.TrendingTopic
	fetchedAt time.Time
	now       func() time.Time
}

func NewService(source Source, store TrendStore) *Service {
	return &Service{
		source: source,
		store:  store,
		now:    time.Now,
	}
}

// GetAllTrends returns the top trends by tweet count, at most maxTrends.
// A source failure on an expired cache yields an empty slice, never an
// error.
func (s *Service) GetAllTrends(ctx context.Context) []model.TrendingTopic {
	trends := s.twitterTrends(ctx)

	sorted := make([]model.TrendingTopic, len(trends))
	copy(sorted, trends)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].TweetCount > sorted[b].TweetCount
	})

	if len(sorted) > maxTrends {
		sorted = sorted[:maxTrends]
	}
	return sorted
}

func (s *Service) twitterTrends(ctx context.Context) []model.TrendingTopic {
	s.mu.Lock()
	if s.cached != nil && s.now().Sub(s.fetchedAt) < cacheTTL {
		cached := s.cached
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	trends, err := s.source.FetchTrends(ctx)
	if err != nil {
		slog.Error("error fetching twitter trends", "error", err)
		return []model.TrendingTopic{}
	}

	for i := range trends {
		trends[i].Category = Categorize(trends[i].Name)
	}

	s.mu.Lock()
	s.cached = trends
	s.fetchedAt = s.now()
	s.mu.Unlock()

	s.persist(trends)
	return trends
}

// persist writes the batch in a detached goroutine. Failures are logged
// and never reach the caller.
func (s *Service) persist(trends []model.TrendingTopic) {
	if s.store == nil || len(trends) == 0 {
		return
	}
	go func() {
		if err := s.store.SaveBatch(trends); err != nil {
			slog.Error("error saving trends to database", "error", err, "count", len(trends))
		}
	}()
}

package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/tripdex/internal/domain"
	logpkg "github.com/kailas-cloud/tripdex/internal/logger"
	"github.com/kailas-cloud/tripdex/internal/metrics"
)

// Tracker records completed searches: Prometheus metrics, the per-request
// usage collector and the daily searches counter.
type Tracker struct {
	counter DailyCounter
	now     func() time.Time
}

// NewTracker creates a search tracker. counter can be nil.
func NewTracker(counter DailyCounter) *Tracker {
	return &Tracker{counter: counter, now: time.Now}
}

// SearchCompleted implements the search services' Recorder.
func (t *Tracker) SearchCompleted(ctx context.Context, entity, mode string, results int) {
	metrics.SearchRequestsTotal.WithLabelValues(entity, mode).Inc()
	metrics.SearchResults.WithLabelValues(entity).Observe(float64(results))
	domain.SearchUsageFromContext(ctx).Record(entity, mode, results)

	if t.counter == nil {
		return
	}
	if err := t.counter.Incr(ctx, SearchesCounter, t.now(), 1); err != nil {
		logpkg.FromContext(ctx).Warn("Searches counter increment failed",
			zap.String("entity", entity),
			zap.Error(err),
		)
	}
}

package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"

	logpkg "github.com/kailas-cloud/tripdex/internal/logger"
)

// Fixed marketing figures shown on the dashboard.
const (
	TotalPackages    = 5
	EstimatedSavings = 2500
)

// SearchesCounter names the daily counter every search increments.
const SearchesCounter = "searches"

// Stats is the dashboard summary.
type Stats struct {
	TotalFlights     int   `json:"totalFlights"`
	TotalHotels      int   `json:"totalHotels"`
	TotalPackages    int   `json:"totalPackages"`
	EstimatedSavings int   `json:"estimatedSavings"`
	SearchesToday    int64 `json:"searchesToday"`
}

// Service builds dashboard statistics.
type Service struct {
	catalog CatalogCounter
	counter DailyCounter
	now     func() time.Time
}

// New creates a dashboard service. counter can be nil.
func New(catalog CatalogCounter, counter DailyCounter) *Service {
	return &Service{catalog: catalog, counter: counter, now: time.Now}
}

// Stats returns catalog totals and today's search count. A failing counter
// reads as zero searches.
func (s *Service) Stats(ctx context.Context) Stats {
	st := Stats{
		TotalFlights:     s.catalog.FlightCount(),
		TotalHotels:      s.catalog.HotelCount(),
		TotalPackages:    TotalPackages,
		EstimatedSavings: EstimatedSavings,
	}
	if s.counter == nil {
		return st
	}
	n, err := s.counter.Get(ctx, SearchesCounter, s.now())
	if err != nil {
		logpkg.FromContext(ctx).Warn("Searches counter unavailable", zap.Error(err))
		return st
	}
	st.SearchesToday = n
	return st
}

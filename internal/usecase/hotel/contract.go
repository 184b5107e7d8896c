package hotel

import (
	"context"

	domhotel "github.com/kailas-cloud/tripdex/internal/domain/hotel"
)

// Catalog provides the hotels public search runs over.
type Catalog interface {
	Hotels() []domhotel.Hotel
}

// Recorder observes completed searches (metrics, daily counters).
type Recorder interface {
	SearchCompleted(ctx context.Context, entity, mode string, results int)
}

// ReviewSource supplies the review count attached to each shaped hotel.
type ReviewSource interface {
	Reviews() int
}

package flight

import (
	"context"

	domflight "github.com/kailas-cloud/tripdex/internal/domain/flight"
)

// Catalog provides the flights public search runs over.
type Catalog interface {
	Flights() []domflight.Flight
}

// Recorder observes completed searches (metrics, daily counters).
type Recorder interface {
	SearchCompleted(ctx context.Context, entity, mode string, results int)
}

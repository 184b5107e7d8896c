package dashboard

import (
	"context"
	"time"
)

// CatalogCounter reports how many records each catalog holds.
type CatalogCounter interface {
	FlightCount() int
	HotelCount() int
}

// DailyCounter persists per-day event counts.
type DailyCounter interface {
	Incr(ctx context.Context, name string, at time.Time, val int64) error
	Get(ctx context.Context, name string, at time.Time) (int64, error)
}

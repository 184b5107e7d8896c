package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogCounter reports how many records each catalog holds.
type CatalogCounter interface {
	FlightCount() int
	HotelCount() int
}

package admin

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/tripdex/internal/domain/flight"
	"github.com/kailas-cloud/tripdex/internal/domain/hotel"
)

// Counts splits a record total by status. Anything not active is inactive.
type Counts struct {
	Total    int
	Active   int
	Inactive int
}

func (c *Counts) add(active bool) {
	c.Total++
	if active {
		c.Active++
	} else {
		c.Inactive++
	}
}

// Stats is the admin inventory summary. Flights and hotels cover the
// catalog plus the overlay.
type Stats struct {
	Flights  Counts
	Hotels   Counts
	Bookings int
}

// Stats counts catalog and overlay records by status, plus stored bookings.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	overlayFlights, err := s.repo.ListFlights(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list flights: %w", err)
	}
	overlayHotels, err := s.repo.ListHotels(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("list hotels: %w", err)
	}
	bookings, err := s.bookings.Count(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("count bookings: %w", err)
	}

	st := Stats{Bookings: bookings}
	for _, f := range s.catalog.Flights() {
		st.Flights.add(f.Status == flight.StatusActive)
	}
	for i := range overlayFlights {
		st.Flights.add(overlayFlights[i].Flight.Status == flight.StatusActive)
	}
	for _, h := range s.catalog.Hotels() {
		st.Hotels.add(h.Status == hotel.StatusActive)
	}
	for i := range overlayHotels {
		st.Hotels.add(overlayHotels[i].Hotel.Status == hotel.StatusActive)
	}
	return st, nil
}

package tripdex

import (
	"context"
	"net/url"
	"time"

	"github.com/kailas-cloud/tripdex/internal/domain/search/params"
)

// FlightService searches the flight catalog.
type FlightService struct {
	svc flightUseCase
	obs *observer
}

// All returns every flight ordered by price.
func (s *FlightService) All(ctx context.Context) []Flight {
	defer s.obs.observe("flights.all", time.Now(), nil)
	return s.svc.All(ctx)
}

// Search runs a body-style search: from, to, passengers, priceRange, sortBy
// and a nested filters object (airlines, stops, departureTime). No limit is
// applied. A nil body matches everything.
func (s *FlightService) Search(ctx context.Context, body map[string]any) []Flight {
	defer s.obs.observe("flights.search", time.Now(), nil)
	return s.svc.Search(ctx, params.Bag(body))
}

// Filter runs a query-style search: from, to, minPrice, maxPrice, airline,
// departureTime, stops, sortBy and limit. Lists may be comma separated.
func (s *FlightService) Filter(ctx context.Context, query url.Values) []Flight {
	defer s.obs.observe("flights.filter", time.Now(), nil)
	return s.svc.Filter(ctx, params.FromValues(query))
}

// Airlines returns the sorted distinct airline names.
func (s *FlightService) Airlines(ctx context.Context) []string {
	return s.svc.Airlines(ctx)
}

// Locations returns the sorted distinct origin and destination codes.
func (s *FlightService) Locations(ctx context.Context) FlightLocations {
	return s.svc.Locations(ctx)
}

// HotelService searches the hotel catalog.
type HotelService struct {
	svc hotelUseCase
	obs *observer
}

// All returns every hotel ordered by rating.
func (s *HotelService) All(ctx context.Context) []Hotel {
	defer s.obs.observe("hotels.all", time.Now(), nil)
	return s.svc.All(ctx)
}

// Search runs a body-style search: location, guests, priceRange, sortBy and a
// nested filters object (rating, amenities, stars). No limit is applied.
func (s *HotelService) Search(ctx context.Context, body map[string]any) []Hotel {
	defer s.obs.observe("hotels.search", time.Now(), nil)
	return s.svc.Search(ctx, params.Bag(body))
}

// Filter runs a query-style search: location, minPrice, maxPrice, minRating,
// amenities, starRating, sortBy and limit.
func (s *HotelService) Filter(ctx context.Context, query url.Values) []Hotel {
	defer s.obs.observe("hotels.filter", time.Now(), nil)
	return s.svc.Filter(ctx, params.FromValues(query))
}

// Locations returns the sorted distinct hotel locations.
func (s *HotelService) Locations(ctx context.Context) []string {
	return s.svc.Locations(ctx)
}

// Amenities returns the sorted distinct amenities.
func (s *HotelService) Amenities(ctx context.Context) []string {
	return s.svc.Amenities(ctx)
}

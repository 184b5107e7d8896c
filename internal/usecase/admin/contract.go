package admin

import (
	"context"

	"github.com/kailas-cloud/tripdex/internal/domain/flight"
	"github.com/kailas-cloud/tripdex/internal/domain/hotel"
	domoverlay "github.com/kailas-cloud/tripdex/internal/domain/overlay"
)

// Repository defines the storage contract for overlay records.
type Repository interface {
	CreateFlight(ctx context.Context, f *flight.Flight, createdAt int64) error
	ListFlights(ctx context.Context) ([]domoverlay.FlightRecord, error)
	CreateHotel(ctx context.Context, h *hotel.Hotel, createdAt int64) error
	ListHotels(ctx context.Context) ([]domoverlay.HotelRecord, error)
}

// Catalog exposes the read-only catalog records counted by Stats.
type Catalog interface {
	Flights() []flight.Flight
	Hotels() []hotel.Hotel
}

// BookingCounter reports the number of stored bookings.
type BookingCounter interface {
	Count(ctx context.Context) (int, error)
}

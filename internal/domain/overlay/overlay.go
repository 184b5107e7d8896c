// Package overlay models admin-managed catalog additions.
package overlay

import (
	"github.com/kailas-cloud/tripdex/internal/domain/flight"
	"github.com/kailas-cloud/tripdex/internal/domain/hotel"
)

// FlightRecord is an overlay flight with its creation time (unix millis).
type FlightRecord struct {
	Flight    flight.Flight
	CreatedAt int64
}

// HotelRecord is an overlay hotel with its creation time (unix millis).
type HotelRecord struct {
	Hotel     hotel.Hotel
	CreatedAt int64
}

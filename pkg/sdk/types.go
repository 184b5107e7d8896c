package tripdex

import (
	flightuc "github.com/kailas-cloud/tripdex/internal/usecase/flight"
	hoteluc "github.com/kailas-cloud/tripdex/internal/usecase/hotel"
)

// Flight is a shaped flight result. It carries the legacy alias fields
// (_id, departureTime, arrivalTime) next to the canonical ones.
type Flight = flightuc.View

// Hotel is a shaped hotel result with its price and rooms aliases.
type Hotel = hoteluc.View

// FlightLocations lists the airport codes in the catalog.
type FlightLocations = flightuc.Locations

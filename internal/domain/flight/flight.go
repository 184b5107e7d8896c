// Package flight holds the flight record and its search pipeline stages:
// query normalization, predicate filtering and stable sorting.
package flight

// Status is the lifecycle state of a flight.
type Status string

// Flight statuses.
const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusDelayed   Status = "delayed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCancelled, StatusDelayed:
		return true
	default:
		return false
	}
}

// Flight is a catalog-resident flight record. Depart and Return are same-day
// "HH:MM" clock times, not timestamps.
type Flight struct {
	ID             string
	Airline        string
	FlightNumber   string
	From           string
	To             string
	Depart         string
	Return         string
	Duration       string
	Price          float64
	Stops          int
	AvailableSeats int
	Aircraft       string
	Terminal       string
	Status         Status
}

package flight

import "github.com/kailas-cloud/tripdex/internal/domain/search/predicate"

type stopsMode int

const (
	stopsAny stopsMode = iota
	stopsNonstop
	stopsMax
)

// Stops is the stop-count predicate: either nonstop-only or at most N stops.
type Stops struct {
	mode stopsMode
	max  int
}

// Nonstop admits only flights with zero stops.
func Nonstop() Stops { return Stops{mode: stopsNonstop} }

// MaxStops admits flights with at most n stops.
func MaxStops(n int) Stops { return Stops{mode: stopsMax, max: n} }

// Admits reports whether a flight with n stops passes.
func (s Stops) Admits(n int) bool {
	switch s.mode {
	case stopsNonstop:
		return n == 0
	case stopsMax:
		return n <= s.max
	default:
		return true
	}
}

// IsZero reports whether the predicate is absent.
func (s Stops) IsZero() bool { return s.mode == stopsAny }

// Filter is the canonical flight filter specification. The zero value matches
// every flight.
type Filter struct {
	from      string
	to        string
	price     predicate.Bound
	seats     predicate.Bound
	airlines  []string
	stops     Stops
	departure []predicate.Bucket
}

// IsEmpty reports whether the filter has no predicates.
func (f Filter) IsEmpty() bool {
	return f.from == "" && f.to == "" && f.price.IsZero() && f.seats.IsZero() &&
		len(f.airlines) == 0 && f.stops.IsZero() && len(f.departure) == 0
}

// From returns the origin token.
func (f Filter) From() string { return f.from }

// To returns the destination token.
func (f Filter) To() string { return f.to }

// Price returns the price bound.
func (f Filter) Price() predicate.Bound { return f.price }

// Seats returns the available-seat bound.
func (f Filter) Seats() predicate.Bound { return f.seats }

// Airlines returns the accepted carriers.
func (f Filter) Airlines() []string { return f.airlines }

// Stops returns the stop-count predicate.
func (f Filter) Stops() Stops { return f.stops }

// Departure returns the accepted departure buckets.
func (f Filter) Departure() []predicate.Bucket { return f.departure }

// Match reports whether fl satisfies every predicate present in f.
func (f Filter) Match(fl *Flight) bool {
	return predicate.ContainsFold(fl.From, f.from) &&
		predicate.ContainsFold(fl.To, f.to) &&
		f.price.Admits(fl.Price) &&
		predicate.AnyEqual(f.airlines, fl.Airline) &&
		f.stops.Admits(fl.Stops) &&
		predicate.InAnyBucket(f.departure, fl.Depart) &&
		f.seats.Admits(float64(fl.AvailableSeats))
}

// Apply returns the flights matching f, in input order. The input is not modified.
func (f Filter) Apply(flights []Flight) []Flight {
	out := make([]Flight, 0, len(flights))
	for i := range flights {
		if f.Match(&flights[i]) {
			out = append(out, flights[i])
		}
	}
	return out
}

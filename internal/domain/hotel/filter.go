package hotel

import (
	"strconv"

	"github.com/kailas-cloud/tripdex/internal/domain/search/predicate"
)

// Filter is the canonical hotel filter specification. The zero value matches
// every hotel.
type Filter struct {
	location  string
	price     predicate.Bound
	rating    predicate.Bound
	rooms     predicate.Bound
	amenities []string
	stars     []string
}

// IsEmpty reports whether the filter has no predicates.
func (f Filter) IsEmpty() bool {
	return f.location == "" && f.price.IsZero() && f.rating.IsZero() &&
		f.rooms.IsZero() && len(f.amenities) == 0 && len(f.stars) == 0
}

// Location returns the location-or-name token.
func (f Filter) Location() string { return f.location }

// Price returns the nightly price bound.
func (f Filter) Price() predicate.Bound { return f.price }

// Rating returns the guest rating bound.
func (f Filter) Rating() predicate.Bound { return f.rating }

// Rooms returns the available-room bound.
func (f Filter) Rooms() predicate.Bound { return f.rooms }

// Amenities returns the requested amenities. Any one of them is enough.
func (f Filter) Amenities() []string { return f.amenities }

// Stars returns the accepted star classifications.
func (f Filter) Stars() []string { return f.stars }

// Match reports whether h satisfies every predicate present in f.
func (f Filter) Match(h *Hotel) bool {
	if f.location != "" &&
		!predicate.ContainsFold(h.Location, f.location) &&
		!predicate.ContainsFold(h.Name, f.location) {
		return false
	}
	return f.price.Admits(h.PricePerNight) &&
		f.rating.Admits(h.Rating) &&
		predicate.AnyContainsFold(f.amenities, h.Amenities) &&
		predicate.AnyEqual(f.stars, strconv.Itoa(h.StarRating)) &&
		f.rooms.Admits(float64(h.AvailableRooms))
}

// Apply returns the hotels matching f, in input order.
func (f Filter) Apply(hotels []Hotel) []Hotel {
	out := make([]Hotel, 0, len(hotels))
	for i := range hotels {
		if f.Match(&hotels[i]) {
			out = append(out, hotels[i])
		}
	}
	return out
}

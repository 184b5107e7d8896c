package hotel

import (
	"math"

	"github.com/kailas-cloud/tripdex/internal/domain/search/params"
	"github.com/kailas-cloud/tripdex/internal/domain/search/predicate"
)

// guestsPerRoom is the occupancy assumed when deriving rooms from guests.
const guestsPerRoom = 2

// Query is a normalized hotel search. A zero Limit means no explicit limit
// was requested.
type Query struct {
	Filter Filter
	Sort   SortKey
	Limit  int
}

// NormalizeBody builds a Query from a decoded POST search body:
//
//	{location, guests:{adults,children,rooms}, priceRange:{min,max},
//	 sortBy, filters:{rating:{min}, amenities[], stars[]}}
//
// It never fails. Malformed fields are dropped.
func NormalizeBody(b params.Bag) Query {
	var f Filter
	f.location = params.LocationToken(b.String("location"))
	f.price = priceBound(b.Sub("priceRange"), "min", "max")
	f.rooms = requiredRooms(b.Sub("guests"))

	filters := b.Sub("filters")
	if v, ok := filters.Sub("rating").Positive("min"); ok {
		f.rating = predicate.AtLeast(v)
	}
	f.amenities = filters.List("amenities")
	f.stars = filters.List("stars")

	return Query{Filter: f, Sort: ParseSortKey(b.String("sortBy"))}
}

// NormalizeQuery builds a Query from GET-style parameters
// (location, minPrice, maxPrice, minRating, amenities, starRating, sortBy, limit).
func NormalizeQuery(b params.Bag) Query {
	var f Filter
	f.location = params.LocationToken(b.String("location"))
	f.price = priceBound(b, "minPrice", "maxPrice")
	if v, ok := b.Positive("minRating"); ok {
		f.rating = predicate.AtLeast(v)
	}
	f.amenities = b.List("amenities")
	f.stars = b.List("starRating")

	q := Query{Filter: f, Sort: ParseSortKey(b.String("sortBy"))}
	if n, ok := b.Int("limit"); ok && n > 0 {
		q.Limit = n
	}
	return q
}

// requiredRooms derives the minimum free rooms from the guest block: the
// explicit room count, raised to fit adults and children two to a room.
func requiredRooms(g params.Bag) predicate.Bound {
	rooms, _ := g.Int("rooms")
	adults, hasAdults := g.Int("adults")
	children, hasChildren := g.Int("children")

	need := float64(max(rooms, 0))
	if (hasAdults && adults > 0) || (hasChildren && children > 0) {
		guests := float64(max(adults, 0)) + float64(max(children, 0))
		need = max(math.Ceil(guests/guestsPerRoom), float64(max(rooms, 1)))
	}
	if need <= 0 {
		return predicate.Bound{}
	}
	return predicate.AtLeast(need)
}

func priceBound(b params.Bag, minKey, maxKey string) predicate.Bound {
	var bound predicate.Bound
	if v, ok := b.Positive(minKey); ok {
		bound = bound.WithMin(v)
	}
	if v, ok := b.Positive(maxKey); ok {
		bound = bound.WithMax(v)
	}
	return bound
}

package flight

import (
	"strconv"
	"strings"

	"github.com/kailas-cloud/tripdex/internal/domain/search/params"
	"github.com/kailas-cloud/tripdex/internal/domain/search/predicate"
)

// Query is a normalized flight search: what to keep, how to order it and
// how many to return. A zero Limit means no explicit limit was requested.
type Query struct {
	Filter Filter
	Sort   SortKey
	Limit  int
}

// NormalizeBody builds a Query from a decoded POST search body:
//
//	{from, to, passengers:{adults,children,infants}, priceRange:{min,max},
//	 sortBy, filters:{airlines[], stops, departureTime[]}}
//
// It never fails. Malformed fields are dropped.
func NormalizeBody(b params.Bag) Query {
	var f Filter
	f.from = params.LocationToken(b.String("from"))
	f.to = params.LocationToken(b.String("to"))
	f.price = priceBound(b.Sub("priceRange"), "min", "max")

	if b.Has("passengers") {
		pax := b.Sub("passengers")
		adults, ok := pax.Int("adults")
		if !ok || adults <= 0 {
			adults = 1
		}
		children, _ := pax.Int("children")
		infants, _ := pax.Int("infants")
		seats := float64(adults) + float64(max(children, 0)) + float64(max(infants, 0))
		f.seats = predicate.AtLeast(seats)
	}

	filters := b.Sub("filters")
	f.airlines = filters.List("airlines")
	switch strings.ToLower(filters.String("stops")) {
	case "nonstop":
		f.stops = Nonstop()
	case "1stop":
		f.stops = MaxStops(1)
	}
	f.departure = buckets(filters.List("departureTime"))

	return Query{Filter: f, Sort: ParseSortKey(b.String("sortBy"))}
}

// NormalizeQuery builds a Query from GET-style parameters
// (from, to, minPrice, maxPrice, airline, departureTime, stops, sortBy, limit).
// Lists are comma separated.
func NormalizeQuery(b params.Bag) Query {
	var f Filter
	f.from = params.LocationToken(b.String("from"))
	f.to = params.LocationToken(b.String("to"))
	f.price = priceBound(b, "minPrice", "maxPrice")
	f.airlines = b.List("airline")
	f.departure = buckets(b.List("departureTime"))
	f.stops = parseStops(b.String("stops"))

	q := Query{Filter: f, Sort: ParseSortKey(b.String("sortBy"))}
	if n, ok := b.Int("limit"); ok && n > 0 {
		q.Limit = n
	}
	return q
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

func parseStops(s string) Stops {
	switch s = strings.ToLower(s); s {
	case "":
		return Stops{}
	case "0", "nonstop":
		return Nonstop()
	case "1stop":
		return MaxStops(1)
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return MaxStops(n)
	}
	return Stops{}
}

func buckets(names []string) []predicate.Bucket {
	var out []predicate.Bucket
	for _, n := range names {
		if b, ok := predicate.ParseBucket(n); ok {
			out = append(out, b)
		}
	}
	return out
}

package flight

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/kailas-cloud/tripdex/internal/domain/search/predicate"
)

// SortKey names a flight ordering.
type SortKey string

// Supported sort keys. SortDefault orders by price.
const (
	SortDefault   SortKey = ""
	SortPrice     SortKey = "price"
	SortDuration  SortKey = "duration"
	SortDeparture SortKey = "departure"
	SortArrival   SortKey = "arrival"
	SortAirline   SortKey = "airline"
)

// ParseSortKey maps a caller token to a SortKey; unknown tokens yield SortDefault.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortPrice, SortDuration, SortDeparture, SortArrival, SortAirline:
		return k
	default:
		return SortDefault
	}
}

// Sort returns a stably sorted copy of flights.
func Sort(flights []Flight, key SortKey) []Flight {
	out := make([]Flight, len(flights))
	copy(out, flights)

	var less func(a, b *Flight) bool
	switch key {
	case SortDuration:
		less = func(a, b *Flight) bool { return DurationMinutes(a.Duration) < DurationMinutes(b.Duration) }
	case SortDeparture:
		// Zero-padded HH:MM compares chronologically as a string.
		less = func(a, b *Flight) bool { return a.Depart < b.Depart }
	case SortArrival:
		less = func(a, b *Flight) bool { return a.Return < b.Return }
	case SortAirline:
		less = func(a, b *Flight) bool { return predicate.CompareLocale(a.Airline, b.Airline) < 0 }
	default:
		less = func(a, b *Flight) bool { return a.Price < b.Price }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	return out
}

var (
	hoursRe   = regexp.MustCompile(`(\d+)\s*h`)
	minutesRe = regexp.MustCompile(`(\d+)\s*m`)
)

// DurationMinutes converts a free-text "Xh Ym" duration into minutes.
// Missing components count as zero.
func DurationMinutes(d string) int {
	d = strings.ToLower(d)
	total := 0
	if m := hoursRe.FindStringSubmatch(d); m != nil {
		h, _ := strconv.Atoi(m[1])
		total += h * 60
	}
	if m := minutesRe.FindStringSubmatch(d); m != nil {
		mins, _ := strconv.Atoi(m[1])
		total += mins
	}
	return total
}

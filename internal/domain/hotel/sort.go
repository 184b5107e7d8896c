package hotel

import (
	"sort"
	"strings"

	"github.com/kailas-cloud/tripdex/internal/domain/search/predicate"
)

// SortKey names a hotel ordering.
type SortKey string

// Supported sort keys. SortDefault orders by rating descending, then by
// nightly price ascending.
const (
	SortDefault  SortKey = ""
	SortPrice    SortKey = "price"
	SortRating   SortKey = "rating"
	SortName     SortKey = "name"
	SortLocation SortKey = "location"
)

// ParseSortKey maps a caller token to a SortKey; unknown tokens yield SortDefault.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortPrice, SortRating, SortName, SortLocation:
		return k
	default:
		return SortDefault
	}
}

// Sort returns a stably sorted copy of hotels.
func Sort(hotels []Hotel, key SortKey) []Hotel {
	out := make([]Hotel, len(hotels))
	copy(out, hotels)

	var less func(a, b *Hotel) bool
	switch key {
	case SortPrice:
		less = func(a, b *Hotel) bool { return a.PricePerNight < b.PricePerNight }
	case SortRating:
		less = func(a, b *Hotel) bool { return a.Rating > b.Rating }
	case SortName:
		less = func(a, b *Hotel) bool { return predicate.CompareLocale(a.Name, b.Name) < 0 }
	case SortLocation:
		less = func(a, b *Hotel) bool { return predicate.CompareLocale(a.Location, b.Location) < 0 }
	default:
		less = func(a, b *Hotel) bool {
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
			return a.PricePerNight < b.PricePerNight
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	return out
}

package predicate

import "strings"

// Bucket is a named part of the day used for departure-time filtering.
type Bucket string

// Supported buckets.
const (
	Morning   Bucket = "morning"   // [06:00, 12:00)
	Afternoon Bucket = "afternoon" // [12:00, 18:00)
	Evening   Bucket = "evening"   // [18:00, 24:00) and [00:00, 06:00)
)

// ParseBucket maps a caller token to a Bucket. Matching is case-insensitive.
func ParseBucket(s string) (Bucket, bool) {
	switch b := Bucket(strings.ToLower(strings.TrimSpace(s))); b {
	case Morning, Afternoon, Evening:
		return b, true
	default:
		return "", false
	}
}

// ContainsHour reports whether hour h falls inside the bucket.
// Evening wraps past midnight.
func (b Bucket) ContainsHour(h int) bool {
	switch b {
	case Morning:
		return h >= 6 && h < 12
	case Afternoon:
		return h >= 12 && h < 18
	case Evening:
		return h >= 18 || h < 6
	default:
		return false
	}
}

// InAnyBucket reports whether the clock time falls into at least one bucket.
// An empty bucket list matches everything; an unparseable clock matches none.
func InAnyBucket(buckets []Bucket, clock string) bool {
	if len(buckets) == 0 {
		return true
	}
	h, ok := ParseHour(clock)
	if !ok {
		return false
	}
	for _, b := range buckets {
		if b.ContainsHour(h) {
			return true
		}
	}
	return false
}

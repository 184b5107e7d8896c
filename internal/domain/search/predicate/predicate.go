// Package predicate holds the building blocks shared by the flight and hotel
// filter specifications: substring tokens, numeric bounds, set membership and
// departure-time buckets.
package predicate

import (
	"strconv"
	"strings"
)

// ContainsFold reports whether token occurs in s, ignoring case.
// An empty token matches everything.
func ContainsFold(s, token string) bool {
	if token == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(token))
}

// Bound is an inclusive numeric range. A nil side is unbounded.
type Bound struct {
	min *float64
	max *float64
}

// NewBound creates a Bound from optional lower and upper limits.
func NewBound(minVal, maxVal *float64) Bound {
	return Bound{min: minVal, max: maxVal}
}

// AtLeast returns a Bound with only a lower limit.
func AtLeast(v float64) Bound { return Bound{min: &v} }

// AtMost returns a Bound with only an upper limit.
func AtMost(v float64) Bound { return Bound{max: &v} }

// WithMin returns a copy of b with the lower limit replaced.
func (b Bound) WithMin(v float64) Bound {
	b.min = &v
	return b
}

// WithMax returns a copy of b with the upper limit replaced.
func (b Bound) WithMax(v float64) Bound {
	b.max = &v
	return b
}

// Min returns the lower limit, if any.
func (b Bound) Min() (float64, bool) {
	if b.min == nil {
		return 0, false
	}
	return *b.min, true
}

// Max returns the upper limit, if any.
func (b Bound) Max() (float64, bool) {
	if b.max == nil {
		return 0, false
	}
	return *b.max, true
}

// IsZero reports whether the bound imposes no constraint.
func (b Bound) IsZero() bool { return b.min == nil && b.max == nil }

// Admits reports whether v lies within the bound.
func (b Bound) Admits(v float64) bool {
	if b.min != nil && v < *b.min {
		return false
	}
	if b.max != nil && v > *b.max {
		return false
	}
	return true
}

// AnyEqual reports whether v equals at least one element of set.
// An empty set matches everything.
func AnyEqual(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// AnyContainsFold reports whether at least one wanted token is a
// case-insensitive substring of at least one of the values in have.
// An empty wanted set matches everything.
func AnyContainsFold(wanted, have []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		lw := strings.ToLower(w)
		for _, h := range have {
			if strings.Contains(strings.ToLower(h), lw) {
				return true
			}
		}
	}
	return false
}

// ParseHour extracts the hour component of an "HH:MM" clock string.
func ParseHour(clock string) (int, bool) {
	head, _, _ := strings.Cut(strings.TrimSpace(clock), ":")
	h, err := strconv.Atoi(head)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}

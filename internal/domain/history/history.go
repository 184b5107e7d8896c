// Package history models saved search requests.
package history

import (
	"fmt"
	"strings"
)

// Kind is the searched entity.
type Kind string

// Search kinds.
const (
	KindFlight Kind = "flight"
	KindHotel  Kind = "hotel"
)

// ParseKind maps a caller token to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindFlight, KindHotel:
		return k, nil
	default:
		return "", fmt.Errorf("unknown search type %q", s)
	}
}

// Entry is one saved search.
type Entry struct {
	ID           string
	UserID       string
	Kind         Kind
	Params       map[string]any
	ResultsCount int
	Timestamp    int64 // unix millis
}

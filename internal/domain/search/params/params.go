// Package params reads loosely-typed caller input (decoded JSON bodies or
// query strings) without ever failing: a value of the wrong shape reads as absent.
package params

import (
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// locationSeparator splits display strings such as "NYC - New York".
const locationSeparator = " - "

// Bag is a loosely-typed parameter mapping.
type Bag map[string]any

// FromValues converts a query string into a Bag, keeping the first value of
// each key.
func FromValues(v url.Values) Bag {
	b := make(Bag, len(v))
	for k, vals := range v {
		if len(vals) > 0 {
			b[k] = vals[0]
		}
	}
	return b
}

// Has reports whether key is present with a non-nil value.
func (b Bag) Has(key string) bool {
	v, ok := b[key]
	return ok && v != nil
}

// Sub returns the nested object stored at key, or an empty Bag.
func (b Bag) Sub(key string) Bag {
	switch v := b[key].(type) {
	case map[string]any:
		return Bag(v)
	case Bag:
		return v
	default:
		return Bag{}
	}
}

// String returns the scalar at key as a trimmed string. Numbers and booleans
// are formatted; anything else reads as "".
func (b Bag) String(key string) string {
	return strings.TrimSpace(scalarString(b[key]))
}

// Number parses the value at key as a float. Non-numeric values read as absent.
func (b Bag) Number(key string) (float64, bool) {
	return toNumber(b[key])
}

// Int parses the value at key as an integer, truncating fractions. Values
// outside the int32 range saturate at its bounds.
func (b Bag) Int(key string) (int, bool) {
	f, ok := b.Number(key)
	if !ok {
		return 0, false
	}
	switch {
	case f >= math.MaxInt32:
		return math.MaxInt32, true
	case f <= math.MinInt32:
		return math.MinInt32, true
	}
	return int(f), true
}

// Positive returns the number at key when it is strictly positive.
func (b Bag) Positive(key string) (float64, bool) {
	f, ok := b.Number(key)
	if !ok || f <= 0 {
		return 0, false
	}
	return f, true
}

// List reads a multi-valued field. A scalar becomes a one-element list,
// comma-separated strings are split, items are trimmed and blanks dropped.
func (b Bag) List(key string) []string {
	var raw []string
	switch v := b[key].(type) {
	case nil:
		return nil
	case []any:
		for _, item := range v {
			raw = append(raw, scalarString(item))
		}
	case []string:
		raw = v
	default:
		raw = strings.Split(scalarString(v), ",")
	}

	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// LocationToken normalizes a location-like input into a lower-case match token.
// Only the part before " - " is kept so that "NYC - New York" matches "NYC".
func LocationToken(raw string) string {
	head, _, _ := strings.Cut(raw, locationSeparator)
	return strings.ToLower(strings.TrimSpace(head))
}

func scalarString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// toNumber coerces a scalar to float64. Booleans and nil read as absent
// even though cast would turn them into 0 or 1.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		v = strings.TrimSpace(n)
	case json.Number:
		v = n.String()
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

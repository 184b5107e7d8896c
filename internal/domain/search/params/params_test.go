package params

import (
	"encoding/json"
	"math"
	"net/url"
	"testing"
)

func TestFromValues(t *testing.T) {
	v := url.Values{"from": {"NYC", "SFO"}, "limit": {"5"}}
	b := FromValues(v)
	if b.String("from") != "NYC" {
		t.Errorf("from = %q", b.String("from"))
	}
	if n, ok := b.Int("limit"); !ok || n != 5 {
		t.Errorf("limit = %d, %v", n, ok)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want float64
		ok   bool
	}{
		{"float", 12.5, 12.5, true},
		{"int", 3, 3, true},
		{"json number", json.Number("42"), 42, true},
		{"numeric string", " 300 ", 300, true},
		{"word", "cheap", 0, false},
		{"nan", "NaN", 0, false},
		{"bool", true, 0, false},
		{"missing", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Bag{"k": tt.v}.Number("k")
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Number = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestInt_Saturates(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want int
	}{
		{"fraction", 2.9, 2},
		{"huge", 1e19, math.MaxInt32},
		{"huge string", "1e300", math.MaxInt32},
		{"negative huge", -1e19, math.MinInt32},
		{"at bound", float64(math.MaxInt32), math.MaxInt32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Bag{"k": tt.v}.Int("k")
			if !ok || got != tt.want {
				t.Errorf("Int = %d, %v; want %d", got, ok, tt.want)
			}
		})
	}
}

func TestPositive(t *testing.T) {
	b := Bag{"zero": 0.0, "neg": "-5", "pos": "7"}
	if _, ok := b.Positive("zero"); ok {
		t.Error("zero should be absent")
	}
	if _, ok := b.Positive("neg"); ok {
		t.Error("negative should be absent")
	}
	if v, ok := b.Positive("pos"); !ok || v != 7 {
		t.Errorf("pos = %v, %v", v, ok)
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want []string
	}{
		{"scalar", "Delta", []string{"Delta"}},
		{"comma separated", "Delta, United ,,", []string{"Delta", "United"}},
		{"list", []any{"spa", " gym ", ""}, []string{"spa", "gym"}},
		{"string slice", []string{"a"}, []string{"a"}},
		{"numbers stringified", []any{4.0, 5.0}, []string{"4", "5"}},
		{"blank", "  ", nil},
		{"missing", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bag{"k": tt.v}.List("k")
			if len(got) != len(tt.want) {
				t.Fatalf("List = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("List = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSub(t *testing.T) {
	b := Bag{"passengers": map[string]any{"adults": 2.0}, "flat": "x"}
	if n, ok := b.Sub("passengers").Int("adults"); !ok || n != 2 {
		t.Errorf("adults = %d, %v", n, ok)
	}
	if len(b.Sub("flat")) != 0 || len(b.Sub("missing")) != 0 {
		t.Error("non-object should read as empty bag")
	}
}

func TestLocationToken(t *testing.T) {
	tests := map[string]string{
		"NYC - New York": "nyc",
		"  LAX ":         "lax",
		"New York, NY":   "new york, ny",
		"":               "",
	}
	for in, want := range tests {
		if got := LocationToken(in); got != want {
			t.Errorf("LocationToken(%q) = %q, want %q", in, got, want)
		}
	}
}

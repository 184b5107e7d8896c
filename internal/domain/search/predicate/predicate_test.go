package predicate

import "testing"

func TestContainsFold(t *testing.T) {
	tests := []struct {
		s, token string
		want     bool
	}{
		{"NYC", "nyc", true},
		{"New York, NY", "york", true},
		{"LAX", "", true},
		{"LAX", "sfo", false},
	}
	for _, tt := range tests {
		if got := ContainsFold(tt.s, tt.token); got != tt.want {
			t.Errorf("ContainsFold(%q, %q) = %v, want %v", tt.s, tt.token, got, tt.want)
		}
	}
}

func TestBound(t *testing.T) {
	var zero Bound
	if !zero.IsZero() || !zero.Admits(-1e9) {
		t.Fatal("zero bound must admit everything")
	}

	b := AtLeast(10).WithMax(20)
	for v, want := range map[float64]bool{9.99: false, 10: true, 15: true, 20: true, 20.01: false} {
		if got := b.Admits(v); got != want {
			t.Errorf("Admits(%v) = %v, want %v", v, got, want)
		}
	}
	if m, ok := b.Min(); !ok || m != 10 {
		t.Errorf("Min() = %v, %v", m, ok)
	}
	if m, ok := AtMost(5).Max(); !ok || m != 5 {
		t.Errorf("Max() = %v, %v", m, ok)
	}
	if _, ok := AtMost(5).Min(); ok {
		t.Error("AtMost must not set a minimum")
	}
}

func TestAnyEqual(t *testing.T) {
	if !AnyEqual(nil, "Delta") {
		t.Error("empty set should match")
	}
	if !AnyEqual([]string{"United", "Delta"}, "Delta") {
		t.Error("expected member match")
	}
	if AnyEqual([]string{"delta"}, "Delta") {
		t.Error("membership is case-sensitive")
	}
}

func TestAnyContainsFold(t *testing.T) {
	have := []string{"Pool", "Spa"}
	if !AnyContainsFold([]string{"spa", "gym"}, have) {
		t.Error("expected any-of match")
	}
	if AnyContainsFold([]string{"gym"}, have) {
		t.Error("unexpected match")
	}
	if AnyContainsFold([]string{"gym"}, nil) {
		t.Error("no amenities cannot match a request")
	}
}

func TestParseHour(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"07:00", 7, true},
		{"23:20", 23, true},
		{"0:45", 0, true},
		{"24:00", 0, false},
		{"noon", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseHour(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseHour(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBuckets(t *testing.T) {
	tests := []struct {
		clock string
		want  Bucket
	}{
		{"06:00", Morning},
		{"11:59", Morning},
		{"12:00", Afternoon},
		{"17:30", Afternoon},
		{"18:00", Evening},
		{"23:20", Evening},
		{"05:00", Evening},
		{"00:10", Evening},
	}
	all := []Bucket{Morning, Afternoon, Evening}
	for _, tt := range tests {
		for _, b := range all {
			want := b == tt.want
			if got := InAnyBucket([]Bucket{b}, tt.clock); got != want {
				t.Errorf("InAnyBucket(%s, %q) = %v, want %v", b, tt.clock, got, want)
			}
		}
	}
}

func TestInAnyBucket_Edges(t *testing.T) {
	if !InAnyBucket(nil, "garbage") {
		t.Error("no buckets requested should match")
	}
	if InAnyBucket([]Bucket{Evening}, "garbage") {
		t.Error("unparseable clock should match no bucket")
	}
	if _, ok := ParseBucket("Brunch"); ok {
		t.Error("unknown bucket parsed")
	}
	if b, ok := ParseBucket(" EVENING "); !ok || b != Evening {
		t.Errorf("ParseBucket = %q, %v", b, ok)
	}
}

func TestCompareLocale(t *testing.T) {
	if CompareLocale("american", "Delta") >= 0 {
		t.Error("expected case-insensitive primary ordering")
	}
	if CompareLocale("United", "Delta") <= 0 {
		t.Error("expected United after Delta")
	}
	if CompareLocale("Delta", "Delta") != 0 {
		t.Error("expected equality")
	}
}

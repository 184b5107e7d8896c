package hotel

import (
	"context"
	"slices"
	"strings"

	domhotel "github.com/kailas-cloud/tripdex/internal/domain/hotel"
	"github.com/kailas-cloud/tripdex/internal/domain/search/params"
)

const entity = "hotel"

// Search modes reported to the Recorder.
const (
	ModeBody  = "body"
	ModeQuery = "query"
)

// Limits bounds query-style result sizes.
type Limits struct {
	Default int
	Max     int
}

func (l Limits) apply(requested int) int {
	n := requested
	if n <= 0 {
		n = l.Default
	}
	if l.Max > 0 && n > l.Max {
		n = l.Max
	}
	return n
}

// Service runs the hotel search pipeline.
type Service struct {
	catalog  Catalog
	recorder Recorder
	reviews  ReviewSource
	limits   Limits
}

// Option configures a Service.
type Option func(*Service)

// WithReviewSource replaces the random review counter.
func WithReviewSource(r ReviewSource) Option {
	return func(s *Service) { s.reviews = r }
}

// New creates a hotel search service. recorder can be nil.
func New(catalog Catalog, recorder Recorder, limits Limits, opts ...Option) *Service {
	s := &Service{
		catalog:  catalog,
		recorder: recorder,
		reviews:  RandomReviews{},
		limits:   limits,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// All returns every hotel ordered by rating, best first.
func (s *Service) All(_ context.Context) []View {
	return ShapeAll(domhotel.Sort(s.catalog.Hotels(), domhotel.SortRating), s.reviews)
}

// Search runs a body-style search. Results are not limited.
func (s *Service) Search(ctx context.Context, body params.Bag) []View {
	out := s.run(domhotel.NormalizeBody(body), 0)
	s.record(ctx, ModeBody, len(out))
	return out
}

// Filter runs a query-style search with the configured default and cap on limit.
func (s *Service) Filter(ctx context.Context, query params.Bag) []View {
	q := domhotel.NormalizeQuery(query)
	out := s.run(q, s.limits.apply(q.Limit))
	s.record(ctx, ModeQuery, len(out))
	return out
}

func (s *Service) run(q domhotel.Query, limit int) []View {
	sorted := domhotel.Sort(q.Filter.Apply(s.catalog.Hotels()), q.Sort)
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return ShapeAll(sorted, s.reviews)
}

func (s *Service) record(ctx context.Context, mode string, n int) {
	if s.recorder != nil {
		s.recorder.SearchCompleted(ctx, entity, mode, n)
	}
}

// Locations returns the distinct hotel locations, sorted.
func (s *Service) Locations(_ context.Context) []string {
	hotels := s.catalog.Hotels()
	out := make([]string, 0, len(hotels))
	for i := range hotels {
		out = append(out, hotels[i].Location)
	}
	return distinct(out)
}

// Amenities returns the distinct amenities across all hotels, sorted.
func (s *Service) Amenities(_ context.Context) []string {
	var out []string
	for _, h := range s.catalog.Hotels() {
		out = append(out, h.Amenities...)
	}
	return distinct(out)
}

// distinct returns the sorted unique non-blank values. The result is never nil.
func distinct(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

package flight

import (
	"context"
	"slices"

	domflight "github.com/kailas-cloud/tripdex/internal/domain/flight"
	"github.com/kailas-cloud/tripdex/internal/domain/search/params"
)

const entity = "flight"

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

// Locations lists the route codes present in the catalog.
type Locations struct {
	All  []string `json:"all"`
	From []string `json:"from"`
	To   []string `json:"to"`
}

// Service runs the flight search pipeline:
// normalize, filter, sort, limit, shape.
type Service struct {
	catalog  Catalog
	recorder Recorder
	limits   Limits
}

// New creates a flight search service. recorder can be nil.
func New(catalog Catalog, recorder Recorder, limits Limits) *Service {
	return &Service{catalog: catalog, recorder: recorder, limits: limits}
}

// All returns every flight ordered by price.
func (s *Service) All(_ context.Context) []View {
	return ShapeAll(domflight.Sort(s.catalog.Flights(), domflight.SortPrice))
}

// Search runs a body-style search. Results are not limited.
func (s *Service) Search(ctx context.Context, body params.Bag) []View {
	q := domflight.NormalizeBody(body)
	out := s.run(q, 0)
	s.record(ctx, ModeBody, len(out))
	return out
}

// Filter runs a query-style search with the configured default and cap on limit.
func (s *Service) Filter(ctx context.Context, query params.Bag) []View {
	q := domflight.NormalizeQuery(query)
	out := s.run(q, s.limits.apply(q.Limit))
	s.record(ctx, ModeQuery, len(out))
	return out
}

func (s *Service) run(q domflight.Query, limit int) []View {
	matched := q.Filter.Apply(s.catalog.Flights())
	sorted := domflight.Sort(matched, q.Sort)
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return ShapeAll(sorted)
}

func (s *Service) record(ctx context.Context, mode string, n int) {
	if s.recorder != nil {
		s.recorder.SearchCompleted(ctx, entity, mode, n)
	}
}

// Airlines returns the distinct carriers, sorted.
func (s *Service) Airlines(_ context.Context) []string {
	flights := s.catalog.Flights()
	names := make([]string, 0, len(flights))
	for i := range flights {
		names = append(names, flights[i].Airline)
	}
	return distinct(names)
}

// Locations returns the distinct origins, destinations and their union, each sorted.
func (s *Service) Locations(_ context.Context) Locations {
	flights := s.catalog.Flights()
	from := make([]string, 0, len(flights))
	to := make([]string, 0, len(flights))
	for i := range flights {
		from = append(from, flights[i].From)
		to = append(to, flights[i].To)
	}
	return Locations{
		All:  distinct(append(slices.Clone(from), to...)),
		From: distinct(from),
		To:   distinct(to),
	}
}

// distinct returns the sorted unique non-empty values. The result is never nil.
func distinct(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

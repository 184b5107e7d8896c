package domain

import "context"

type searchUsageKey struct{}

// SearchUsage collects what a single HTTP request searched for.
// The wide-event middleware puts a mutable pointer into the context; the
// search recorder writes to it; the middleware adds it to the request log line.
type SearchUsage struct {
	Entity  string
	Mode    string
	Results int
	Used    bool
}

// NewContextWithSearchUsage returns a context with an embedded usage collector.
func NewContextWithSearchUsage(ctx context.Context) (context.Context, *SearchUsage) {
	u := &SearchUsage{}
	return context.WithValue(ctx, searchUsageKey{}, u), u
}

// SearchUsageFromContext extracts the usage collector from context. Returns nil if not set.
func SearchUsageFromContext(ctx context.Context) *SearchUsage {
	u, _ := ctx.Value(searchUsageKey{}).(*SearchUsage)
	return u
}

// Record stores the outcome of a search. Safe on a nil receiver.
func (u *SearchUsage) Record(entity, mode string, results int) {
	if u != nil {
		u.Entity = entity
		u.Mode = mode
		u.Results = results
		u.Used = true
	}
}

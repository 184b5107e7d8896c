package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kailas-cloud/tripdex/internal/domain"
	domhist "github.com/kailas-cloud/tripdex/internal/domain/history"
)

// store is the consumer interface for search history (ISP).
type store interface {
	LPush(ctx context.Context, key string, values ...string) error
	LTrim(ctx context.Context, key string, start, stop int64) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// Repo keeps per-user, per-kind search history as capped lists, newest first.
type Repo struct {
	store  store
	prefix string
}

// New creates a search history repository. prefix namespaces every key.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

type entryRow struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	Kind         string         `json:"type"`
	Params       map[string]any `json:"searchParams"`
	ResultsCount int            `json:"resultsCount"`
	Timestamp    int64          `json:"timestamp"`
}

// Push prepends e to its list and trims the list to keep entries.
func (r *Repo) Push(ctx context.Context, e *domhist.Entry, keep int) error {
	data, err := json.Marshal(entryRow{
		ID:           e.ID,
		UserID:       e.UserID,
		Kind:         string(e.Kind),
		Params:       e.Params,
		ResultsCount: e.ResultsCount,
		Timestamp:    e.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}

	key := r.key(e.UserID, e.Kind)
	if err := r.store.LPush(ctx, key, string(data)); err != nil {
		return fmt.Errorf("lpush %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}
	if keep > 0 {
		if err := r.store.LTrim(ctx, key, 0, int64(keep-1)); err != nil {
			return fmt.Errorf("ltrim %s: %w: %w", key, domain.ErrStoreUnavailable, err)
		}
	}
	return nil
}

// Recent returns up to n entries, newest first. Unreadable entries are skipped.
func (r *Repo) Recent(ctx context.Context, userID string, kind domhist.Kind, n int) ([]domhist.Entry, error) {
	if n <= 0 {
		return []domhist.Entry{}, nil
	}
	key := r.key(userID, kind)
	raw, err := r.store.LRange(ctx, key, 0, int64(n-1))
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}

	out := make([]domhist.Entry, 0, len(raw))
	for _, s := range raw {
		var row entryRow
		if err := json.Unmarshal([]byte(s), &row); err != nil {
			continue
		}
		out = append(out, domhist.Entry{
			ID:           row.ID,
			UserID:       row.UserID,
			Kind:         domhist.Kind(row.Kind),
			Params:       row.Params,
			ResultsCount: row.ResultsCount,
			Timestamp:    row.Timestamp,
		})
	}
	return out, nil
}

func (r *Repo) key(userID string, kind domhist.Kind) string {
	return r.prefix + "history:" + string(kind) + ":" + userID
}

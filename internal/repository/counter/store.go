package counter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/kailas-cloud/tripdex/internal/db"
)

// dayLayout names daily buckets in UTC.
const dayLayout = "2006-01-02"

// store is the consumer interface for counters (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	IncrBy(ctx context.Context, key string, val int64) error
	Expire(ctx context.Context, key string, ttl time.Duration, nx bool) error
}

// Daily counts events per UTC day on top of the KV store (INCRBY + EXPIRE NX).
type Daily struct {
	store  store
	prefix string
	ttl    time.Duration
}

// NewDaily creates a daily counter. Keys look like {prefix}stats:{name}:daily:{YYYY-MM-DD}
// and expire ttl after the first increment of the day (recommended: 48h).
func NewDaily(s store, prefix string, ttl time.Duration) *Daily {
	return &Daily{store: s, prefix: prefix, ttl: ttl}
}

// Incr atomically adds val to today's bucket for name and sets its TTL.
func (d *Daily) Incr(ctx context.Context, name string, at time.Time, val int64) error {
	key := d.key(name, at)
	if err := d.store.IncrBy(ctx, key, val); err != nil {
		return fmt.Errorf("counter INCRBY %s: %w", key, err)
	}

	// Set TTL only if the key has no expiry yet (NX, not reset on repeat).
	if err := d.store.Expire(ctx, key, d.ttl, true); err != nil {
		return fmt.Errorf("counter EXPIRE %s: %w", key, err)
	}
	return nil
}

// Get returns the bucket for name on the day of at. Returns 0 if the key does not exist.
func (d *Daily) Get(ctx context.Context, name string, at time.Time) (int64, error) {
	key := d.key(name, at)
	data, err := d.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("counter GET %s: %w", key, err)
	}

	val, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("counter GET %s parse: %w", key, err)
	}
	return val, nil
}

func (d *Daily) key(name string, at time.Time) string {
	return d.prefix + "stats:" + name + ":daily:" + at.UTC().Format(dayLayout)
}

package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kailas-cloud/tripdex/internal/db"
	"github.com/kailas-cloud/tripdex/internal/domain"
	dombook "github.com/kailas-cloud/tripdex/internal/domain/booking"
)

// store is the consumer interface for bookings (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	LPush(ctx context.Context, key string, values ...string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	LLen(ctx context.Context, key string) (int64, error)
	Del(ctx context.Context, key string) error
}

// Repo stores each booking as a JSON string keyed by reference, plus a
// newest-first list of references.
type Repo struct {
	store  store
	prefix string
}

// New creates a booking repository. prefix namespaces every key.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// Create stores a new booking. Returns domain.ErrAlreadyExists if the
// reference is taken.
func (r *Repo) Create(ctx context.Context, b *dombook.Booking) error {
	data, err := json.Marshal(toRow(b))
	if err != nil {
		return fmt.Errorf("marshal booking: %w", err)
	}

	key := r.bookingKey(b.Reference)
	created, err := r.store.SetNX(ctx, key, data)
	if err != nil {
		return fmt.Errorf("set %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}
	if !created {
		return fmt.Errorf("booking %s: %w", b.Reference, domain.ErrAlreadyExists)
	}

	if err := r.store.LPush(ctx, r.indexKey(), b.Reference); err != nil {
		// Every stored booking has an index entry.
		_ = r.store.Del(ctx, key)
		return fmt.Errorf("lpush %s: %w: %w", r.indexKey(), domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Update overwrites an existing booking.
func (r *Repo) Update(ctx context.Context, b *dombook.Booking) error {
	data, err := json.Marshal(toRow(b))
	if err != nil {
		return fmt.Errorf("marshal booking: %w", err)
	}
	key := r.bookingKey(b.Reference)
	if err := r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("set %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Get returns the booking with the given reference.
func (r *Repo) Get(ctx context.Context, reference string) (dombook.Booking, error) {
	key := r.bookingKey(reference)
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return dombook.Booking{}, domain.ErrBookingNotFound
		}
		return dombook.Booking{}, fmt.Errorf("get %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}

	var row bookingRow
	if err := json.Unmarshal(data, &row); err != nil {
		return dombook.Booking{}, fmt.Errorf("unmarshal booking %s: %w", reference, err)
	}
	return row.toDomain(), nil
}

// List returns up to limit bookings, newest first. A non-positive limit
// returns every booking. References whose document is gone are skipped.
func (r *Repo) List(ctx context.Context, limit int) ([]dombook.Booking, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	out := []dombook.Booking{}
	refs, err := r.store.LRange(ctx, r.indexKey(), 0, stop)
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w: %w", r.indexKey(), domain.ErrStoreUnavailable, err)
	}

	for _, ref := range refs {
		b, err := r.Get(ctx, ref)
		if errors.Is(err, domain.ErrBookingNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// Count returns the number of listed bookings.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.LLen(ctx, r.indexKey())
	if err != nil {
		return 0, fmt.Errorf("llen %s: %w: %w", r.indexKey(), domain.ErrStoreUnavailable, err)
	}
	return int(n), nil
}

func (r *Repo) bookingKey(reference string) string {
	return r.prefix + "booking:" + reference
}

func (r *Repo) indexKey() string {
	return r.prefix + "bookings"
}

// Package overlay stores admin-managed flights and hotels. Overlay records
// live beside the catalog and are never consulted by public search.
package overlay

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/tripdex/internal/domain"
	"github.com/kailas-cloud/tripdex/internal/domain/flight"
	"github.com/kailas-cloud/tripdex/internal/domain/hotel"
	domoverlay "github.com/kailas-cloud/tripdex/internal/domain/overlay"
)

// store is the consumer interface for overlay records (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	LPush(ctx context.Context, key string, values ...string) error
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// Repo implements usecase/admin.Repository.
type Repo struct {
	store  store
	prefix string
}

// New creates an overlay repository. prefix namespaces every key.
func New(s store, prefix string) *Repo {
	return &Repo{store: s, prefix: prefix}
}

// CreateFlight stores f. Flight numbers are unique within the overlay
// (case-insensitive); a repeat yields domain.ErrAlreadyExists.
func (r *Repo) CreateFlight(ctx context.Context, f *flight.Flight, createdAt int64) error {
	claim := r.prefix + "overlay:flight_number:" + strings.ToUpper(f.FlightNumber)
	ok, err := r.store.SetNX(ctx, claim, []byte(f.ID))
	if err != nil {
		return fmt.Errorf("claim %s: %w: %w", claim, domain.ErrStoreUnavailable, err)
	}
	if !ok {
		return fmt.Errorf("flight number %s: %w", f.FlightNumber, domain.ErrAlreadyExists)
	}

	key := r.flightKey(f.ID)
	if err := r.store.HSet(ctx, key, flightToHash(f, createdAt)); err != nil {
		// Release the claim so the number can be retried.
		_ = r.store.Del(ctx, claim)
		return fmt.Errorf("hset %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}
	if err := r.store.LPush(ctx, r.flightIndex(), f.ID); err != nil {
		_ = r.store.Del(ctx, key)
		_ = r.store.Del(ctx, claim)
		return fmt.Errorf("lpush %s: %w: %w", r.flightIndex(), domain.ErrStoreUnavailable, err)
	}
	return nil
}

// ListFlights returns overlay flights, newest first.
func (r *Repo) ListFlights(ctx context.Context) ([]domoverlay.FlightRecord, error) {
	rows, err := r.load(ctx, r.flightIndex(), r.flightKey)
	if err != nil {
		return nil, err
	}
	out := make([]domoverlay.FlightRecord, 0, len(rows))
	for _, m := range rows {
		f, err := flightFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("decode flight %s: %w", m["id"], err)
		}
		out = append(out, domoverlay.FlightRecord{Flight: f, CreatedAt: createdAt(m)})
	}
	return out, nil
}

// CreateHotel stores h.
func (r *Repo) CreateHotel(ctx context.Context, h *hotel.Hotel, createdAt int64) error {
	fields, err := hotelToHash(h, createdAt)
	if err != nil {
		return err
	}
	key := r.hotelKey(h.ID)
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("hset %s: %w: %w", key, domain.ErrStoreUnavailable, err)
	}
	if err := r.store.LPush(ctx, r.hotelIndex(), h.ID); err != nil {
		_ = r.store.Del(ctx, key)
		return fmt.Errorf("lpush %s: %w: %w", r.hotelIndex(), domain.ErrStoreUnavailable, err)
	}
	return nil
}

// ListHotels returns overlay hotels, newest first.
func (r *Repo) ListHotels(ctx context.Context) ([]domoverlay.HotelRecord, error) {
	rows, err := r.load(ctx, r.hotelIndex(), r.hotelKey)
	if err != nil {
		return nil, err
	}
	out := make([]domoverlay.HotelRecord, 0, len(rows))
	for _, m := range rows {
		h, err := hotelFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("decode hotel %s: %w", m["id"], err)
		}
		out = append(out, domoverlay.HotelRecord{Hotel: h, CreatedAt: createdAt(m)})
	}
	return out, nil
}

// load resolves an id index into hashes, dropping ids whose hash is gone.
func (r *Repo) load(ctx context.Context, index string, keyOf func(string) string) ([]map[string]string, error) {
	ids, err := r.store.LRange(ctx, index, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("lrange %s: %w: %w", index, domain.ErrStoreUnavailable, err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = keyOf(id)
	}
	hashes, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w: %w", index, domain.ErrStoreUnavailable, err)
	}

	out := make([]map[string]string, 0, len(hashes))
	for _, m := range hashes {
		if len(m) > 0 {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *Repo) flightKey(id string) string { return r.prefix + "overlay:flight:" + id }
func (r *Repo) hotelKey(id string) string  { return r.prefix + "overlay:hotel:" + id }
func (r *Repo) flightIndex() string        { return r.prefix + "overlay:flights" }
func (r *Repo) hotelIndex() string         { return r.prefix + "overlay:hotels" }

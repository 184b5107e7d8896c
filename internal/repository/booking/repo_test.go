package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/tripdex/internal/db/memory"
	"github.com/kailas-cloud/tripdex/internal/domain"
	dombook "github.com/kailas-cloud/tripdex/internal/domain/booking"
)

// indexFailStore wraps the memory store and fails LPUSH on demand.
type indexFailStore struct {
	*memory.Store
	lpushErr error
}

func (s *indexFailStore) LPush(ctx context.Context, key string, values ...string) error {
	if s.lpushErr != nil {
		return s.lpushErr
	}
	return s.Store.LPush(ctx, key, values...)
}

func flightBooking(ref string) *dombook.Booking {
	return &dombook.Booking{
		ID:            "id-" + ref,
		Reference:     ref,
		UserID:        "u1",
		Kind:          dombook.KindFlight,
		Status:        dombook.StatusConfirmed,
		PaymentStatus: dombook.PaymentPaid,
		Currency:      dombook.Currency,
		TotalPrice:    598,
		FlightID:      "flight_001",
		FlightDetails: map[string]any{"airline": "Delta Air Lines"},
		Passengers:    dombook.Passengers{Adults: 2},
		Class:         dombook.ClassBusiness,
		DepartureDate: "2026-11-01",
		CreatedAt:     1,
		UpdatedAt:     1,
	}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewTestStore(t), "t:")

	if err := repo.Create(ctx, flightBooking("FL1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := repo.Get(ctx, "FL1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Class != dombook.ClassBusiness || got.Passengers.Adults != 2 || got.FlightDetails["airline"] != "Delta Air Lines" {
		t.Errorf("unexpected booking: %+v", got)
	}
	if got.Guests != (dombook.Guests{}) || got.HotelID != "" {
		t.Errorf("hotel fields leaked into flight booking: %+v", got)
	}
}

func TestCreate_DuplicateReference(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewTestStore(t), "")

	_ = repo.Create(ctx, flightBooking("FL1"))
	err := repo.Create(ctx, flightBooking("FL1"))
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	list, _ := repo.List(ctx, 10)
	if len(list) != 1 {
		t.Fatalf("duplicate must not be indexed, got %d", len(list))
	}
}

func TestGet_NotFound(t *testing.T) {
	repo := New(memory.NewTestStore(t), "")
	_, err := repo.Get(context.Background(), "nope")
	if !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewTestStore(t), "")
	b := flightBooking("FL1")
	_ = repo.Create(ctx, b)

	b.Status = dombook.StatusCancelled
	if err := repo.Update(ctx, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := repo.Get(ctx, "FL1")
	if got.Status != dombook.StatusCancelled {
		t.Fatalf("status = %q", got.Status)
	}
}

func TestList_NewestFirstAndLimited(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewTestStore(t), "")
	for _, ref := range []string{"FL1", "FL2", "FL3"} {
		_ = repo.Create(ctx, flightBooking(ref))
	}

	got, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Reference != "FL3" || got[1].Reference != "FL2" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestHotelRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewTestStore(t), "")
	b := &dombook.Booking{
		Reference: "HT1",
		Kind:      dombook.KindHotel,
		HotelID:   "hotel_001",
		CheckIn:   "2026-11-01",
		CheckOut:  "2026-11-03",
		Nights:    2,
		Guests:    dombook.Guests{Adults: 2, Rooms: 1},
	}
	_ = repo.Create(ctx, b)
	got, _ := repo.Get(ctx, "HT1")
	if got.Guests.Rooms != 1 || got.Nights != 2 || got.Class != "" {
		t.Fatalf("unexpected booking: %+v", got)
	}
}

func TestCreate_IndexFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	store := &indexFailStore{Store: memory.NewTestStore(t), lpushErr: errors.New("connection reset")}
	repo := New(store, "")

	if err := repo.Create(ctx, flightBooking("FL1")); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if _, err := repo.Get(ctx, "FL1"); !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected rolled back booking, got %v", err)
	}

	store.lpushErr = nil
	if err := repo.Create(ctx, flightBooking("FL1")); err != nil {
		t.Fatalf("retry should succeed, got %v", err)
	}
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewTestStore(t), "")

	if n, err := repo.Count(ctx); err != nil || n != 0 {
		t.Fatalf("Count = %d, %v", n, err)
	}
	for _, ref := range []string{"FL1", "HT2"} {
		_ = repo.Create(ctx, flightBooking(ref))
	}
	if n, err := repo.Count(ctx); err != nil || n != 2 {
		t.Fatalf("Count = %d, %v", n, err)
	}
}

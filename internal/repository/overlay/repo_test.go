package overlay

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/tripdex/internal/db/memory"
	"github.com/kailas-cloud/tripdex/internal/domain"
	"github.com/kailas-cloud/tripdex/internal/domain/flight"
	"github.com/kailas-cloud/tripdex/internal/domain/hotel"
)

// mockStore wraps the memory store and lets tests fail HSET and LPUSH.
type mockStore struct {
	*memory.Store
	hsetErr  error
	lpushErr error
}

func (m *mockStore) LPush(ctx context.Context, key string, values ...string) error {
	if m.lpushErr != nil {
		return m.lpushErr
	}
	return m.Store.LPush(ctx, key, values...)
}

func (m *mockStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if m.hsetErr != nil {
		return m.hsetErr
	}
	return m.Store.HSet(ctx, key, fields)
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{Store: memory.NewTestStore(t)}
	return New(ms, "t:"), ms
}

func testFlight(id, number string) *flight.Flight {
	return &flight.Flight{
		ID:             id,
		Airline:        "Tripdex Air",
		FlightNumber:   number,
		From:           "BOS",
		To:             "SFO",
		Depart:         "09:00",
		Duration:       "2h 00m",
		Price:          149.5,
		AvailableSeats: 150,
		Aircraft:       "Boeing 737",
		Terminal:       "Terminal 1",
		Status:         flight.StatusActive,
	}
}

func TestCreateFlight_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	if err := repo.CreateFlight(ctx, testFlight("a", "TD1"), 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.CreateFlight(ctx, testFlight("b", "TD2"), 200); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.ListFlights(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Flight.ID != "b" || got[1].Flight.ID != "a" {
		t.Fatalf("unexpected list: %+v", got)
	}
	if got[0].CreatedAt != 200 || got[0].Flight.Price != 149.5 || got[0].Flight.AvailableSeats != 150 {
		t.Errorf("unexpected record: %+v", got[0])
	}
}

func TestCreateFlight_DuplicateNumber(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	_ = repo.CreateFlight(ctx, testFlight("a", "TD1"), 1)
	err := repo.CreateFlight(ctx, testFlight("b", "td1"), 2)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreateFlight_StoreFailureReleasesClaim(t *testing.T) {
	ctx := context.Background()
	repo, ms := newTestRepo(t)

	ms.hsetErr = errors.New("connection reset")
	err := repo.CreateFlight(ctx, testFlight("a", "TD1"), 1)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}

	ms.hsetErr = nil
	if err := repo.CreateFlight(ctx, testFlight("a", "TD1"), 1); err != nil {
		t.Fatalf("retry should succeed, got %v", err)
	}
}

func TestCreate_IndexFailureRollsBack(t *testing.T) {
	ctx := context.Background()
	repo, ms := newTestRepo(t)

	ms.lpushErr = errors.New("connection reset")
	if err := repo.CreateFlight(ctx, testFlight("a", "TD1"), 1); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	h := &hotel.Hotel{ID: "h1", Name: "Harbor House", Location: "Boston, MA", PricePerNight: 210, Status: hotel.StatusActive}
	if err := repo.CreateHotel(ctx, h, 1); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	for _, key := range []string{repo.flightKey("a"), repo.hotelKey("h1")} {
		if ok, _ := ms.Exists(ctx, key); ok {
			t.Errorf("%s left behind", key)
		}
	}

	ms.lpushErr = nil
	if err := repo.CreateFlight(ctx, testFlight("b", "TD1"), 2); err != nil {
		t.Fatalf("flight number should be free again, got %v", err)
	}
	got, err := repo.ListFlights(ctx)
	if err != nil || len(got) != 1 || got[0].Flight.ID != "b" {
		t.Fatalf("ListFlights = %+v, %v", got, err)
	}
}

func TestCreateHotel_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	h := &hotel.Hotel{
		ID:             "h1",
		Name:           "Harbor House",
		Location:       "Boston, MA",
		Rating:         3,
		PricePerNight:  210,
		AvailableRooms: 50,
		Amenities:      []string{"Free WiFi", "Gym"},
		Description:    "A comfortable hotel with great amenities.",
		Status:         hotel.StatusActive,
	}
	if err := repo.CreateHotel(ctx, h, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.ListHotels(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 hotel, got %d", len(got))
	}
	rec := got[0]
	if rec.Hotel.Name != "Harbor House" || len(rec.Hotel.Amenities) != 2 || rec.Hotel.Images == nil || rec.CreatedAt != 5 {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestList_Empty(t *testing.T) {
	repo, _ := newTestRepo(t)
	flights, err := repo.ListFlights(context.Background())
	if err != nil || len(flights) != 0 {
		t.Fatalf("ListFlights = %v, %v", flights, err)
	}
}

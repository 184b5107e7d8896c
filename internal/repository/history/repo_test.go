package history

import (
	"context"
	"errors"
	"testing"

	"github.com/kailas-cloud/tripdex/internal/db/memory"
	"github.com/kailas-cloud/tripdex/internal/domain"
	domhist "github.com/kailas-cloud/tripdex/internal/domain/history"
)

// failingStore returns err from every call.
type failingStore struct{ err error }

func (f failingStore) LPush(context.Context, string, ...string) error { return f.err }
func (f failingStore) LTrim(context.Context, string, int64, int64) error { return f.err }
func (f failingStore) LRange(context.Context, string, int64, int64) ([]string, error) {
	return nil, f.err
}

func TestPushAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewTestStore(t), "test:")

	for i := range 5 {
		e := &domhist.Entry{
			ID:           string(rune('a' + i)),
			UserID:       "u1",
			Kind:         domhist.KindFlight,
			Params:       map[string]any{"from": "NYC"},
			ResultsCount: i,
			Timestamp:    int64(1000 + i),
		}
		if err := repo.Push(ctx, e, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got, err := repo.Recent(ctx, "u1", domhist.KindFlight, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries after trim, got %d", len(got))
	}
	if got[0].Timestamp != 1004 || got[2].Timestamp != 1002 {
		t.Errorf("expected newest first, got %d..%d", got[0].Timestamp, got[2].Timestamp)
	}
	if got[0].Params["from"] != "NYC" {
		t.Errorf("params = %v", got[0].Params)
	}
}

func TestRecent_SeparatesUsersAndKinds(t *testing.T) {
	ctx := context.Background()
	repo := New(memory.NewTestStore(t), "")

	_ = repo.Push(ctx, &domhist.Entry{ID: "1", UserID: "u1", Kind: domhist.KindFlight}, 10)
	_ = repo.Push(ctx, &domhist.Entry{ID: "2", UserID: "u1", Kind: domhist.KindHotel}, 10)
	_ = repo.Push(ctx, &domhist.Entry{ID: "3", UserID: "u2", Kind: domhist.KindFlight}, 10)

	got, _ := repo.Recent(ctx, "u1", domhist.KindFlight, 10)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("got %+v", got)
	}
}

func TestRecent_Empty(t *testing.T) {
	repo := New(memory.NewTestStore(t), "")
	got, err := repo.Recent(context.Background(), "nobody", domhist.KindHotel, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestStoreErrors(t *testing.T) {
	repo := New(failingStore{err: errors.New("connection reset")}, "")
	ctx := context.Background()

	err := repo.Push(ctx, &domhist.Entry{UserID: "u", Kind: domhist.KindFlight}, 10)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Errorf("Push: expected ErrStoreUnavailable, got %v", err)
	}
	_, err = repo.Recent(ctx, "u", domhist.KindFlight, 10)
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Errorf("Recent: expected ErrStoreUnavailable, got %v", err)
	}
}

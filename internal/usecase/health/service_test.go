package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockDBPinger struct {
	err error
}

func (m *mockDBPinger) Ping(_ context.Context) error { return m.err }

type mockCatalog struct {
	flights, hotels int
}

func (m *mockCatalog) FlightCount() int { return m.flights }
func (m *mockCatalog) HotelCount() int  { return m.hotels }

// --- Tests ---

func TestCheck(t *testing.T) {
	tests := []struct {
		name        string
		dbErr       error
		catalog     mockCatalog
		wantStatus  Status
		wantDB      CheckResult
		wantCatalog CheckResult
	}{
		{"all healthy", nil, mockCatalog{25, 25}, Healthy, CheckOK, CheckOK},
		{"db down", errors.New("conn refused"), mockCatalog{25, 25}, Degraded, CheckError, CheckOK},
		{"no flights", nil, mockCatalog{0, 25}, Degraded, CheckOK, CheckError},
		{"no hotels", nil, mockCatalog{25, 0}, Degraded, CheckOK, CheckError},
		{"both fail", errors.New("db down"), mockCatalog{}, Degraded, CheckError, CheckError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(&mockDBPinger{err: tt.dbErr}, &tt.catalog)
			r := svc.Check(context.Background())

			if r.Status != tt.wantStatus {
				t.Errorf("expected %q, got %q", tt.wantStatus, r.Status)
			}
			if r.Checks["database"] != tt.wantDB {
				t.Errorf("expected database %q, got %q", tt.wantDB, r.Checks["database"])
			}
			if r.Checks["catalog"] != tt.wantCatalog {
				t.Errorf("expected catalog %q, got %q", tt.wantCatalog, r.Checks["catalog"])
			}
		})
	}
}

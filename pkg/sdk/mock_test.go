package tripdex

import (
	"context"

	"github.com/kailas-cloud/tripdex/internal/domain/search/params"
	flightuc "github.com/kailas-cloud/tripdex/internal/usecase/flight"
	hoteluc "github.com/kailas-cloud/tripdex/internal/usecase/hotel"
)

// --- flightUseCase mock ---

type mockFlightUC struct {
	allFn       func(ctx context.Context) []flightuc.View
	searchFn    func(ctx context.Context, body params.Bag) []flightuc.View
	filterFn    func(ctx context.Context, query params.Bag) []flightuc.View
	airlinesFn  func(ctx context.Context) []string
	locationsFn func(ctx context.Context) flightuc.Locations
}

func (m *mockFlightUC) All(ctx context.Context) []flightuc.View { return m.allFn(ctx) }

func (m *mockFlightUC) Search(ctx context.Context, body params.Bag) []flightuc.View {
	return m.searchFn(ctx, body)
}

func (m *mockFlightUC) Filter(ctx context.Context, query params.Bag) []flightuc.View {
	return m.filterFn(ctx, query)
}

func (m *mockFlightUC) Airlines(ctx context.Context) []string { return m.airlinesFn(ctx) }

func (m *mockFlightUC) Locations(ctx context.Context) flightuc.Locations { return m.locationsFn(ctx) }

// --- hotelUseCase mock ---

type mockHotelUC struct {
	allFn       func(ctx context.Context) []hoteluc.View
	searchFn    func(ctx context.Context, body params.Bag) []hoteluc.View
	filterFn    func(ctx context.Context, query params.Bag) []hoteluc.View
	locationsFn func(ctx context.Context) []string
	amenitiesFn func(ctx context.Context) []string
}

func (m *mockHotelUC) All(ctx context.Context) []hoteluc.View { return m.allFn(ctx) }

func (m *mockHotelUC) Search(ctx context.Context, body params.Bag) []hoteluc.View {
	return m.searchFn(ctx, body)
}

func (m *mockHotelUC) Filter(ctx context.Context, query params.Bag) []hoteluc.View {
	return m.filterFn(ctx, query)
}

func (m *mockHotelUC) Locations(ctx context.Context) []string { return m.locationsFn(ctx) }

func (m *mockHotelUC) Amenities(ctx context.Context) []string { return m.amenitiesFn(ctx) }

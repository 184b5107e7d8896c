package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/tripdex/internal/domain"
	"github.com/kailas-cloud/tripdex/internal/domain/flight"
	"github.com/kailas-cloud/tripdex/internal/domain/hotel"
	domoverlay "github.com/kailas-cloud/tripdex/internal/domain/overlay"
	"github.com/kailas-cloud/tripdex/internal/domain/search/params"
	"github.com/kailas-cloud/tripdex/internal/domain/search/predicate"
)

// Defaults applied to overlay records created without the field.
const (
	DefaultDuration    = "2h 00m"
	DefaultSeats       = 150
	DefaultAircraft    = "Boeing 737"
	DefaultTerminal    = "Terminal 1"
	DefaultRating      = 3.0
	DefaultRooms       = 50
	DefaultDescription = "A comfortable hotel with great amenities."
)

// Service manages admin overlay flights and hotels.
type Service struct {
	repo     Repository
	catalog  Catalog
	bookings BookingCounter
	now      func() time.Time
}

// New creates an admin overlay service.
func New(repo Repository, catalog Catalog, bookings BookingCounter) *Service {
	return &Service{repo: repo, catalog: catalog, bookings: bookings, now: time.Now}
}

// CreateFlight validates body, applies defaults and stores the flight.
// Returns domain.ErrAlreadyExists when the flight number is taken.
func (s *Service) CreateFlight(ctx context.Context, body params.Bag) (domoverlay.FlightRecord, error) {
	f, err := flightFromBody(body)
	if err != nil {
		return domoverlay.FlightRecord{}, fmt.Errorf("validate flight: %w", err)
	}
	f.ID = uuid.NewString()

	createdAt := s.now().UnixMilli()
	if err := s.repo.CreateFlight(ctx, &f, createdAt); err != nil {
		return domoverlay.FlightRecord{}, fmt.Errorf("create flight: %w", err)
	}
	return domoverlay.FlightRecord{Flight: f, CreatedAt: createdAt}, nil
}

// CreateHotel validates body, applies defaults and stores the hotel.
func (s *Service) CreateHotel(ctx context.Context, body params.Bag) (domoverlay.HotelRecord, error) {
	h, err := hotelFromBody(body)
	if err != nil {
		return domoverlay.HotelRecord{}, fmt.Errorf("validate hotel: %w", err)
	}
	h.ID = uuid.NewString()

	createdAt := s.now().UnixMilli()
	if err := s.repo.CreateHotel(ctx, &h, createdAt); err != nil {
		return domoverlay.HotelRecord{}, fmt.Errorf("create hotel: %w", err)
	}
	return domoverlay.HotelRecord{Hotel: h, CreatedAt: createdAt}, nil
}

// Flights lists overlay flights, newest first.
func (s *Service) Flights(ctx context.Context) ([]domoverlay.FlightRecord, error) {
	out, err := s.repo.ListFlights(ctx)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}
	return out, nil
}

// Hotels lists overlay hotels, newest first.
func (s *Service) Hotels(ctx context.Context) ([]domoverlay.HotelRecord, error) {
	out, err := s.repo.ListHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	return out, nil
}

func flightFromBody(b params.Bag) (flight.Flight, error) {
	f := flight.Flight{
		Airline:      b.String("airline"),
		FlightNumber: b.String("flightNumber"),
		From:         b.String("from"),
		To:           b.String("to"),
		Depart:       b.String("depart"),
		Return:       b.String("return"),
		Duration:     b.String("duration"),
		Aircraft:     b.String("aircraft"),
		Terminal:     b.String("terminal"),
		Status:       flight.StatusActive,
	}
	for _, req := range []struct{ field, value string }{
		{"airline", f.Airline},
		{"flightNumber", f.FlightNumber},
		{"from", f.From},
		{"to", f.To},
		{"depart", f.Depart},
	} {
		if req.value == "" {
			return flight.Flight{}, domain.NewValidation(req.field, "is required")
		}
	}
	if _, ok := predicate.ParseHour(f.Depart); !ok {
		return flight.Flight{}, domain.NewValidation("depart", "must be HH:MM")
	}

	price, ok := b.Positive("price")
	if !ok {
		return flight.Flight{}, domain.NewValidation("price", "must be greater than 0")
	}
	f.Price = price

	if b.Has("stops") {
		n, ok := b.Int("stops")
		if !ok || n < 0 {
			return flight.Flight{}, domain.NewValidation("stops", "must be a non-negative integer")
		}
		f.Stops = n
	}
	f.AvailableSeats = DefaultSeats
	if b.Has("availableSeats") {
		n, ok := b.Int("availableSeats")
		if !ok || n < 0 {
			return flight.Flight{}, domain.NewValidation("availableSeats", "must be a non-negative integer")
		}
		f.AvailableSeats = n
	}
	if st := b.String("status"); st != "" {
		f.Status = flight.Status(st)
		if !f.Status.Valid() {
			return flight.Flight{}, domain.NewValidation("status", "must be active, cancelled or delayed")
		}
	}

	if f.Duration == "" {
		f.Duration = DefaultDuration
	}
	if f.Aircraft == "" {
		f.Aircraft = DefaultAircraft
	}
	if f.Terminal == "" {
		f.Terminal = DefaultTerminal
	}
	return f, nil
}

func hotelFromBody(b params.Bag) (hotel.Hotel, error) {
	h := hotel.Hotel{
		Name:         b.String("name"),
		Location:     b.String("location"),
		Description:  b.String("description"),
		Address:      b.String("address"),
		Phone:        b.String("phone"),
		CheckInTime:  b.String("checkInTime"),
		CheckOutTime: b.String("checkOutTime"),
		Amenities:    b.List("amenities"),
		Images:       b.List("images"),
		Status:       hotel.StatusActive,
	}
	if h.Name == "" {
		return hotel.Hotel{}, domain.NewValidation("name", "is required")
	}
	if h.Location == "" {
		return hotel.Hotel{}, domain.NewValidation("location", "is required")
	}

	price, ok := b.Positive("pricePerNight")
	if !ok {
		return hotel.Hotel{}, domain.NewValidation("pricePerNight", "must be greater than 0")
	}
	h.PricePerNight = price

	h.Rating = DefaultRating
	if b.Has("rating") {
		r, ok := b.Number("rating")
		if !ok || r < 1 || r > 5 {
			return hotel.Hotel{}, domain.NewValidation("rating", "must be between 1 and 5")
		}
		h.Rating = r
	}
	if n, ok := b.Int("starRating"); ok {
		h.StarRating = n
	}

	h.AvailableRooms = DefaultRooms
	if b.Has("availableRooms") {
		n, ok := b.Int("availableRooms")
		if !ok || n < 0 {
			return hotel.Hotel{}, domain.NewValidation("availableRooms", "must be a non-negative integer")
		}
		h.AvailableRooms = n
	}
	if st := b.String("status"); st != "" {
		h.Status = hotel.Status(st)
		if !h.Status.Valid() {
			return hotel.Hotel{}, domain.NewValidation("status", "must be active, inactive or maintenance")
		}
	}

	if h.Description == "" {
		h.Description = DefaultDescription
	}
	if h.Amenities == nil {
		h.Amenities = []string{}
	}
	if h.Images == nil {
		h.Images = []string{}
	}
	return h, nil
}

package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/tripdex/internal/domain"
	dombook "github.com/kailas-cloud/tripdex/internal/domain/booking"
	"github.com/kailas-cloud/tripdex/internal/metrics"
)

// referenceAttempts bounds retries when a generated reference is already taken.
const referenceAttempts = 3

// FlightRequest is a flight booking as submitted by a caller.
type FlightRequest struct {
	UserID        string
	FlightID      string
	FlightDetails map[string]any
	Passengers    dombook.Passengers
	Class         string
	TotalPrice    float64
	DepartureDate string
	ReturnDate    string
}

// HotelRequest is a hotel booking as submitted by a caller.
type HotelRequest struct {
	UserID       string
	HotelID      string
	HotelDetails map[string]any
	CheckIn      string
	CheckOut     string
	Nights       int
	Guests       dombook.Guests
	TotalPrice   float64
}

// Service creates, reads and cancels bookings.
type Service struct {
	repo      Repository
	listLimit int
	now       func() time.Time
}

// New creates a booking service. listLimit caps List results.
func New(repo Repository, listLimit int) *Service {
	return &Service{repo: repo, listLimit: listLimit, now: time.Now}
}

// CreateFlight validates and stores a flight booking.
func (s *Service) CreateFlight(ctx context.Context, req FlightRequest) (dombook.Booking, error) {
	if req.TotalPrice <= 0 {
		return dombook.Booking{}, domain.NewValidation("totalPrice", "must be greater than 0")
	}
	class, err := dombook.ParseClass(req.Class)
	if err != nil {
		return dombook.Booking{}, domain.NewValidation("class", "must be economy, premium, business or first")
	}
	pax := req.Passengers
	if pax.Adults < 0 || pax.Children < 0 || pax.Infants < 0 {
		return dombook.Booking{}, domain.NewValidation("passengers", "counts must not be negative")
	}
	if pax.Total() == 0 {
		pax.Adults = 1
	}

	b := s.newBooking(dombook.KindFlight, req.UserID, req.TotalPrice)
	b.FlightID = req.FlightID
	b.FlightDetails = req.FlightDetails
	b.Passengers = pax
	b.Class = class
	b.DepartureDate = req.DepartureDate
	b.ReturnDate = req.ReturnDate

	if err := s.create(ctx, &b); err != nil {
		return dombook.Booking{}, err
	}
	return b, nil
}

// CreateHotel validates and stores a hotel booking.
func (s *Service) CreateHotel(ctx context.Context, req HotelRequest) (dombook.Booking, error) {
	if req.TotalPrice <= 0 {
		return dombook.Booking{}, domain.NewValidation("totalPrice", "must be greater than 0")
	}
	if req.Nights < 0 {
		return dombook.Booking{}, domain.NewValidation("nights", "must not be negative")
	}
	g := req.Guests
	if g.Adults < 0 || g.Children < 0 || g.Infants < 0 || g.Rooms < 0 {
		return dombook.Booking{}, domain.NewValidation("guests", "counts must not be negative")
	}
	if g.Rooms == 0 {
		g.Rooms = 1
	}

	b := s.newBooking(dombook.KindHotel, req.UserID, req.TotalPrice)
	b.HotelID = req.HotelID
	b.HotelDetails = req.HotelDetails
	b.CheckIn = req.CheckIn
	b.CheckOut = req.CheckOut
	b.Nights = req.Nights
	b.Guests = g

	if err := s.create(ctx, &b); err != nil {
		return dombook.Booking{}, err
	}
	return b, nil
}

func (s *Service) newBooking(kind dombook.Kind, userID string, total float64) dombook.Booking {
	now := s.now().UnixMilli()
	return dombook.Booking{
		ID:            uuid.NewString(),
		UserID:        userID,
		Kind:          kind,
		Status:        dombook.StatusConfirmed,
		PaymentStatus: dombook.PaymentPaid,
		Currency:      dombook.Currency,
		TotalPrice:    total,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// create assigns a fresh reference and stores b, retrying on collisions.
func (s *Service) create(ctx context.Context, b *dombook.Booking) error {
	var err error
	for range referenceAttempts {
		b.Reference = dombook.NewReference(b.Kind, s.now())
		err = s.repo.Create(ctx, b)
		if !errors.Is(err, domain.ErrAlreadyExists) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("create %s booking: %w", b.Kind, err)
	}
	metrics.BookingsTotal.WithLabelValues(string(b.Kind), "created").Inc()
	return nil
}

// Get returns the booking with the given reference.
func (s *Service) Get(ctx context.Context, reference string) (dombook.Booking, error) {
	b, err := s.repo.Get(ctx, reference)
	if err != nil {
		return dombook.Booking{}, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

// List returns the most recent bookings, newest first.
func (s *Service) List(ctx context.Context) ([]dombook.Booking, error) {
	out, err := s.repo.List(ctx, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

// ListAll returns every booking, newest first.
func (s *Service) ListAll(ctx context.Context) ([]dombook.Booking, error) {
	out, err := s.repo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list all bookings: %w", err)
	}
	return out, nil
}

// Cancel marks a booking cancelled. Cancelling a cancelled booking succeeds.
func (s *Service) Cancel(ctx context.Context, reference string) (dombook.Booking, error) {
	b, err := s.repo.Get(ctx, reference)
	if err != nil {
		return dombook.Booking{}, fmt.Errorf("cancel booking: %w", err)
	}
	wasActive := b.Status != dombook.StatusCancelled
	b.Cancel(s.now())
	if err := s.repo.Update(ctx, &b); err != nil {
		return dombook.Booking{}, fmt.Errorf("cancel booking: %w", err)
	}
	if wasActive {
		metrics.BookingsTotal.WithLabelValues(string(b.Kind), "cancelled").Inc()
	}
	return b, nil
}

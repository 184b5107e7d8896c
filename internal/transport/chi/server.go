package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	domhist "github.com/kailas-cloud/tripdex/internal/domain/history"
	"github.com/kailas-cloud/tripdex/internal/domain/search/params"
	adminuc "github.com/kailas-cloud/tripdex/internal/usecase/admin"
	bookinguc "github.com/kailas-cloud/tripdex/internal/usecase/booking"
	dashboarduc "github.com/kailas-cloud/tripdex/internal/usecase/dashboard"
	flightuc "github.com/kailas-cloud/tripdex/internal/usecase/flight"
	healthuc "github.com/kailas-cloud/tripdex/internal/usecase/health"
	historyuc "github.com/kailas-cloud/tripdex/internal/usecase/history"
	hoteluc "github.com/kailas-cloud/tripdex/internal/usecase/hotel"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Server holds the HTTP handlers of the travel API.
type Server struct {
	flights       *flightuc.Service
	hotels        *hoteluc.Service
	history       *historyuc.Service
	bookings      *bookinguc.Service
	admin         *adminuc.Service
	dashboard     *dashboarduc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	flights *flightuc.Service,
	hotels *hoteluc.Service,
	history *historyuc.Service,
	bookings *bookinguc.Service,
	admin *adminuc.Service,
	dashboard *dashboarduc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	return &Server{
		flights:       flights,
		hotels:        hotels,
		history:       history,
		bookings:      bookings,
		admin:         admin,
		dashboard:     dashboard,
		health:        health,
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
}

// ListFlights handles GET /api/flights.
func (s *Server) ListFlights(w http.ResponseWriter, r *http.Request) {
	writeList(w, s.flights.All(r.Context()))
}

// SearchFlights handles POST /api/flights/search.
func (s *Server) SearchFlights(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBag(w, r)
	if !ok {
		return
	}
	writeList(w, s.flights.Search(r.Context(), body))
}

// FilterFlights handles GET /api/flights/filter.
func (s *Server) FilterFlights(w http.ResponseWriter, r *http.Request) {
	writeList(w, s.flights.Filter(r.Context(), params.FromValues(r.URL.Query())))
}

// FlightAirlines handles GET /api/flights/airlines.
func (s *Server) FlightAirlines(w http.ResponseWriter, r *http.Request) {
	writeList(w, s.flights.Airlines(r.Context()))
}

// FlightLocations handles GET /api/flights/locations.
func (s *Server) FlightLocations(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, "", s.flights.Locations(r.Context()))
}

// ListHotels handles GET /api/hotels.
func (s *Server) ListHotels(w http.ResponseWriter, r *http.Request) {
	writeList(w, s.hotels.All(r.Context()))
}

// SearchHotels handles POST /api/hotels/search.
func (s *Server) SearchHotels(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBag(w, r)
	if !ok {
		return
	}
	writeList(w, s.hotels.Search(r.Context(), body))
}

// FilterHotels handles GET /api/hotels/filter.
func (s *Server) FilterHotels(w http.ResponseWriter, r *http.Request) {
	writeList(w, s.hotels.Filter(r.Context(), params.FromValues(r.URL.Query())))
}

// HotelLocations handles GET /api/hotels/locations.
func (s *Server) HotelLocations(w http.ResponseWriter, r *http.Request) {
	writeList(w, s.hotels.Locations(r.Context()))
}

// HotelAmenities handles GET /api/hotels/amenities.
func (s *Server) HotelAmenities(w http.ResponseWriter, r *http.Request) {
	writeList(w, s.hotels.Amenities(r.Context()))
}

// SaveSearchHistory handles POST /api/search-history.
func (s *Server) SaveSearchHistory(w http.ResponseWriter, r *http.Request) {
	var req historyRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	e, err := s.history.Save(r.Context(), historyuc.SaveRequest{
		UserID:       userID(r),
		Type:         req.Type,
		Params:       req.SearchParams,
		ResultsCount: req.ResultsCount,
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, "Search history saved", historyToResponse(&e))
}

// FlightSearchHistory handles GET /api/search-history/flights.
func (s *Server) FlightSearchHistory(w http.ResponseWriter, r *http.Request) {
	s.recentHistory(w, r, domhist.KindFlight)
}

// HotelSearchHistory handles GET /api/search-history/hotels.
func (s *Server) HotelSearchHistory(w http.ResponseWriter, r *http.Request) {
	s.recentHistory(w, r, domhist.KindHotel)
}

func (s *Server) recentHistory(w http.ResponseWriter, r *http.Request, kind domhist.Kind) {
	entries, err := s.history.Recent(r.Context(), userID(r), kind)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	out := make([]historyResponse, len(entries))
	for i := range entries {
		out[i] = historyToResponse(&entries[i])
	}
	writeList(w, out)
}

// BookFlight handles POST /api/bookings/flight.
func (s *Server) BookFlight(w http.ResponseWriter, r *http.Request) {
	var req flightBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	b, err := s.bookings.CreateFlight(r.Context(), bookinguc.FlightRequest{
		UserID:        userID(r),
		FlightID:      req.FlightID,
		FlightDetails: req.FlightDetails,
		Passengers:    req.Passengers,
		Class:         req.Class,
		TotalPrice:    req.TotalPrice,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, bookingCreatedResponse{
		Success:          true,
		Message:          "Flight booked successfully",
		BookingReference: b.Reference,
		BookingID:        b.ID,
		Data:             bookingToResponse(&b),
	})
}

// BookHotel handles POST /api/bookings/hotel.
func (s *Server) BookHotel(w http.ResponseWriter, r *http.Request) {
	var req hotelBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	b, err := s.bookings.CreateHotel(r.Context(), bookinguc.HotelRequest{
		UserID:       userID(r),
		HotelID:      req.HotelID,
		HotelDetails: req.HotelDetails,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Nights:       req.Nights,
		Guests:       req.Guests,
		TotalPrice:   req.TotalPrice,
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, bookingCreatedResponse{
		Success:          true,
		Message:          "Hotel booked successfully",
		BookingReference: b.Reference,
		BookingID:        b.ID,
		Data:             bookingToResponse(&b),
	})
}

// ListBookings handles GET /api/bookings.
func (s *Server) ListBookings(w http.ResponseWriter, r *http.Request) {
	bs, err := s.bookings.List(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeList(w, bookingsToResponse(bs))
}

// GetBooking handles GET /api/bookings/{reference}.
func (s *Server) GetBooking(w http.ResponseWriter, r *http.Request) {
	b, err := s.bookings.Get(r.Context(), chi.URLParam(r, "reference"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, "", bookingToResponse(&b))
}

// CancelBooking handles PUT /api/bookings/{reference}/cancel.
func (s *Server) CancelBooking(w http.ResponseWriter, r *http.Request) {
	b, err := s.bookings.Cancel(r.Context(), chi.URLParam(r, "reference"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, "Booking cancelled successfully", bookingToResponse(&b))
}

// DashboardStats handles GET /api/dashboard/stats.
func (s *Server) DashboardStats(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, "", s.dashboard.Stats(r.Context()))
}

// AdminListFlights handles GET /api/admin/flights.
func (s *Server) AdminListFlights(w http.ResponseWriter, r *http.Request) {
	recs, err := s.admin.Flights(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeList(w, overlayFlightsToResponse(recs))
}

// AdminCreateFlight handles POST /api/admin/flights.
func (s *Server) AdminCreateFlight(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBag(w, r)
	if !ok {
		return
	}
	rec, err := s.admin.CreateFlight(r.Context(), body)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, "Flight created successfully",
		overlayFlightResponse{View: flightuc.Shape(&rec.Flight), CreatedAt: rec.CreatedAt})
}

// AdminListHotels handles GET /api/admin/hotels.
func (s *Server) AdminListHotels(w http.ResponseWriter, r *http.Request) {
	recs, err := s.admin.Hotels(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeList(w, overlayHotelsToResponse(recs))
}

// AdminCreateHotel handles POST /api/admin/hotels.
func (s *Server) AdminCreateHotel(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeBag(w, r)
	if !ok {
		return
	}
	rec, err := s.admin.CreateHotel(r.Context(), body)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, "Hotel created successfully",
		overlayHotelResponse{View: hoteluc.Shape(&rec.Hotel, fixedReviews{}), CreatedAt: rec.CreatedAt})
}

// AdminListBookings handles GET /api/admin/bookings.
func (s *Server) AdminListBookings(w http.ResponseWriter, r *http.Request) {
	bs, err := s.bookings.ListAll(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeList(w, bookingsToResponse(bs))
}

// AdminStats handles GET /api/admin/stats.
func (s *Server) AdminStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.admin.Stats(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, "", adminStatsToResponse(st))
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, healthResponse{Status: string(report.Status), Checks: checks})
}

// decodeBag reads a JSON object body. An empty body reads as an empty Bag.
func decodeBag(w http.ResponseWriter, r *http.Request) (params.Bag, bool) {
	var body map[string]any
	if !decodeJSON(w, r, &body) {
		return nil, false
	}
	if body == nil {
		body = map[string]any{}
	}
	return params.Bag(body), true
}

// decodeJSON decodes the request body into v. An empty body leaves v
// untouched; anything after the first JSON value is rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return true
	}
	if err == nil {
		if err = dec.Decode(&struct{}{}); errors.Is(err, io.EOF) {
			return true
		}
	}
	writeError(w, http.StatusBadRequest, "invalid request body")
	return false
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := s.logger.With(zap.String("path", r.URL.Path))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Warn("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

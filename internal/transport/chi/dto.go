package chi

import (
	dombook "github.com/kailas-cloud/tripdex/internal/domain/booking"
	domhist "github.com/kailas-cloud/tripdex/internal/domain/history"
	domoverlay "github.com/kailas-cloud/tripdex/internal/domain/overlay"
	flightuc "github.com/kailas-cloud/tripdex/internal/usecase/flight"
	adminuc "github.com/kailas-cloud/tripdex/internal/usecase/admin"
	hoteluc "github.com/kailas-cloud/tripdex/internal/usecase/hotel"
)

type historyRequest struct {
	Type         string         `json:"type"`
	SearchParams map[string]any `json:"searchParams"`
	ResultsCount int            `json:"resultsCount"`
}

type historyResponse struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	Type         string         `json:"type"`
	SearchParams map[string]any `json:"searchParams"`
	ResultsCount int            `json:"resultsCount"`
	Timestamp    int64          `json:"timestamp"`
}

func historyToResponse(e *domhist.Entry) historyResponse {
	p := e.Params
	if p == nil {
		p = map[string]any{}
	}
	return historyResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		Type:         string(e.Kind),
		SearchParams: p,
		ResultsCount: e.ResultsCount,
		Timestamp:    e.Timestamp,
	}
}

type flightBookingRequest struct {
	FlightID      string             `json:"flightId"`
	FlightDetails map[string]any     `json:"flightDetails"`
	Passengers    dombook.Passengers `json:"passengers"`
	Class         string             `json:"class"`
	TotalPrice    float64            `json:"totalPrice"`
	DepartureDate string             `json:"departureDate"`
	ReturnDate    string             `json:"returnDate"`
}

type hotelBookingRequest struct {
	HotelID      string         `json:"hotelId"`
	HotelDetails map[string]any `json:"hotelDetails"`
	CheckIn      string         `json:"checkIn"`
	CheckOut     string         `json:"checkOut"`
	Nights       int            `json:"nights"`
	Guests       dombook.Guests `json:"guests"`
	TotalPrice   float64        `json:"totalPrice"`
}

type bookingResponse struct {
	ID            string  `json:"id"`
	Reference     string  `json:"bookingReference"`
	UserID        string  `json:"userId"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	Currency      string  `json:"currency"`
	TotalPrice    float64 `json:"totalPrice"`

	FlightID      string              `json:"flightId,omitempty"`
	FlightDetails map[string]any      `json:"flightDetails,omitempty"`
	Passengers    *dombook.Passengers `json:"passengers,omitempty"`
	Class         string              `json:"class,omitempty"`
	DepartureDate string              `json:"departureDate,omitempty"`
	ReturnDate    string              `json:"returnDate,omitempty"`

	HotelID      string          `json:"hotelId,omitempty"`
	HotelDetails map[string]any  `json:"hotelDetails,omitempty"`
	CheckIn      string          `json:"checkIn,omitempty"`
	CheckOut     string          `json:"checkOut,omitempty"`
	Nights       int             `json:"nights,omitempty"`
	Guests       *dombook.Guests `json:"guests,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

func bookingToResponse(b *dombook.Booking) bookingResponse {
	resp := bookingResponse{
		ID:            b.ID,
		Reference:     b.Reference,
		UserID:        b.UserID,
		Type:          string(b.Kind),
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		Currency:      b.Currency,
		TotalPrice:    b.TotalPrice,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	switch b.Kind {
	case dombook.KindFlight:
		p := b.Passengers
		resp.FlightID = b.FlightID
		resp.FlightDetails = b.FlightDetails
		resp.Passengers = &p
		resp.Class = string(b.Class)
		resp.DepartureDate = b.DepartureDate
		resp.ReturnDate = b.ReturnDate
	case dombook.KindHotel:
		g := b.Guests
		resp.HotelID = b.HotelID
		resp.HotelDetails = b.HotelDetails
		resp.CheckIn = b.CheckIn
		resp.CheckOut = b.CheckOut
		resp.Nights = b.Nights
		resp.Guests = &g
	}
	return resp
}

func bookingsToResponse(bs []dombook.Booking) []bookingResponse {
	out := make([]bookingResponse, len(bs))
	for i := range bs {
		out[i] = bookingToResponse(&bs[i])
	}
	return out
}

// bookingCreatedResponse mirrors the fields booking clients read at the top level.
type bookingCreatedResponse struct {
	Success          bool            `json:"success"`
	Message          string          `json:"message"`
	BookingReference string          `json:"bookingReference"`
	BookingID        string          `json:"bookingId"`
	Data             bookingResponse `json:"data"`
}

type overlayFlightResponse struct {
	flightuc.View
	CreatedAt int64 `json:"createdAt"`
}

type overlayHotelResponse struct {
	hoteluc.View
	CreatedAt int64 `json:"createdAt"`
}

// fixedReviews reports zero reviews for admin-created hotels.
type fixedReviews struct{}

func (fixedReviews) Reviews() int { return 0 }

func overlayFlightsToResponse(recs []domoverlay.FlightRecord) []overlayFlightResponse {
	out := make([]overlayFlightResponse, len(recs))
	for i := range recs {
		out[i] = overlayFlightResponse{View: flightuc.Shape(&recs[i].Flight), CreatedAt: recs[i].CreatedAt}
	}
	return out
}

func overlayHotelsToResponse(recs []domoverlay.HotelRecord) []overlayHotelResponse {
	out := make([]overlayHotelResponse, len(recs))
	for i := range recs {
		out[i] = overlayHotelResponse{View: hoteluc.Shape(&recs[i].Hotel, fixedReviews{}), CreatedAt: recs[i].CreatedAt}
	}
	return out
}

type countsResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type bookingCountResponse struct {
	Total int `json:"total"`
}

type adminStatsResponse struct {
	Flights  countsResponse       `json:"flights"`
	Hotels   countsResponse       `json:"hotels"`
	Bookings bookingCountResponse `json:"bookings"`
}

func adminStatsToResponse(st adminuc.Stats) adminStatsResponse {
	return adminStatsResponse{
		Flights:  countsResponse(st.Flights),
		Hotels:   countsResponse(st.Hotels),
		Bookings: bookingCountResponse{Total: st.Bookings},
	}
}

package booking

import (
	dombook "github.com/kailas-cloud/tripdex/internal/domain/booking"
)

// bookingRow is the JSON document stored per booking reference.
type bookingRow struct {
	ID            string  `json:"id"`
	Reference     string  `json:"bookingReference"`
	UserID        string  `json:"userId"`
	Kind          string  `json:"type"`
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

func toRow(b *dombook.Booking) bookingRow {
	row := bookingRow{
		ID:            b.ID,
		Reference:     b.Reference,
		UserID:        b.UserID,
		Kind:          string(b.Kind),
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
		row.FlightID = b.FlightID
		row.FlightDetails = b.FlightDetails
		row.Passengers = &p
		row.Class = string(b.Class)
		row.DepartureDate = b.DepartureDate
		row.ReturnDate = b.ReturnDate
	case dombook.KindHotel:
		g := b.Guests
		row.HotelID = b.HotelID
		row.HotelDetails = b.HotelDetails
		row.CheckIn = b.CheckIn
		row.CheckOut = b.CheckOut
		row.Nights = b.Nights
		row.Guests = &g
	}
	return row
}

func (row *bookingRow) toDomain() dombook.Booking {
	b := dombook.Booking{
		ID:            row.ID,
		Reference:     row.Reference,
		UserID:        row.UserID,
		Kind:          dombook.Kind(row.Kind),
		Status:        dombook.Status(row.Status),
		PaymentStatus: dombook.PaymentStatus(row.PaymentStatus),
		Currency:      row.Currency,
		TotalPrice:    row.TotalPrice,
		FlightID:      row.FlightID,
		FlightDetails: row.FlightDetails,
		Class:         dombook.Class(row.Class),
		DepartureDate: row.DepartureDate,
		ReturnDate:    row.ReturnDate,
		HotelID:       row.HotelID,
		HotelDetails:  row.HotelDetails,
		CheckIn:       row.CheckIn,
		CheckOut:      row.CheckOut,
		Nights:        row.Nights,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
	if row.Passengers != nil {
		b.Passengers = *row.Passengers
	}
	if row.Guests != nil {
		b.Guests = *row.Guests
	}
	return b
}

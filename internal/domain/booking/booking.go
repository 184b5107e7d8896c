// Package booking models flight and hotel reservations.
package booking

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// Kind distinguishes flight and hotel bookings.
type Kind string

// Booking kinds.
const (
	KindFlight Kind = "flight"
	KindHotel  Kind = "hotel"
)

// Status is the booking lifecycle state.
type Status string

// Booking statuses.
const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// PaymentStatus is the simulated payment state. Payments are never processed.
type PaymentStatus string

// PaymentPaid is the only payment state bookings are created with.
const PaymentPaid PaymentStatus = "paid"

// Class is the flight cabin class.
type Class string

// Cabin classes.
const (
	ClassEconomy  Class = "economy"
	ClassPremium  Class = "premium"
	ClassBusiness Class = "business"
	ClassFirst    Class = "first"
)

// ParseClass maps a caller token to a Class. An empty token means economy.
func ParseClass(s string) (Class, error) {
	switch c := Class(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return ClassEconomy, nil
	case ClassEconomy, ClassPremium, ClassBusiness, ClassFirst:
		return c, nil
	default:
		return "", fmt.Errorf("unknown class %q", s)
	}
}

// Currency is the currency every price is quoted in.
const Currency = "USD"

// Passengers counts travellers on a flight booking.
type Passengers struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// Total returns the number of travellers.
func (p Passengers) Total() int { return p.Adults + p.Children + p.Infants }

// Guests counts occupants and rooms on a hotel booking.
type Guests struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
	Rooms    int `json:"rooms"`
}

// Booking is a confirmed or cancelled reservation. Flight fields are set for
// KindFlight, hotel fields for KindHotel.
type Booking struct {
	ID            string
	Reference     string
	UserID        string
	Kind          Kind
	Status        Status
	PaymentStatus PaymentStatus
	Currency      string
	TotalPrice    float64

	FlightID      string
	FlightDetails map[string]any
	Passengers    Passengers
	Class         Class
	DepartureDate string
	ReturnDate    string

	HotelID      string
	HotelDetails map[string]any
	CheckIn      string
	CheckOut     string
	Nights       int
	Guests       Guests

	CreatedAt int64 // unix millis
	UpdatedAt int64 // unix millis
}

// Cancel marks the booking cancelled. Cancelling twice keeps the booking
// cancelled and only refreshes UpdatedAt.
func (b *Booking) Cancel(now time.Time) {
	b.Status = StatusCancelled
	b.UpdatedAt = now.UnixMilli()
}

const (
	suffixLen      = 4
	suffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewReference builds a human-readable booking reference: a two-letter kind
// prefix, the creation time in unix millis and a random base36 suffix.
func NewReference(kind Kind, now time.Time) string {
	prefix := "FL"
	if kind == KindHotel {
		prefix = "HT"
	}
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(strconv.FormatInt(now.UnixMilli(), 10))
	for range suffixLen {
		sb.WriteByte(suffixAlphabet[rand.IntN(len(suffixAlphabet))]) //nolint:gosec // not security sensitive
	}
	return sb.String()
}

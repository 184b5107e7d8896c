package catalog

import (
	"fmt"

	"github.com/kailas-cloud/tripdex/internal/domain/flight"
	"github.com/kailas-cloud/tripdex/internal/domain/hotel"
)

type flightsFile struct {
	Flights []flightRow `yaml:"flights"`
}

type flightRow struct {
	ID             string  `yaml:"id"`
	Airline        string  `yaml:"airline"`
	FlightNumber   string  `yaml:"flightNumber"`
	From           string  `yaml:"from"`
	To             string  `yaml:"to"`
	Depart         string  `yaml:"depart"`
	Return         string  `yaml:"return"`
	Duration       string  `yaml:"duration"`
	Price          float64 `yaml:"price"`
	Stops          int     `yaml:"stops"`
	AvailableSeats int     `yaml:"availableSeats"`
	Aircraft       string  `yaml:"aircraft"`
	Terminal       string  `yaml:"terminal"`
	Status         string  `yaml:"status"`
}

func (r *flightRow) toDomain() (flight.Flight, error) {
	if r.ID == "" {
		return flight.Flight{}, fmt.Errorf("flight %s: id is required", r.FlightNumber)
	}
	if r.Price <= 0 {
		return flight.Flight{}, fmt.Errorf("flight %s: price must be positive", r.ID)
	}
	if r.Stops < 0 || r.AvailableSeats < 0 {
		return flight.Flight{}, fmt.Errorf("flight %s: negative stops or seats", r.ID)
	}
	status := flight.Status(r.Status)
	if status == "" {
		status = flight.StatusActive
	}
	if !status.Valid() {
		return flight.Flight{}, fmt.Errorf("flight %s: unknown status %q", r.ID, r.Status)
	}
	return flight.Flight{
		ID:             r.ID,
		Airline:        r.Airline,
		FlightNumber:   r.FlightNumber,
		From:           r.From,
		To:             r.To,
		Depart:         r.Depart,
		Return:         r.Return,
		Duration:       r.Duration,
		Price:          r.Price,
		Stops:          r.Stops,
		AvailableSeats: r.AvailableSeats,
		Aircraft:       r.Aircraft,
		Terminal:       r.Terminal,
		Status:         status,
	}, nil
}

type hotelsFile struct {
	Hotels []hotelRow `yaml:"hotels"`
}

type hotelRow struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Location       string   `yaml:"location"`
	Rating         float64  `yaml:"rating"`
	StarRating     int      `yaml:"starRating"`
	PricePerNight  float64  `yaml:"pricePerNight"`
	AvailableRooms int      `yaml:"availableRooms"`
	Amenities      []string `yaml:"amenities"`
	Images         []string `yaml:"images"`
	Description    string   `yaml:"description"`
	Address        string   `yaml:"address"`
	Phone          string   `yaml:"phone"`
	CheckInTime    string   `yaml:"checkInTime"`
	CheckOutTime   string   `yaml:"checkOutTime"`
	Status         string   `yaml:"status"`
}

func (r *hotelRow) toDomain() (hotel.Hotel, error) {
	if r.ID == "" {
		return hotel.Hotel{}, fmt.Errorf("hotel %q: id is required", r.Name)
	}
	if r.PricePerNight <= 0 {
		return hotel.Hotel{}, fmt.Errorf("hotel %s: pricePerNight must be positive", r.ID)
	}
	status := hotel.Status(r.Status)
	if status == "" {
		status = hotel.StatusActive
	}
	if !status.Valid() {
		return hotel.Hotel{}, fmt.Errorf("hotel %s: unknown status %q", r.ID, r.Status)
	}
	return hotel.Hotel{
		ID:             r.ID,
		Name:           r.Name,
		Location:       r.Location,
		Rating:         r.Rating,
		StarRating:     r.StarRating,
		PricePerNight:  r.PricePerNight,
		AvailableRooms: r.AvailableRooms,
		Amenities:      r.Amenities,
		Images:         r.Images,
		Description:    r.Description,
		Address:        r.Address,
		Phone:          r.Phone,
		CheckInTime:    r.CheckInTime,
		CheckOutTime:   r.CheckOutTime,
		Status:         status,
	}, nil
}

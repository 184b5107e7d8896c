package overlay

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/kailas-cloud/tripdex/internal/domain/flight"
	"github.com/kailas-cloud/tripdex/internal/domain/hotel"
)

// flightToHash converts an overlay flight to a map for HSET.
func flightToHash(f *flight.Flight, createdAt int64) map[string]string {
	return map[string]string{
		"id":              f.ID,
		"airline":         f.Airline,
		"flight_number":   f.FlightNumber,
		"from":            f.From,
		"to":              f.To,
		"depart":          f.Depart,
		"return":          f.Return,
		"duration":        f.Duration,
		"price":           strconv.FormatFloat(f.Price, 'f', -1, 64),
		"stops":           strconv.Itoa(f.Stops),
		"available_seats": strconv.Itoa(f.AvailableSeats),
		"aircraft":        f.Aircraft,
		"terminal":        f.Terminal,
		"status":          string(f.Status),
		"created_at":      strconv.FormatInt(createdAt, 10),
	}
}

// flightFromHash hydrates an overlay flight from an HGETALL result map.
func flightFromHash(m map[string]string) (flight.Flight, error) {
	price, err := strconv.ParseFloat(m["price"], 64)
	if err != nil {
		return flight.Flight{}, fmt.Errorf("invalid price: %w", err)
	}
	stops, _ := strconv.Atoi(m["stops"])
	seats, _ := strconv.Atoi(m["available_seats"])
	return flight.Flight{
		ID:             m["id"],
		Airline:        m["airline"],
		FlightNumber:   m["flight_number"],
		From:           m["from"],
		To:             m["to"],
		Depart:         m["depart"],
		Return:         m["return"],
		Duration:       m["duration"],
		Price:          price,
		Stops:          stops,
		AvailableSeats: seats,
		Aircraft:       m["aircraft"],
		Terminal:       m["terminal"],
		Status:         flight.Status(m["status"]),
	}, nil
}

// hotelToHash converts an overlay hotel to a map for HSET. List fields are
// stored as JSON arrays.
func hotelToHash(h *hotel.Hotel, createdAt int64) (map[string]string, error) {
	amenities, err := json.Marshal(nonNil(h.Amenities))
	if err != nil {
		return nil, fmt.Errorf("marshal amenities: %w", err)
	}
	images, err := json.Marshal(nonNil(h.Images))
	if err != nil {
		return nil, fmt.Errorf("marshal images: %w", err)
	}
	return map[string]string{
		"id":              h.ID,
		"name":            h.Name,
		"location":        h.Location,
		"rating":          strconv.FormatFloat(h.Rating, 'f', -1, 64),
		"star_rating":     strconv.Itoa(h.StarRating),
		"price_per_night": strconv.FormatFloat(h.PricePerNight, 'f', -1, 64),
		"available_rooms": strconv.Itoa(h.AvailableRooms),
		"amenities_json":  string(amenities),
		"images_json":     string(images),
		"description":     h.Description,
		"address":         h.Address,
		"phone":           h.Phone,
		"check_in_time":   h.CheckInTime,
		"check_out_time":  h.CheckOutTime,
		"status":          string(h.Status),
		"created_at":      strconv.FormatInt(createdAt, 10),
	}, nil
}

// hotelFromHash hydrates an overlay hotel from an HGETALL result map.
func hotelFromHash(m map[string]string) (hotel.Hotel, error) {
	price, err := strconv.ParseFloat(m["price_per_night"], 64)
	if err != nil {
		return hotel.Hotel{}, fmt.Errorf("invalid price_per_night: %w", err)
	}
	rating, _ := strconv.ParseFloat(m["rating"], 64)
	stars, _ := strconv.Atoi(m["star_rating"])
	rooms, _ := strconv.Atoi(m["available_rooms"])

	var amenities, images []string
	if s := m["amenities_json"]; s != "" {
		if err := json.Unmarshal([]byte(s), &amenities); err != nil {
			return hotel.Hotel{}, fmt.Errorf("unmarshal amenities: %w", err)
		}
	}
	if s := m["images_json"]; s != "" {
		if err := json.Unmarshal([]byte(s), &images); err != nil {
			return hotel.Hotel{}, fmt.Errorf("unmarshal images: %w", err)
		}
	}

	return hotel.Hotel{
		ID:             m["id"],
		Name:           m["name"],
		Location:       m["location"],
		Rating:         rating,
		StarRating:     stars,
		PricePerNight:  price,
		AvailableRooms: rooms,
		Amenities:      amenities,
		Images:         images,
		Description:    m["description"],
		Address:        m["address"],
		Phone:          m["phone"],
		CheckInTime:    m["check_in_time"],
		CheckOutTime:   m["check_out_time"],
		Status:         hotel.Status(m["status"]),
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func createdAt(m map[string]string) int64 {
	n, _ := strconv.ParseInt(m["created_at"], 10, 64)
	return n
}

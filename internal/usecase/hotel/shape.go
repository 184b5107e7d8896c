package hotel

import (
	"math/rand/v2"

	domhotel "github.com/kailas-cloud/tripdex/internal/domain/hotel"
)

const (
	minReviews  = 100
	reviewRange = 1000
)

// View is the public representation of a hotel.
type View struct {
	ID             string   `json:"id"`
	LegacyID       string   `json:"_id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	Rating         float64  `json:"rating"`
	PricePerNight  float64  `json:"pricePerNight"`
	Amenities      []string `json:"amenities"`
	Description    string   `json:"description"`
	AvailableRooms int      `json:"availableRooms"`
	Status         string   `json:"status"`
	Price          float64  `json:"price"`
	Rooms          int      `json:"rooms"`
	StarRating     int      `json:"starRating"`
	Reviews        int      `json:"reviews"`
	Images         []string `json:"images"`
	Address        string   `json:"address"`
	Phone          string   `json:"phone"`
	CheckInTime    string   `json:"checkInTime"`
	CheckOutTime   string   `json:"checkOutTime"`
}

// RandomReviews draws review counts uniformly from [100, 1099].
type RandomReviews struct{}

// Reviews implements ReviewSource.
func (RandomReviews) Reviews() int { return minReviews + rand.IntN(reviewRange) }

// Shape projects a hotel into its public view.
func Shape(h *domhotel.Hotel, reviews ReviewSource) View {
	v := View{
		ID:             h.ID,
		LegacyID:       h.ID,
		Name:           h.Name,
		Location:       h.Location,
		Rating:         h.Rating,
		PricePerNight:  h.PricePerNight,
		Amenities:      nonNil(h.Amenities),
		Description:    h.Description,
		AvailableRooms: h.AvailableRooms,
		Status:         string(h.Status),
		StarRating:     h.StarRating,
		Reviews:        reviews.Reviews(),
		Images:         nonNil(h.Images),
		Address:        h.Address,
		Phone:          h.Phone,
		CheckInTime:    h.CheckInTime,
		CheckOutTime:   h.CheckOutTime,
	}
	applyAliases(&v)
	return v
}

// ShapeAll projects hotels in order. The result is never nil.
func ShapeAll(hotels []domhotel.Hotel, reviews ReviewSource) []View {
	out := make([]View, len(hotels))
	for i := range hotels {
		out[i] = Shape(&hotels[i], reviews)
	}
	return out
}

// applyAliases fills the legacy field names clients still read:
// price mirrors pricePerNight and rooms mirrors availableRooms.
func applyAliases(v *View) {
	v.Price = v.PricePerNight
	v.Rooms = v.AvailableRooms
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

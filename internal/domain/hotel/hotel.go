// Package hotel holds the hotel record and its search pipeline stages.
package hotel

// Status is the lifecycle state of a hotel.
type Status string

// Hotel statuses.
const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusMaintenance Status = "maintenance"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusMaintenance:
		return true
	default:
		return false
	}
}

// Hotel is a catalog-resident hotel record. StarRating is a classification
// carried as-is from the source data and may disagree with Rating.
type Hotel struct {
	ID             string
	Name           string
	Location       string
	Rating         float64
	StarRating     int
	PricePerNight  float64
	AvailableRooms int
	Amenities      []string
	Images         []string
	Description    string
	Address        string
	Phone          string
	CheckInTime    string
	CheckOutTime   string
	Status         Status
}

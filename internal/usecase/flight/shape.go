package flight

import domflight "github.com/kailas-cloud/tripdex/internal/domain/flight"

const (
	defaultAircraft = "Boeing 737"
	defaultTerminal = "Terminal 1"
)

// View is the public representation of a flight.
type View struct {
	ID             string  `json:"id"`
	LegacyID       string  `json:"_id"`
	Airline        string  `json:"airline"`
	FlightNumber   string  `json:"flightNumber"`
	From           string  `json:"from"`
	To             string  `json:"to"`
	Depart         string  `json:"depart"`
	Return         string  `json:"return"`
	Price          float64 `json:"price"`
	Duration       string  `json:"duration"`
	Stops          int     `json:"stops"`
	AvailableSeats int     `json:"availableSeats"`
	Status         string  `json:"status"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime"`
	Aircraft       string  `json:"aircraft"`
	Terminal       string  `json:"terminal"`
}

// Shape projects a flight into its public view.
func Shape(f *domflight.Flight) View {
	v := View{
		ID:             f.ID,
		LegacyID:       f.ID,
		Airline:        f.Airline,
		FlightNumber:   f.FlightNumber,
		From:           f.From,
		To:             f.To,
		Depart:         f.Depart,
		Return:         f.Return,
		Price:          f.Price,
		Duration:       f.Duration,
		Stops:          f.Stops,
		AvailableSeats: f.AvailableSeats,
		Status:         string(f.Status),
		Aircraft:       f.Aircraft,
		Terminal:       f.Terminal,
	}
	if v.Aircraft == "" {
		v.Aircraft = defaultAircraft
	}
	if v.Terminal == "" {
		v.Terminal = defaultTerminal
	}
	applyAliases(&v)
	return v
}

// ShapeAll projects flights in order. The result is never nil.
func ShapeAll(flights []domflight.Flight) []View {
	out := make([]View, len(flights))
	for i := range flights {
		out[i] = Shape(&flights[i])
	}
	return out
}

// applyAliases fills the legacy field names clients still read:
// departureTime mirrors depart and arrivalTime mirrors return.
func applyAliases(v *View) {
	v.DepartureTime = v.Depart
	v.ArrivalTime = v.Return
}

// Package catalog provides the read-only flight and hotel catalogs that back
// public search. Records are loaded once and handed out as copies.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/tripdex/internal/domain/flight"
	"github.com/kailas-cloud/tripdex/internal/domain/hotel"
)

const (
	flightsFileName = "flights.yaml"
	hotelsFileName  = "hotels.yaml"
)

//go:embed data/flights.yaml data/hotels.yaml
var embedded embed.FS

// Catalog is an immutable in-memory set of flights and hotels.
type Catalog struct {
	flights []flight.Flight
	hotels  []hotel.Hotel
}

// New builds a catalog from the given records. The slices are copied.
func New(flights []flight.Flight, hotels []hotel.Hotel) *Catalog {
	return &Catalog{
		flights: slices.Clone(flights),
		hotels:  cloneHotels(hotels),
	}
}

// Load reads flights.yaml and hotels.yaml from dir, or the bundled demo data
// when dir is empty.
func Load(dir string) (*Catalog, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, fmt.Errorf("open bundled catalog: %w", err)
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}
	return LoadFS(fsys)
}

// LoadFS reads both catalog files from fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	var ff flightsFile
	if err := decode(fsys, flightsFileName, &ff); err != nil {
		return nil, err
	}
	var hf hotelsFile
	if err := decode(fsys, hotelsFileName, &hf); err != nil {
		return nil, err
	}

	c := &Catalog{
		flights: make([]flight.Flight, 0, len(ff.Flights)),
		hotels:  make([]hotel.Hotel, 0, len(hf.Hotels)),
	}
	seen := make(map[string]struct{}, len(ff.Flights)+len(hf.Hotels))
	for i := range ff.Flights {
		f, err := ff.Flights[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", flightsFileName, err)
		}
		if _, dup := seen[f.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate id %s", flightsFileName, f.ID)
		}
		seen[f.ID] = struct{}{}
		c.flights = append(c.flights, f)
	}
	for i := range hf.Hotels {
		h, err := hf.Hotels[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", hotelsFileName, err)
		}
		if _, dup := seen[h.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate id %s", hotelsFileName, h.ID)
		}
		seen[h.ID] = struct{}{}
		c.hotels = append(c.hotels, h)
	}
	return c, nil
}

func decode(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// Flights returns a copy of all flights in catalog order.
func (c *Catalog) Flights() []flight.Flight {
	return slices.Clone(c.flights)
}

// Hotels returns a copy of all hotels in catalog order.
func (c *Catalog) Hotels() []hotel.Hotel {
	return cloneHotels(c.hotels)
}

// FlightCount returns the number of flights.
func (c *Catalog) FlightCount() int { return len(c.flights) }

// HotelCount returns the number of hotels.
func (c *Catalog) HotelCount() int { return len(c.hotels) }

func cloneHotels(in []hotel.Hotel) []hotel.Hotel {
	out := make([]hotel.Hotel, len(in))
	for i, h := range in {
		h.Amenities = slices.Clone(h.Amenities)
		h.Images = slices.Clone(h.Images)
		out[i] = h
	}
	return out
}

package main

import (
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	tripdex "github.com/kailas-cloud/tripdex/pkg/sdk"
)

// queryFlags maps command flags onto query-style search parameters.
type queryFlags struct {
	values  map[string]*string
	limit   int
	rawBody string
}

func newQueryFlags(cmd *cobra.Command, names map[string]string) *queryFlags {
	q := &queryFlags{values: make(map[string]*string, len(names))}
	for flag, usage := range names {
		q.values[flag] = cmd.Flags().String(flag, "", usage)
	}
	cmd.Flags().IntVar(&q.limit, "limit", 0, "maximum number of results (query mode)")
	cmd.Flags().StringVar(&q.rawBody, "body", "", "JSON search body; switches to body mode and ignores the other filters")
	return q
}

// query builds url.Values keyed by the API parameter names.
func (q *queryFlags) query(params map[string]string) url.Values {
	v := url.Values{}
	for flag, param := range params {
		if s := *q.values[flag]; s != "" {
			v.Set(param, s)
		}
	}
	if q.limit > 0 {
		v.Set("limit", strconv.Itoa(q.limit))
	}
	return v
}

var flightFlagUsage = map[string]string{
	"from":           "origin code or city",
	"to":             "destination code or city",
	"min-price":      "minimum price",
	"max-price":      "maximum price",
	"airline":        "comma separated airline names",
	"departure-time": "comma separated buckets: morning, afternoon, evening",
	"stops":          "nonstop, 1stop or a maximum stop count",
	"sort-by":        "price, duration, departure, arrival or airline",
}

var flightParams = map[string]string{
	"from":           "from",
	"to":             "to",
	"min-price":      "minPrice",
	"max-price":      "maxPrice",
	"airline":        "airline",
	"departure-time": "departureTime",
	"stops":          "stops",
	"sort-by":        "sortBy",
}

func newFlightsCmd(opts *rootOptions) *cobra.Command {
	var flags *queryFlags
	cmd := &cobra.Command{
		Use:   "flights",
		Short: "Search flights",
		Example: `  tripdexctl flights --from NYC --to LAX --sort-by duration --limit 5
  tripdexctl flights --body '{"from":"NYC","passengers":{"adults":2},"filters":{"stops":"nonstop"}}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, useBody, err := parseBody(flags.rawBody)
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			svc := c.Flights()
			if useBody {
				return opts.print(cmd.OutOrStdout(), svc.Search(cmd.Context(), body))
			}
			return opts.print(cmd.OutOrStdout(), svc.Filter(cmd.Context(), flags.query(flightParams)))
		},
	}
	flags = newQueryFlags(cmd, flightFlagUsage)
	return cmd
}

var hotelFlagUsage = map[string]string{
	"location":    "city, area or hotel name",
	"min-price":   "minimum price per night",
	"max-price":   "maximum price per night",
	"min-rating":  "minimum guest rating",
	"amenities":   "comma separated amenities, any one matches",
	"star-rating": "comma separated star classes",
	"sort-by":     "rating, price or name",
}

var hotelParams = map[string]string{
	"location":    "location",
	"min-price":   "minPrice",
	"max-price":   "maxPrice",
	"min-rating":  "minRating",
	"amenities":   "amenities",
	"star-rating": "starRating",
	"sort-by":     "sortBy",
}

func newHotelsCmd(opts *rootOptions) *cobra.Command {
	var flags *queryFlags
	cmd := &cobra.Command{
		Use:   "hotels",
		Short: "Search hotels",
		Example: `  tripdexctl hotels --location "New York" --min-rating 4 --sort-by price
  tripdexctl hotels --body '{"location":"Miami","guests":{"adults":3}}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, useBody, err := parseBody(flags.rawBody)
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			svc := c.Hotels()
			if useBody {
				return opts.print(cmd.OutOrStdout(), svc.Search(cmd.Context(), body))
			}
			return opts.print(cmd.OutOrStdout(), svc.Filter(cmd.Context(), flags.query(hotelParams)))
		},
	}
	flags = newQueryFlags(cmd, hotelFlagUsage)
	return cmd
}

type facetsOutput struct {
	Airlines        []string                `json:"airlines"`
	FlightLocations tripdex.FlightLocations `json:"flightLocations"`
	HotelLocations  []string                `json:"hotelLocations"`
	Amenities       []string                `json:"amenities"`
}

func newFacetsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "facets",
		Short: "List airlines, locations and amenities in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			return opts.print(cmd.OutOrStdout(), facetsOutput{
				Airlines:        c.Flights().Airlines(ctx),
				FlightLocations: c.Flights().Locations(ctx),
				HotelLocations:  c.Hotels().Locations(ctx),
				Amenities:       c.Hotels().Amenities(ctx),
			})
		},
	}
}

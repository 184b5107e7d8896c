package tripdex

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/tripdex/internal/domain/search/params"
	"github.com/kailas-cloud/tripdex/internal/repository/catalog"
	flightuc "github.com/kailas-cloud/tripdex/internal/usecase/flight"
	hoteluc "github.com/kailas-cloud/tripdex/internal/usecase/hotel"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Internal interfaces so tests can substitute the pipelines.
type flightUseCase interface {
	All(ctx context.Context) []flightuc.View
	Search(ctx context.Context, body params.Bag) []flightuc.View
	Filter(ctx context.Context, query params.Bag) []flightuc.View
	Airlines(ctx context.Context) []string
	Locations(ctx context.Context) flightuc.Locations
}

type hotelUseCase interface {
	All(ctx context.Context) []hoteluc.View
	Search(ctx context.Context, body params.Bag) []hoteluc.View
	Filter(ctx context.Context, query params.Bag) []hoteluc.View
	Locations(ctx context.Context) []string
	Amenities(ctx context.Context) []string
}

// Client is the tripdex SDK entry point. It is safe for concurrent use.
type Client struct {
	flightSvc flightUseCase
	hotelSvc  hotelUseCase
	obs       *observer
}

// New loads the catalog and builds a Client.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	cat, err := loadCatalog(cfg)
	obs.observe("catalog.load", start, err)
	if err != nil {
		return nil, err
	}

	return wireClient(cat, cfg, obs), nil
}

func loadCatalog(cfg *clientConfig) (*catalog.Catalog, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.catalogFS != nil {
		cat, err = catalog.LoadFS(cfg.catalogFS)
	} else {
		cat, err = catalog.Load(cfg.catalogDir)
	}
	if err != nil {
		return nil, fmt.Errorf("tripdex: load catalog: %w", err)
	}
	return cat, nil
}

func wireClient(cat *catalog.Catalog, cfg *clientConfig, obs *observer) *Client {
	var hotelOpts []hoteluc.Option
	if cfg.reviews != nil {
		hotelOpts = append(hotelOpts, hoteluc.WithReviewSource(fixedReviews(*cfg.reviews)))
	}

	return &Client{
		flightSvc: flightuc.New(cat, obs, flightuc.Limits{Default: cfg.defaultLimit, Max: cfg.maxLimit}),
		hotelSvc:  hoteluc.New(cat, obs, hoteluc.Limits{Default: cfg.defaultLimit, Max: cfg.maxLimit}, hotelOpts...),
		obs:       obs,
	}
}

// Flights returns the flight search service.
func (c *Client) Flights() *FlightService {
	return &FlightService{svc: c.flightSvc, obs: c.obs}
}

// Hotels returns the hotel search service.
func (c *Client) Hotels() *HotelService {
	return &HotelService{svc: c.hotelSvc, obs: c.obs}
}

type fixedReviews int

func (n fixedReviews) Reviews() int { return int(n) }

package tripdex

import (
	"io/fs"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	catalogDir string
	catalogFS  fs.FS

	defaultLimit int
	maxLimit     int

	reviews *int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithCatalogDir loads flights.yaml and hotels.yaml from dir instead of the
// bundled demo catalog.
func WithCatalogDir(dir string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalogDir = dir
	})
}

// WithCatalogFS loads flights.yaml and hotels.yaml from fsys. Takes precedence
// over WithCatalogDir.
func WithCatalogFS(fsys fs.FS) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalogFS = fsys
	})
}

// WithLimits sets the result size used by Filter when no limit is requested,
// and the cap applied to requested limits. Defaults: 50 and 200.
func WithLimits(defaultLimit, maxLimit int) Option {
	return optionFunc(func(c *clientConfig) {
		c.defaultLimit = defaultLimit
		c.maxLimit = maxLimit
	})
}

// WithFixedReviews reports n reviews on every hotel instead of a random count.
func WithFixedReviews(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.reviews = &n
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts, durations and
// search result sizes) on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}

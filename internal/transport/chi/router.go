package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/tripdex/internal/metrics"
)

// RouterConfig holds the cross-cutting settings of the HTTP router.
type RouterConfig struct {
	AdminAPIKeys   []string
	BookingLimiter *RateLimiter // nil disables booking rate limiting
	Logger         *zap.Logger
}

// NewRouter mounts the API on a chi router with recovery, request ids,
// wide-event logging and HTTP metrics.
func NewRouter(s *Server, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(JSONRecoverer(logger))
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.RequestID)
	r.Use(WideEvent(logger))
	r.Use(metrics.Middleware())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", s.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/flights", func(r chi.Router) {
			r.Get("/", s.ListFlights)
			r.Post("/search", s.SearchFlights)
			r.Get("/filter", s.FilterFlights)
			r.Get("/airlines", s.FlightAirlines)
			r.Get("/locations", s.FlightLocations)
		})

		r.Route("/hotels", func(r chi.Router) {
			r.Get("/", s.ListHotels)
			r.Post("/search", s.SearchHotels)
			r.Get("/filter", s.FilterHotels)
			r.Get("/locations", s.HotelLocations)
			r.Get("/amenities", s.HotelAmenities)
		})

		r.Route("/search-history", func(r chi.Router) {
			r.Post("/", s.SaveSearchHistory)
			r.Get("/flights", s.FlightSearchHistory)
			r.Get("/hotels", s.HotelSearchHistory)
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if cfg.BookingLimiter != nil {
					r.Use(cfg.BookingLimiter.Middleware)
				}
				r.Post("/flight", s.BookFlight)
				r.Post("/hotel", s.BookHotel)
			})
			r.Get("/", s.ListBookings)
			r.Get("/{reference}", s.GetBooking)
			r.Put("/{reference}/cancel", s.CancelBooking)
		})

		r.Get("/dashboard/stats", s.DashboardStats)

		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminAPIKeys))
			r.Get("/flights", s.AdminListFlights)
			r.Post("/flights", s.AdminCreateFlight)
			r.Get("/hotels", s.AdminListHotels)
			r.Post("/hotels", s.AdminCreateHotel)
			r.Get("/bookings", s.AdminListBookings)
			r.Get("/stats", s.AdminStats)
		})
	})

	return r
}

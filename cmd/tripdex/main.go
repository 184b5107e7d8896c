package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kailas-cloud/tripdex/internal/config"
	"github.com/kailas-cloud/tripdex/internal/db"
	"github.com/kailas-cloud/tripdex/internal/db/memory"
	dbRedis "github.com/kailas-cloud/tripdex/internal/db/redis"
	logpkg "github.com/kailas-cloud/tripdex/internal/logger"
	"github.com/kailas-cloud/tripdex/internal/metrics"
	bookingrepo "github.com/kailas-cloud/tripdex/internal/repository/booking"
	"github.com/kailas-cloud/tripdex/internal/repository/catalog"
	"github.com/kailas-cloud/tripdex/internal/repository/counter"
	historyrepo "github.com/kailas-cloud/tripdex/internal/repository/history"
	overlayrepo "github.com/kailas-cloud/tripdex/internal/repository/overlay"
	chiTransport "github.com/kailas-cloud/tripdex/internal/transport/chi"
	adminuc "github.com/kailas-cloud/tripdex/internal/usecase/admin"
	bookinguc "github.com/kailas-cloud/tripdex/internal/usecase/booking"
	dashboarduc "github.com/kailas-cloud/tripdex/internal/usecase/dashboard"
	flightuc "github.com/kailas-cloud/tripdex/internal/usecase/flight"
	healthuc "github.com/kailas-cloud/tripdex/internal/usecase/health"
	historyuc "github.com/kailas-cloud/tripdex/internal/usecase/history"
	hoteluc "github.com/kailas-cloud/tripdex/internal/usecase/hotel"
	"github.com/kailas-cloud/tripdex/internal/version"
)

// dailyCounterTTL keeps yesterday's bucket readable across the day boundary.
const dailyCounterTTL = 48 * time.Hour

func main() {
	// A missing .env is fine; the environment and config defaults still apply.
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting tripdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := openStore(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	metrics.RegisterDomainMetrics()

	cat, err := catalog.Load(cfg.Catalog.Dir)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.String("dir", cfg.Catalog.Dir), zap.Error(err))
	}
	logger.Info("Catalog loaded",
		zap.Int("flights", cat.FlightCount()),
		zap.Int("hotels", cat.HotelCount()),
	)

	// Repositories
	prefix := cfg.Database.KeyPrefix
	daily := counter.NewDaily(store, prefix, dailyCounterTTL)
	histRepo := historyrepo.New(store, prefix)
	bookRepo := bookingrepo.New(store, prefix)
	overlayRepo := overlayrepo.New(store, prefix)

	// Use case services
	tracker := dashboarduc.NewTracker(daily)
	flightSvc := flightuc.New(cat, tracker, flightuc.Limits{
		Default: cfg.Search.DefaultLimit,
		Max:     cfg.Search.MaxLimit,
	})
	hotelSvc := hoteluc.New(cat, tracker, hoteluc.Limits{
		Default: cfg.Search.DefaultLimit,
		Max:     cfg.Search.MaxLimit,
	})
	historySvc := historyuc.New(histRepo, cfg.Search.HistoryLimit, logger)
	bookingSvc := bookinguc.New(bookRepo, cfg.Bookings.ListLimit)
	adminSvc := adminuc.New(overlayRepo, cat, bookRepo)
	dashboardSvc := dashboarduc.New(cat, daily)
	healthSvc := healthuc.New(store, cat)

	server := chiTransport.NewServer(
		flightSvc, hotelSvc, historySvc, bookingSvc, adminSvc, dashboardSvc, healthSvc, logger,
	)

	if len(cfg.Auth.AdminAPIKeys) == 0 {
		logger.Warn("No admin API keys configured, admin routes are disabled")
	}
	handler := chiTransport.NewRouter(server, chiTransport.RouterConfig{
		AdminAPIKeys:   cfg.Auth.AdminAPIKeys,
		BookingLimiter: chiTransport.NewRateLimiter(cfg.Bookings.RatePerMinute, cfg.Bookings.Burst),
		Logger:         logger,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// openStore creates the store for the configured driver. Redis and Valkey
// share the rueidis-backed store.
func openStore(cfg config.DatabaseConfig) (db.Store, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		s, err := memory.NewStore()
		if err != nil {
			return nil, fmt.Errorf("open memory store: %w", err)
		}
		return s, nil
	case config.DriverRedis, config.DriverValkey:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
		if err != nil {
			return nil, fmt.Errorf("open %s store: %w", cfg.Driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

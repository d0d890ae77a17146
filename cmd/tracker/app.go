package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/bootstrap"
	commoncrypto "github.com/AlibekovAA/exercise-tracker/backend/internal/common/crypto"
	commonhttp "github.com/AlibekovAA/exercise-tracker/backend/internal/common/http"
	trackerhttp "github.com/AlibekovAA/exercise-tracker/backend/internal/tracker/http"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/tracker/service"
)

// buildHandler wires the tracker service, its routes, /metrics and the base
// middleware. The caller owns the returned limiter and must Stop it.
func buildHandler(app *bootstrap.TrackerApp) (http.Handler, *commonhttp.RateLimiter) {
	cfg := app.Config

	trackerService := service.NewTrackerService(
		service.TrackerServiceDeps{
			Users:       app.Stores.Users,
			Exercises:   app.Stores.Exercises,
			IDGenerator: commoncrypto.NewUUIDGenerator(),
			Log:         app.Log,
		},
		service.TrackerServiceConfig{
			CircuitBreakerThreshold: cfg.CircuitBreakerThreshold,
			CircuitBreakerTimeout:   cfg.CircuitBreakerTimeout,
			CircuitBreakerReset:     cfg.CircuitBreakerReset,
		},
	)

	mux := trackerhttp.NewHandler(trackerService, cfg, app.Log)
	mux.Handle("/metrics", promhttp.Handler())

	rateLimiter := commonhttp.NewRateLimiter(cfg.RateLimitRequestsPerSecond, cfg.RateLimitBurst)
	handler := commonhttp.BuildBaseHandler(app.Log, commonhttp.BaseOptions{
		AllowedOrigin:  cfg.CORSAllowedOrigin,
		RateLimiter:    rateLimiter,
		RateLimitPaths: []string{"/api/"},
	}, mux)

	return handler, rateLimiter
}

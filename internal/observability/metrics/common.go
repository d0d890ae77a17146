package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RateLimitBlocked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_blocked_total",
			Help: "Total number of requests blocked by rate limiter",
		},
		[]string{"path"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_failures_total",
			Help: "Total number of circuit breaker failures",
		},
		[]string{"name"},
	)

	DomainErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "domain_errors_total",
			Help: "Total number of domain errors by category and code",
		},
		[]string{"category", "code", "status"},
	)

	HTTPErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_errors_total",
			Help: "Total number of HTTP errors by status code",
		},
		[]string{"status", "path", "method"},
	)

	CORSPreflightTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cors_preflight_requests_total",
			Help: "Total number of answered CORS preflight requests",
		},
	)
)

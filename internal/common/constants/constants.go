package constants

import "time"

const (
	DefaultMaxRequestSize = 1 << 20

	DisplayDateLayout = "Mon Jan 02 2006"

	RateLimitCleanupInterval          = 1 * time.Minute
	RateLimitGeneralRequestsPerSecond = 20
	RateLimitGeneralBurst             = 40

	DBPoolMaxOpenConns    = 25
	DBPoolMinOpenConns    = 2
	DBPoolConnMaxLifetime = time.Hour
	DBPoolConnMaxIdleTime = 30 * time.Minute
	DBPoolHealthCheck     = 1 * time.Minute
	DBPoolConnectTimeout  = 5 * time.Second
	DBPoolMaxAttempts     = 10
	DBPoolRetryDelay      = 1 * time.Second
	DBPoolMetricsInterval = 30 * time.Second

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	ShutdownTimeout = 30 * time.Second
	DrainTimeout    = 10 * time.Second

	DefaultTrackerHTTPPort       = "3000"
	DefaultTrackerRequestTimeout = 5 * time.Second

	DefaultCircuitBreakerThreshold = 50
	DefaultCircuitBreakerTimeout   = 10 * time.Second
	DefaultCircuitBreakerReset     = 10 * time.Second

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28
)

type TraceIDKeyType string

const TraceIDKey TraceIDKeyType = "trace_id"

package http

import (
	"net/http"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/constants"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/httpmetrics"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/logger"
)

type BaseOptions struct {
	AllowedOrigin  string
	MaxRequestSize int64
	RateLimiter    *RateLimiter
	RateLimitPaths []string
}

func BuildBaseHandler(log *logger.Logger, opts BaseOptions, handler http.Handler) http.Handler {
	if opts.MaxRequestSize <= 0 {
		opts.MaxRequestSize = constants.DefaultMaxRequestSize
	}

	metrics := httpmetrics.New("/health", "/metrics")
	recovery := RecoveryMiddleware(log)
	maxRequestSize := MaxRequestSizeMiddleware(opts.MaxRequestSize)
	cors := CORSMiddleware(opts.AllowedOrigin)
	csp := ContentSecurityPolicyMiddleware("")

	inner := maxRequestSize(metrics.Wrap(handler))
	if opts.RateLimiter != nil {
		inner = opts.RateLimiter.Middleware(opts.RateLimitPaths...)(inner)
	}

	return SecurityHeadersMiddleware(csp(cors(TraceIDMiddleware(recovery(inner)))))
}

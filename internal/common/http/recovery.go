package http

import (
	"net/http"
	"runtime/debug"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/logger"
)

func RecoveryMiddleware(log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(r.Context(), logger.Fields{
						"method": r.Method,
						"path":   r.URL.Path,
						"action": "panic_recovered",
					}).Errorf("panic recovered: %v\n%s", err, debug.Stack())
					WriteErrorEnvelope(w, http.StatusInternalServerError, CodeUnknown, "internal server error", nil, TraceIDFromContext(r.Context()))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

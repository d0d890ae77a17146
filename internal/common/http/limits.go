package http

import (
	"net/http"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/constants"
)

// MaxRequestSizeMiddleware rejects bodies above maxBytes up front and caps the
// reader for chunked bodies whose length is unknown.
func MaxRequestSizeMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = constants.DefaultMaxRequestSize
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				WriteErrorEnvelope(w, http.StatusRequestEntityTooLarge, CodeBodyTooLarge, "request body too large", nil, TraceIDFromContext(r.Context()))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

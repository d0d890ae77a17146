package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/constants"
)

const traceIDHeader = "X-Trace-ID"

func TraceIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > 64 {
			traceID = generateTraceID()
		}

		w.Header().Set(traceIDHeader, traceID)

		ctx := context.WithValue(r.Context(), constants.TraceIDKey, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	traceID, _ := ctx.Value(constants.TraceIDKey).(string)
	return traceID
}

func generateTraceID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

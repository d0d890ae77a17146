package httpmetrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/observability/metrics"
)

type Collector struct {
	skip map[string]struct{}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// New returns a collector that records every request except the given paths.
func New(skipPaths ...string) *Collector {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}
	return &Collector{skip: skip}
}

func (c *Collector) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := c.skip[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		method := r.Method
		path := NormalizePath(r.URL.Path)

		metrics.TrackerRequestsTotal.WithLabelValues(method, path).Inc()
		metrics.TrackerRequestsInFlight.Inc()
		defer metrics.TrackerRequestsInFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		statusClass := fmt.Sprintf("%dxx", rec.status/100)
		metrics.TrackerRequestDurationSeconds.WithLabelValues(method, path, statusClass).Observe(time.Since(start).Seconds())
	})
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TrackerRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_requests_total",
			Help: "Total number of exercise tracker requests",
		},
		[]string{"method", "path"},
	)

	TrackerRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracker_requests_in_flight",
			Help: "Number of exercise tracker requests currently being processed",
		},
	)

	TrackerRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tracker_request_duration_seconds",
			Help:    "Duration of exercise tracker requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	UsersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_users_created_total",
			Help: "Total number of users created",
		},
	)

	ExercisesAddedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tracker_exercises_added_total",
			Help: "Total number of exercises logged",
		},
	)

	LogQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracker_log_queries_total",
			Help: "Total number of exercise log queries by applied filters",
		},
		[]string{"filtered"},
	)

	LogEntriesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tracker_log_entries_returned",
			Help:    "Number of entries returned per exercise log query",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		},
	)
)

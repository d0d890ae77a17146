package service

import (
	"strconv"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/observability/metrics"
)

func incrementUsersCreated() {
	metrics.UsersCreatedTotal.Inc()
}

func incrementExercisesAdded() {
	metrics.ExercisesAddedTotal.Inc()
}

func observeLogQuery(filtered bool, entries int) {
	metrics.LogQueriesTotal.WithLabelValues(strconv.FormatBool(filtered)).Inc()
	metrics.LogEntriesReturned.Observe(float64(entries))
}

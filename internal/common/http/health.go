package http

import (
	"net/http"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/logger"
)

func HealthHandler(log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			WriteErrorEnvelope(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "method not allowed", nil, "")
			return
		}
		log.Debugf("health check request")
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

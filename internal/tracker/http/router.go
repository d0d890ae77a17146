package http

import (
	"net/http"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/config"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/constants"
	commonhttp "github.com/AlibekovAA/exercise-tracker/backend/internal/common/http"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/logger"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/tracker/service"
)

type Handler struct {
	tracker *service.TrackerService
	log     *logger.Logger
}

func NewHandler(tracker *service.TrackerService, cfg config.TrackerConfig, log *logger.Logger) *http.ServeMux {
	h := &Handler{tracker: tracker, log: log}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultTrackerRequestTimeout
	}
	withTimeout := commonhttp.WithTimeout(timeout)

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.landing)
	mux.Handle("/public/", staticHandler())
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.HandleFunc("/api/users", commonhttp.RequireMethod(http.MethodGet, http.MethodPost)(withTimeout(h.users)))
	mux.HandleFunc("/api/users/{id}/exercises", commonhttp.RequireMethod(http.MethodPost)(withTimeout(h.addExercise)))
	mux.HandleFunc("/api/users/{id}/logs", commonhttp.RequireMethod(http.MethodGet)(withTimeout(h.getLog)))

	return mux
}

func (h *Handler) users(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		h.createUser(w, r)
		return
	}
	h.listUsers(w, r)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeDecodeError(w, r, err)
		return
	}

	ctx := r.Context()
	user, err := h.tracker.CreateUser(ctx, service.CreateUserInput{Username: req.Username.String()})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, newUserResponse(user))
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	users, err := h.tracker.ListUsers(ctx)
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, newUserResponse(u))
	}

	h.log.WithFields(ctx, logger.Fields{
		"results": len(resp),
		"action":  "list_users_success",
	}).Debug("list users success")
	commonhttp.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) addExercise(w http.ResponseWriter, r *http.Request) {
	var req addExerciseRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeDecodeError(w, r, err)
		return
	}

	result, err := h.tracker.AddExercise(r.Context(), service.AddExerciseInput{
		UserID:      r.PathValue("id"),
		Description: req.Description.String(),
		Duration:    req.Duration.String(),
		Date:        req.Date.String(),
	})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, newExerciseResponse(result))
}

func (h *Handler) getLog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ctx := r.Context()

	result, err := h.tracker.GetLog(ctx, service.LogQuery{
		UserID: r.PathValue("id"),
		From:   q.Get("from"),
		To:     q.Get("to"),
		Limit:  q.Get("limit"),
	})
	if err != nil {
		commonhttp.HandleError(w, r, err, h.log)
		return
	}

	h.log.WithFields(ctx, logger.Fields{
		"user_id": string(result.User.ID),
		"count":   result.Count(),
		"action":  "get_log_success",
	}).Debug("get log success")
	commonhttp.WriteJSON(w, http.StatusOK, newLogResponse(result))
}

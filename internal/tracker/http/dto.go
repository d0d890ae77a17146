package http

import (
	"net/url"

	exercisedomain "github.com/AlibekovAA/exercise-tracker/backend/internal/exercise/domain"
	"github.com/AlibekovAA/exercise-tracker/backend/internal/tracker/service"
	userdomain "github.com/AlibekovAA/exercise-tracker/backend/internal/user/domain"
)

type createUserRequest struct {
	Username formValue `json:"username"`
}

func (req *createUserRequest) bindForm(values url.Values) {
	req.Username = formValue(values.Get("username"))
}

type addExerciseRequest struct {
	Description formValue `json:"description"`
	Duration    formValue `json:"duration"`
	Date        formValue `json:"date"`
}

func (req *addExerciseRequest) bindForm(values url.Values) {
	req.Description = formValue(values.Get("description"))
	req.Duration = formValue(values.Get("duration"))
	req.Date = formValue(values.Get("date"))
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type exerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
	Date        string `json:"date"`
}

type logEntryResponse struct {
	Description string `json:"description"`
	Duration    int64  `json:"duration"`
	Date        string `json:"date"`
}

type logResponse struct {
	ID       string             `json:"id"`
	Username string             `json:"username"`
	Count    int                `json:"count"`
	Log      []logEntryResponse `json:"log"`
}

func newUserResponse(u userdomain.User) userResponse {
	return userResponse{ID: string(u.ID), Username: u.Username}
}

func newExerciseResponse(r service.ExerciseResult) exerciseResponse {
	return exerciseResponse{
		ID:          string(r.User.ID),
		Username:    r.User.Username,
		Description: r.Exercise.Description,
		Duration:    r.Exercise.Duration,
		Date:        exercisedomain.FormatDate(r.Exercise.Date),
	}
}

func newLogResponse(r service.LogResult) logResponse {
	entries := make([]logEntryResponse, 0, len(r.Exercises))
	for _, e := range r.Exercises {
		entries = append(entries, logEntryResponse{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        exercisedomain.FormatDate(e.Date),
		})
	}
	return logResponse{
		ID:       string(r.User.ID),
		Username: r.User.Username,
		Count:    len(entries),
		Log:      entries,
	}
}

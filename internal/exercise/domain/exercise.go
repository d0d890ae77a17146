package domain

import (
	"time"

	userdomain "github.com/AlibekovAA/exercise-tracker/backend/internal/user/domain"
)

type ID string

// Exercise is one logged activity owned by a single user.
type Exercise struct {
	ID          ID
	UserID      userdomain.ID
	Description string
	Duration    int64
	Date        time.Time
}

// Filter narrows a user's exercise log. A nil bound or zero Limit disables
// that part of the filter.
type Filter struct {
	UserID userdomain.ID
	From   *time.Time
	To     *time.Time
	Limit  int
}

func (f Filter) HasDateRange() bool {
	return f.From != nil || f.To != nil
}

// Matches reports whether e belongs to the filtered user and falls inside the
// inclusive [From, To] range.
func (f Filter) Matches(e Exercise) bool {
	if e.UserID != f.UserID {
		return false
	}
	if f.From != nil && e.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && e.Date.After(*f.To) {
		return false
	}
	return true
}

// Apply filters exercises in their existing order: user, from, to, then
// truncation to Limit.
func (f Filter) Apply(exercises []Exercise) []Exercise {
	result := make([]Exercise, 0)
	for _, e := range exercises {
		if !f.Matches(e) {
			continue
		}
		result = append(result, e)
		if f.Limit > 0 && len(result) == f.Limit {
			break
		}
	}
	return result
}

package repository

import (
	"strconv"
	"strings"
	"time"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/exercise/domain"
)

const selectExercises = `SELECT id, user_id, description, duration, date FROM exercises`

// buildLogQuery renders the filtered log query for a driver. placeholder
// returns the bind marker for the n-th argument, dateArg converts a bound date
// into the driver's column representation.
func buildLogQuery(filter domain.Filter, placeholder func(n int) string, dateArg func(time.Time) any) (string, []any) {
	var b strings.Builder
	b.WriteString(selectExercises)

	args := []any{string(filter.UserID)}
	b.WriteString(" WHERE user_id = ")
	b.WriteString(placeholder(len(args)))

	if filter.From != nil {
		args = append(args, dateArg(*filter.From))
		b.WriteString(" AND date >= ")
		b.WriteString(placeholder(len(args)))
	}
	if filter.To != nil {
		args = append(args, dateArg(*filter.To))
		b.WriteString(" AND date <= ")
		b.WriteString(placeholder(len(args)))
	}

	b.WriteString(" ORDER BY seq ASC")

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		b.WriteString(" LIMIT ")
		b.WriteString(placeholder(len(args)))
	}

	return b.String(), args
}

func dollarPlaceholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func questionPlaceholder(int) string {
	return "?"
}

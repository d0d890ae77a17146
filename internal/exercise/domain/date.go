package domain

import (
	"strings"
	"time"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/constants"
)

// dateLayouts are tried in order. Date-only forms resolve to midnight UTC.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"2006-1-2",
	constants.DisplayDateLayout,
	"Mon Jan 2 2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	time.RFC1123,
	time.RFC1123Z,
}

// ParseDate accepts ISO dates and timestamps plus a handful of
// human-readable calendar forms.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// FormatDate renders t as a calendar string such as "Mon Jan 01 2024".
func FormatDate(t time.Time) string {
	return t.UTC().Format(constants.DisplayDateLayout)
}

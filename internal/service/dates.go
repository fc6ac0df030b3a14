package service

import (
	"time"

	errorvalues "github.com/limbo/leetsquad/internal/error_values"
)

const dateLayout = "2006-01-02"

// Today returns the current UTC calendar day. All day boundaries in the
// system derive from this rule.
func Today() string {
	return time.Now().UTC().Format(dateLayout)
}

func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, errorvalues.ErrBadDateFormat
	}
	// Reject non-canonical spellings like 2024-1-5 that still parse
	if t.Format(dateLayout) != date {
		return time.Time{}, errorvalues.ErrBadDateFormat
	}
	return t, nil
}

// WeekStartOf returns the most recent Sunday on or before date. Weeks start
// on Sunday and run through "now", matching the day-index-0 rule the clients
// rely on, not a trailing 7-day window.
func WeekStartOf(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -int(t.Weekday())).Format(dateLayout), nil
}

// DaysBefore returns the day n days before date.
func DaysBefore(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, -n).Format(dateLayout), nil
}

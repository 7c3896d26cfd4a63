package utils

import (
	"afiatrack-service/internal/pkg/constvars"
	"time"
)

// ParseDate parses RFC 3339 timestamps and plain YYYY-MM-DD dates, the two
// shapes clients send for appointment, medication and reading dates.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, value)
}

// ParseClock splits an "HH:MM" string into hour and minute.
func ParseClock(value string) (hour, minute int, err error) {
	t, err := time.Parse(constvars.ReminderTimeLayout, value)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

package util

import "time"

// DateLayout is the calendar-day format accepted and emitted by the API.
const DateLayout = "2006-01-02"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC normalizes t to midnight of its UTC calendar day.
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDateUTC parses a YYYY-MM-DD string as midnight UTC.
func ParseDateUTC(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}

package utils

import "time"

// DateLayout is the wire format for practice dates (ISO calendar date).
const DateLayout = "2006-01-02"

// DayStartLocal truncates t to local midnight. Shot records are keyed by
// day, so every date is normalized through here before storage or lookup.
func DayStartLocal(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

// Today returns local midnight of the current day.
func Today() time.Time {
	return DayStartLocal(time.Now())
}

// ParseDate parses a YYYY-MM-DD string into local midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	return DayStartLocal(t), nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(DateLayout)
}

package utils

import (
	"strings"
	"time"
)

const (
	layoutDate        = "2006-01-02"
	layoutCompactDate = "20060102"
	layoutHourMinute  = "15:04"
	layoutDateShort   = "02/01/2006"
)

// ParseDate parses YYYY-MM-DD in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), loc)
}

// StartOfDay truncates t to 00:00 in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatDate formats time to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(layoutDate)
}

// FormatCompactDate formats time to YYYYMMDD.
func FormatCompactDate(t time.Time) string {
	return t.Format(layoutCompactDate)
}

// FormatHourMinute formats time to HH:MM (24h).
func FormatHourMinute(t time.Time) string {
	return t.Format(layoutHourMinute)
}

// FormatDateShort turns YYYY-MM-DD into DD/MM/YYYY, leaving unparsable input as is.
func FormatDateShort(s string) string {
	t, err := ParseDate(s, time.UTC)
	if err != nil {
		return s
	}
	return t.Format(layoutDateShort)
}

package types

import (
	"strings"
	"time"
)

// DateLayout is the day/month/year form used by imported files.
const DateLayout = "2/1/2006"

// DateOf returns midnight UTC of the calendar date of t.
//
// Transaction dates are calendar dates, the location of t is only used
// to determine which date that is.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// DayLabel formats the calendar date of t as D/M without padding, e.g. "4/3".
func DayLabel(t time.Time) string {
	return t.Format("2/1")
}

// ParseDate parses a day/month/year string such as "05/01/2024" or "5/1/2024".
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

package daterange

import (
	"errors"
	"fmt"
	"time"
)

// Names maps each range code to the period name used in report titles.
var Names = map[string]string{
	"d": "daily",
	"w": "weekly",
	"m": "monthly",
	"y": "yearly",
}

// ErrInvalidRange is returned for a range code outside d/w/m/y. It is
// reported before any query executes.
var ErrInvalidRange = errors.New("invalid date range")

// Resolve turns a symbolic range code into concrete start and end dates,
// evaluated against the current local date.
func Resolve(code string) (time.Time, time.Time, error) {
	return ResolveAt(code, time.Now())
}

// ResolveAt is Resolve anchored to an explicit moment, for tests and
// callers replaying historical ranges.
//
//	d: today .. today
//	w: Monday of the current ISO week .. the following Sunday
//	m: first .. last calendar day of the current month
//	y: January 1 .. today (year-to-date)
func ResolveAt(code string, now time.Time) (time.Time, time.Time, error) {
	today := truncate(now)

	switch code {
	case "d":
		return today, today, nil
	case "w":
		// time.Weekday counts Sunday as 0; shift so Monday is 0.
		offset := (int(today.Weekday()) + 6) % 7
		start := today.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6), nil
	case "m":
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		// Step to day 28, advance 4 days into the next month, then walk
		// back to its last day. Safe across leap years.
		next := time.Date(today.Year(), today.Month(), 28, 0, 0, 0, 0, today.Location()).AddDate(0, 0, 4)
		end := next.AddDate(0, 0, -next.Day())
		return start, end, nil
	case "y":
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return start, today, nil
	}

	return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidRange, code)
}

// ParseDate parses an explicit YYYY-MM-DD date in local time.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// Format renders a date the way queries and file names expect it.
func Format(t time.Time) string {
	return t.Format("2006-01-02")
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

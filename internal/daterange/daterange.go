// Package daterange canonicalizes calendar-day windows. Dates are treated as
// timezone-naive: a time's own wall-clock date is kept and moved to midnight
// UTC so that whole-day arithmetic never crosses a DST boundary.
package daterange

import (
	"fmt"
	"time"
)

// Layout is the canonical calendar-date format.
const Layout = "2006-01-02"

// Day strips the time of day from t.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Key returns the canonical day key for t.
func Key(t time.Time) string {
	return Day(t).Format(Layout)
}

// Parse reads a canonical date string.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// DaysBetween returns the whole-day difference b - a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// Range is an inclusive, ordered window of calendar days.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Normalize truncates both bounds to calendar days and swaps them when to
// precedes from. It never fails.
func Normalize(from, to time.Time) Range {
	start, end := Day(from), Day(to)
	if end.Before(start) {
		start, end = end, start
	}
	return Range{Start: start, End: end}
}

// Last returns the window of n days ending on (and including) day.
func Last(n int, day time.Time) Range {
	if n < 1 {
		n = 1
	}
	end := Day(day)
	return Range{Start: end.AddDate(0, 0, -(n - 1)), End: end}
}

// Contains reports whether t's calendar date falls inside the window.
func (r Range) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Len is the number of days in the window, both ends included.
func (r Range) Len() int {
	return DaysBetween(r.Start, r.End) + 1
}

// Days lists every day of the window in ascending order.
func (r Range) Days() []time.Time {
	out := make([]time.Time, 0, r.Len())
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.Start.Format(Layout), r.End.Format(Layout))
}

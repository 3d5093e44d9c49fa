// Package streak derives consecutive-day statistics from a set of entry dates.
package streak

import (
	"sort"
	"time"

	"github.com/ramanasai/journal/internal/daterange"
)

// Run is a maximal stretch of consecutive days that all have an entry.
type Run struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Length int       `json:"length"`
}

// Calculator answers streak questions over a fixed set of distinct days.
// It is immutable and safe for concurrent use.
type Calculator struct {
	days   []time.Time // ascending, distinct
	lookup map[string]struct{}
}

// New collapses dates onto distinct calendar days.
func New(dates []time.Time) *Calculator {
	c := &Calculator{lookup: make(map[string]struct{}, len(dates))}
	for _, d := range dates {
		key := daterange.Key(d)
		if _, ok := c.lookup[key]; ok {
			continue
		}
		c.lookup[key] = struct{}{}
		c.days = append(c.days, daterange.Day(d))
	}
	sort.Slice(c.days, func(i, j int) bool { return c.days[i].Before(c.days[j]) })
	return c
}

// Has reports whether day has an entry.
func (c *Calculator) Has(day time.Time) bool {
	_, ok := c.lookup[daterange.Key(day)]
	return ok
}

// Days returns the distinct days in ascending order.
func (c *Calculator) Days() []time.Time {
	return append([]time.Time(nil), c.days...)
}

// Current counts consecutive days ending on today. A missing entry today
// yields zero.
func (c *Calculator) Current(today time.Time) int {
	return len(c.CurrentDates(today))
}

// CurrentDates lists the days of the current streak, today first.
func (c *Calculator) CurrentDates(today time.Time) []time.Time {
	out := []time.Time{}
	for day := daterange.Day(today); c.Has(day); day = day.AddDate(0, 0, -1) {
		out = append(out, day)
	}
	return out
}

// Runs returns every maximal run in ascending order.
func (c *Calculator) Runs() []Run {
	if len(c.days) == 0 {
		return []Run{}
	}
	var runs []Run
	start, prev := c.days[0], c.days[0]
	for _, d := range c.days[1:] {
		if daterange.DaysBetween(prev, d) == 1 {
			prev = d
			continue
		}
		runs = append(runs, newRun(start, prev))
		start, prev = d, d
	}
	return append(runs, newRun(start, prev))
}

// Longest is the length of the longest run, zero without entries.
func (c *Calculator) Longest() int {
	longest := 0
	for _, r := range c.Runs() {
		if r.Length > longest {
			longest = r.Length
		}
	}
	return longest
}

// LongestRanges returns every run whose length equals Longest. Ties are all
// reported, oldest first.
func (c *Calculator) LongestRanges() []Run {
	runs := c.Runs()
	longest := 0
	for _, r := range runs {
		if r.Length > longest {
			longest = r.Length
		}
	}
	out := []Run{}
	for _, r := range runs {
		if r.Length == longest {
			out = append(out, r)
		}
	}
	return out
}

// MissedDays lists the days of the inclusive window [from, to] without an
// entry, ascending. The bounds may be given in either order.
func (c *Calculator) MissedDays(from, to time.Time) []time.Time {
	missed := []time.Time{}
	for _, day := range daterange.Normalize(from, to).Days() {
		if !c.Has(day) {
			missed = append(missed, day)
		}
	}
	return missed
}

func newRun(start, end time.Time) Run {
	return Run{Start: start, End: end, Length: daterange.DaysBetween(start, end) + 1}
}

package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ramanasai/journal/internal/daterange"
)

var agoPattern = regexp.MustCompile(`^(\d+)\s*(d|day|days|w|week|weeks|m|month|months|y|year|years)\s+ago$`)

// ParseDay resolves a user supplied date relative to today. It accepts
// today/yesterday/tomorrow, "N days ago" style offsets, "last week" style
// periods and common absolute layouts. The result is a calendar day.
func ParseDay(input string, today time.Time) (time.Time, error) {
	in := strings.TrimSpace(strings.ToLower(input))
	if in == "" {
		return time.Time{}, fmt.Errorf("empty date input")
	}
	today = daterange.Day(today)

	switch in {
	case "today", "now":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "last week":
		return today.AddDate(0, 0, -7), nil
	case "last month":
		return today.AddDate(0, -1, 0), nil
	case "last year":
		return today.AddDate(-1, 0, 0), nil
	case "this week":
		return startOfWeek(today), nil
	case "this month":
		return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	case "this year":
		return time.Date(today.Year(), 1, 1, 0, 0, 0, 0, time.UTC), nil
	}

	if m := agoPattern.FindStringSubmatch(in); m != nil {
		n, _ := strconv.Atoi(m[1])
		switch m[2][0] {
		case 'd':
			return today.AddDate(0, 0, -n), nil
		case 'w':
			return today.AddDate(0, 0, -7*n), nil
		case 'm':
			return today.AddDate(0, -n, 0), nil
		case 'y':
			return today.AddDate(-n, 0, 0), nil
		}
	}

	layouts := []string{
		"2006-01-02",
		"2006/01/02",
		"02.01.2006",
		"Jan 2, 2006",
		"2 Jan 2006",
		"January 2, 2006",
		"2 January 2006",
		time.RFC3339,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, strings.TrimSpace(input)); err == nil {
			return daterange.Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", input)
}

// Preset returns the named window ending today: week, month, year,
// last7, last30, last90, or a bare number of days.
func Preset(name string, today time.Time) (daterange.Range, error) {
	today = daterange.Day(today)
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "week":
		return daterange.Normalize(startOfWeek(today), today), nil
	case "month":
		return daterange.Normalize(time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC), today), nil
	case "year":
		return daterange.Normalize(time.Date(today.Year(), 1, 1, 0, 0, 0, 0, time.UTC), today), nil
	case "last7", "last-7-days":
		return daterange.Last(7, today), nil
	case "last30", "last-30-days":
		return daterange.Last(30, today), nil
	case "last90", "last-90-days":
		return daterange.Last(90, today), nil
	}
	if n, err := strconv.Atoi(name); err == nil && n > 0 {
		return daterange.Last(n, today), nil
	}
	return daterange.Range{}, fmt.Errorf("unknown date preset: %s", name)
}

// startOfWeek is the Monday on or before day.
func startOfWeek(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

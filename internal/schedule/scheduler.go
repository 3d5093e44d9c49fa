// Package schedule computes when the daily reminder fires.
package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/ramanasai/journal/internal/config"
)

// Schedule is a daily time of day restricted to some weekdays and skipping
// holidays.
type Schedule struct {
	Hour, Minute int
	Workdays     map[time.Weekday]bool
	Holidays     map[string]bool // "2006-01-02"
	Location     *time.Location
}

var weekdays = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday,
	"thu": time.Thursday, "fri": time.Friday, "sat": time.Saturday,
}

// FromConfig builds the reminder schedule. An empty workday list means
// every day.
func FromConfig(cfg config.Config) Schedule {
	s := Schedule{
		Hour:     20,
		Workdays: map[time.Weekday]bool{},
		Holidays: map[string]bool{},
		Location: cfg.Location(),
	}
	if t, err := time.Parse("15:04", cfg.Reminder.Time); err == nil {
		s.Hour, s.Minute = t.Hour(), t.Minute()
	}
	for _, d := range cfg.Reminder.Workdays {
		d = strings.ToLower(strings.TrimSpace(d))
		if len(d) >= 3 {
			if wd, ok := weekdays[d[:3]]; ok {
				s.Workdays[wd] = true
			}
		}
	}
	if len(s.Workdays) == 0 {
		for _, wd := range weekdays {
			s.Workdays[wd] = true
		}
	}
	for _, h := range cfg.Reminder.Holidays {
		s.Holidays[strings.TrimSpace(h)] = true
	}
	return s
}

// NextAt is the first reminder strictly after now.
func (s Schedule) NextAt(now time.Time) time.Time {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	now = now.In(loc)

	cand := time.Date(now.Year(), now.Month(), now.Day(), s.Hour, s.Minute, 0, 0, loc)
	if !now.Before(cand) {
		cand = cand.AddDate(0, 0, 1)
	}
	for i := 0; i < 366*2; i++ {
		if s.Workdays[cand.Weekday()] && !s.Holidays[cand.Format("2006-01-02")] {
			return cand
		}
		cand = time.Date(cand.Year(), cand.Month(), cand.Day()+1, s.Hour, s.Minute, 0, 0, loc)
	}
	return cand
}

// Run calls f at every scheduled time until ctx is canceled.
func (s Schedule) Run(ctx context.Context, f func()) {
	t := time.NewTimer(time.Until(s.NextAt(time.Now())))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			f()
			t.Reset(time.Until(s.NextAt(time.Now())))
		}
	}
}

package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ramanasai/journal/internal/config"
)

func cfgWith(tm string, workdays, holidays []string) config.Config {
	cfg := config.Default()
	cfg.Timezone = "UTC"
	cfg.Reminder.Time = tm
	cfg.Reminder.Workdays = workdays
	cfg.Reminder.Holidays = holidays
	return cfg
}

func TestNextAtLaterToday(t *testing.T) {
	s := FromConfig(cfgWith("20:30", nil, nil))
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) // Wednesday

	assert.Equal(t, time.Date(2024, 5, 1, 20, 30, 0, 0, time.UTC), s.NextAt(now))
}

func TestNextAtRollsToTomorrow(t *testing.T) {
	s := FromConfig(cfgWith("20:30", nil, nil))

	at := time.Date(2024, 5, 1, 20, 30, 0, 0, time.UTC)
	assert.Equal(t, at.AddDate(0, 0, 1), s.NextAt(at))
}

func TestNextAtSkipsNonWorkdaysAndHolidays(t *testing.T) {
	s := FromConfig(cfgWith("08:00", []string{"Mon", "friday"}, []string{"2024-05-03"}))
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) // Wednesday; Friday the 3rd is a holiday

	assert.Equal(t, time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC), s.NextAt(now))
}

func TestFromConfigDefaults(t *testing.T) {
	s := FromConfig(cfgWith("bogus", []string{"xx"}, nil))

	assert.Equal(t, 20, s.Hour)
	assert.Equal(t, 0, s.Minute)
	assert.Len(t, s.Workdays, 7)
}

func TestNextAtUsesLocation(t *testing.T) {
	loc := time.FixedZone("plus2", 2*3600)
	s := Schedule{Hour: 1, Workdays: map[time.Weekday]bool{}, Location: loc}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		s.Workdays[wd] = true
	}

	now := time.Date(2024, 5, 1, 22, 30, 0, 0, time.UTC) // 00:30 on the 2nd in loc
	assert.Equal(t, time.Date(2024, 5, 2, 1, 0, 0, 0, loc), s.NextAt(now))
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		FromConfig(cfgWith("20:00", nil, nil)).Run(ctx, func() {})
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

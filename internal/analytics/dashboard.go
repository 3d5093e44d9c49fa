package analytics

import (
	"time"

	"github.com/ramanasai/journal/internal/daterange"
	"github.com/ramanasai/journal/internal/journal"
	"github.com/ramanasai/journal/internal/streak"
)

// Dashboard bundles every report shown on the analytics screen. Streak
// figures cover all entries; everything else covers Range only.
type Dashboard struct {
	Range              daterange.Range              `json:"range"`
	Today              time.Time                    `json:"today"`
	CurrentStreak      int                          `json:"current_streak"`
	CurrentStreakDates []time.Time                  `json:"current_streak_dates"`
	LongestStreak      int                          `json:"longest_streak"`
	LongestRanges      []streak.Run                 `json:"longest_ranges"`
	MissedDays         []time.Time                  `json:"missed_days"`
	MoodDistribution   map[journal.MoodCategory]int `json:"mood_distribution"`
	MostFrequentMood   string                       `json:"most_frequent_mood,omitempty"`
	MoodCounts         Ranking                      `json:"mood_counts"`
	TopTags            Ranking                      `json:"top_tags"`
	WordTrend          []DayCount                   `json:"word_trend"`
	EntriesInRange     int                          `json:"entries_in_range"`
	TotalWords         int                          `json:"total_words"`
	AverageWords       float64                      `json:"average_words"`
}

// BuildDashboard recomputes every report from the full entry set.
func BuildDashboard(entries []journal.Entry, from, to, today time.Time, topTags int) Dashboard {
	r := daterange.Normalize(from, to)

	dates := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		dates = append(dates, e.EntryDate)
	}
	calc := streak.New(dates)

	d := Dashboard{
		Range:              r,
		Today:              daterange.Day(today),
		CurrentStreak:      calc.Current(today),
		CurrentStreakDates: calc.CurrentDates(today),
		LongestStreak:      calc.Longest(),
		LongestRanges:      calc.LongestRanges(),
		MissedDays:         calc.MissedDays(r.Start, r.End),
		MoodDistribution:   MoodCategoryDistribution(entries, r.Start, r.End),
		MoodCounts:         MoodCounts(entries, r.Start, r.End),
		TopTags:            MostUsedTags(entries, r.Start, r.End, topTags),
		WordTrend:          WordCountTrend(entries, r.Start, r.End),
		EntriesInRange:     len(InRange(entries, r.Start, r.End)),
	}
	d.MostFrequentMood, _ = MostFrequentMood(entries, r.Start, r.End)

	for _, p := range d.WordTrend {
		d.TotalWords += p.Words
	}
	if d.EntriesInRange > 0 {
		d.AverageWords = float64(d.TotalWords) / float64(d.EntriesInRange)
	}
	return d
}

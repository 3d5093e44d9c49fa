package journal_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/journal/internal/journal"
)

func TestMoodTable(t *testing.T) {
	counts := map[journal.MoodCategory]int{}
	for _, m := range journal.Moods() {
		require.True(t, m.Valid(), m)
		counts[m.Category()]++
	}
	assert.Len(t, journal.Moods(), 15)
	assert.Equal(t, map[journal.MoodCategory]int{
		journal.Positive: 5,
		journal.Neutral:  5,
		journal.Negative: 5,
	}, counts)
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		label string
		want  journal.MoodCategory
	}{
		{"Happy", journal.Positive},
		{"confident", journal.Positive},
		{"Bored", journal.Neutral},
		{"Anxious", journal.Negative},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, journal.CategoryOf(tt.label), tt.label)
	}
}

func TestParseMood(t *testing.T) {
	m, ok := journal.ParseMood("  nOstalgic ")
	assert.True(t, ok)
	assert.Equal(t, journal.Nostalgic, m)

	_, ok = journal.ParseMood("hungry")
	assert.False(t, ok)
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{" , ,", []string{}},
		{"work, Work ,  ", []string{"work"}},
		{"travel,food , travel", []string{"travel", "food"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, journal.ParseTags(tt.in), tt.in)
	}
	assert.Equal(t, "a,b", journal.JoinTags([]string{" a", "b ", "A"}))
}

func TestParseMoods(t *testing.T) {
	got := journal.ParseMoods("calm, Curious,calm")
	assert.Equal(t, []journal.Mood{journal.Calm, journal.Curious}, got)
	assert.Equal(t, "Calm, Curious", journal.JoinMoods(got))
}

func TestValidate(t *testing.T) {
	valid := journal.Entry{Title: "A day", PrimaryMood: journal.Happy}
	require.NoError(t, journal.Validate(valid))

	tests := []struct {
		name   string
		mutate func(*journal.Entry)
		msg    string
	}{
		{"blank title", func(e *journal.Entry) { e.Title = "   " }, "title is required"},
		{"unknown mood", func(e *journal.Entry) { e.PrimaryMood = "Hungry" }, `"Hungry" is not a known mood`},
		{"too many secondary", func(e *journal.Entry) {
			e.SecondaryMoods = []journal.Mood{journal.Calm, journal.Sad, journal.Bored}
		}, "at most 2 secondary moods"},
		{"bad secondary", func(e *journal.Entry) { e.SecondaryMoods = []journal.Mood{"Meh"} }, `"Meh"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			err := journal.Validate(e)
			require.ErrorIs(t, err, journal.ErrValidation)
			assert.True(t, strings.Contains(err.Error(), tt.msg), err.Error())
		})
	}
}

package journal_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/journal/internal/daterange"
	"github.com/ramanasai/journal/internal/journal"
)

// memStore keeps entries keyed by day.
type memStore struct {
	entries map[string]journal.Entry
	order   []string
	nextID  int
}

func newMemStore(entries ...journal.Entry) *memStore {
	s := &memStore{entries: map[string]journal.Entry{}}
	for i := range entries {
		_, _ = s.Save(&entries[i])
	}
	return s
}

func (s *memStore) GetAll() ([]journal.Entry, error) {
	out := make([]journal.Entry, 0, len(s.order))
	for _, k := range s.order {
		if e, ok := s.entries[k]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *memStore) GetByDate(date time.Time) (journal.Entry, error) {
	e, ok := s.entries[daterange.Key(date)]
	if !ok {
		return journal.Entry{}, journal.ErrNotFound
	}
	return e, nil
}

func (s *memStore) Save(e *journal.Entry) (string, error) {
	if e.ID == "" {
		s.nextID++
		e.ID = fmt.Sprintf("id-%d", s.nextID)
	}
	key := daterange.Key(e.EntryDate)
	if _, ok := s.entries[key]; !ok {
		s.order = append(s.order, key)
	}
	s.entries[key] = *e
	return e.ID, nil
}

func (s *memStore) Delete(e journal.Entry) (bool, error) {
	key := daterange.Key(e.EntryDate)
	if _, ok := s.entries[key]; !ok {
		return false, nil
	}
	delete(s.entries, key)
	return true, nil
}

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestSaveTodayCreatesThenUpdates(t *testing.T) {
	store := newMemStore()
	morning := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	svc := journal.NewService(store, fixedClock(morning))

	created, err := svc.SaveToday(journal.Entry{
		Title:       "  First light ",
		Content:     "woke early",
		PrimaryMood: journal.Calm,
		Tags:        []string{"morning", " Morning", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, "First light", created.Title)
	assert.Equal(t, []string{"morning"}, created.Tags)
	assert.Equal(t, daterange.Day(morning), created.EntryDate)
	assert.Equal(t, morning, created.CreatedAt)

	evening := morning.Add(12 * time.Hour)
	svc = journal.NewService(store, fixedClock(evening))
	updated, err := svc.SaveToday(journal.Entry{Title: "Long day", PrimaryMood: journal.Stressed})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, morning, updated.CreatedAt)
	assert.Equal(t, evening, updated.UpdatedAt)

	all, _ := store.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, "Long day", all[0].Title)
}

func TestSaveTodayRejectsInvalid(t *testing.T) {
	svc := journal.NewService(newMemStore(), fixedClock(time.Now()))

	_, err := svc.SaveToday(journal.Entry{Title: "", PrimaryMood: journal.Happy})
	assert.ErrorIs(t, err, journal.ErrValidation)
}

func TestTodayAndDeleteToday(t *testing.T) {
	now := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	store := newMemStore(journal.Entry{EntryDate: daterange.Day(now), Title: "x", PrimaryMood: journal.Happy})
	svc := journal.NewService(store, fixedClock(now))

	e, err := svc.Today()
	require.NoError(t, err)
	assert.Equal(t, "x", e.Title)

	deleted, err := svc.DeleteToday()
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = svc.Today()
	assert.ErrorIs(t, err, journal.ErrNotFound)

	deleted, err = svc.DeleteToday()
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestSearch(t *testing.T) {
	d := func(s string) time.Time { t, _ := daterange.Parse(s); return t }
	store := newMemStore(
		journal.Entry{EntryDate: d("2024-01-01"), Title: "Hiking", Content: "mountain air", PrimaryMood: journal.Happy},
		journal.Entry{EntryDate: d("2024-01-03"), Title: "Work", Content: "deadline MOUNTAIN", PrimaryMood: journal.Stressed},
		journal.Entry{EntryDate: d("2024-01-05"), Title: "Rest", Content: "nothing", PrimaryMood: journal.Happy},
	)
	svc := journal.NewService(store, nil)

	tests := []struct {
		name   string
		filter journal.Filter
		want   []string
	}{
		{"all newest first", journal.Filter{}, []string{"Rest", "Work", "Hiking"}},
		{"text in content any case", journal.Filter{Text: "Mountain"}, []string{"Work", "Hiking"}},
		{"text in title", journal.Filter{Text: "rest"}, []string{"Rest"}},
		{"bounded", journal.Filter{From: d("2024-01-02"), To: d("2024-01-04")}, []string{"Work"}},
		{"mood", journal.Filter{Mood: journal.Happy}, []string{"Rest", "Hiking"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(tt.filter)
			require.NoError(t, err)
			titles := []string{}
			for _, e := range got {
				titles = append(titles, e.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

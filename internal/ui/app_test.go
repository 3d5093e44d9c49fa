package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/journal/internal/daterange"
	"github.com/ramanasai/journal/internal/journal"
)

type memStore struct {
	entries map[string]journal.Entry
}

func (s *memStore) GetAll() ([]journal.Entry, error) {
	out := make([]journal.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out, nil
}

func (s *memStore) GetByDate(d time.Time) (journal.Entry, error) {
	if e, ok := s.entries[daterange.Key(d)]; ok {
		return e, nil
	}
	return journal.Entry{}, journal.ErrNotFound
}

func (s *memStore) Save(e *journal.Entry) (string, error) {
	if e.ID == "" {
		e.ID = "id-" + daterange.Key(e.EntryDate)
	}
	s.entries[daterange.Key(e.EntryDate)] = *e
	return e.ID, nil
}

func (s *memStore) Delete(e journal.Entry) (bool, error) {
	k := daterange.Key(e.EntryDate)
	_, ok := s.entries[k]
	delete(s.entries, k)
	return ok, nil
}

var testNow = time.Date(2024, 5, 10, 21, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, dates ...string) (Model, *memStore) {
	t.Helper()
	store := &memStore{entries: map[string]journal.Entry{}}
	for _, d := range dates {
		day, err := daterange.Parse(d)
		require.NoError(t, err)
		store.entries[d] = journal.Entry{
			ID: d, EntryDate: day, Title: "Entry " + d, Content: "some words here",
			PrimaryMood: journal.Happy, Tags: []string{"work"},
		}
	}
	svc := journal.NewService(store, func() time.Time { return testNow })
	m := New(Options{
		Service:    svc,
		Now:        func() time.Time { return testNow },
		Theme:      ThemeFor("light"),
		WindowDays: 7,
		TopTags:    3,
		Tags:       []string{"work", "workout", "family"},
	})
	return load(t, m), store
}

func load(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.Init()()
	loaded, ok := msg.(entriesLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	next, _ := m.Update(msg)
	return next.(Model)
}

func press(m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	var next tea.Model = m
	for _, k := range keys {
		next, cmd = next.(Model).Update(k)
	}
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	save  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func TestDashboardShowsStreaks(t *testing.T) {
	m, _ := newTestModel(t, "2024-05-08", "2024-05-09", "2024-05-10", "2024-05-01")

	assert.Equal(t, 3, m.dash.CurrentStreak)
	assert.Equal(t, 3, m.dash.LongestStreak)
	assert.Equal(t, 3, m.dash.EntriesInRange)

	out := m.View()
	assert.Contains(t, out, "Streaks")
	assert.Contains(t, out, "3 days")
	assert.Contains(t, out, "#work")
	assert.Contains(t, out, "2024-05-04..2024-05-10")
}

func TestWindowNavigation(t *testing.T) {
	m, _ := newTestModel(t, "2024-05-01", "2024-05-10")

	m, _ = press(m, runes("["))
	assert.Equal(t, 7, m.offset)
	assert.Equal(t, daterange.Key(time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)), daterange.Key(m.dash.Range.End))
	assert.Equal(t, 1, m.dash.EntriesInRange)
	assert.Equal(t, 1, m.dash.CurrentStreak)

	m, _ = press(m, runes("]"), runes("]"))
	assert.Equal(t, 0, m.offset)

	m, _ = press(m, runes("+"))
	assert.Equal(t, 14, m.window)
	assert.Equal(t, 2, m.dash.EntriesInRange)

	m, _ = press(m, runes("-"), runes("-"), runes("-"), runes("-"), runes("-"))
	assert.Equal(t, 1, m.window)
}

func TestTabSwitchesBetweenReadViews(t *testing.T) {
	m, _ := newTestModel(t, "2024-05-10")

	m, _ = press(m, tab)
	assert.Equal(t, viewEntries, m.view)
	assert.Contains(t, m.View(), "Entry 2024-05-10")

	m, _ = press(m, tab)
	assert.Equal(t, viewDashboard, m.view)
}

func TestFilterReloadsEntries(t *testing.T) {
	m, _ := newTestModel(t, "2024-05-09", "2024-05-10")

	m, _ = press(m, runes("/"))
	require.True(t, m.filtering)
	m, _ = press(m, runes("05-09"))
	m, cmd := press(m, enter)
	require.NotNil(t, cmd)
	assert.False(t, m.filtering)

	next, _ := m.Update(cmd())
	m = next.(Model)
	require.Len(t, m.entries, 1)
	assert.Equal(t, "Entry 2024-05-09", m.entries[0].Title)
}

func TestFilterKeepsDashboardOnAllEntries(t *testing.T) {
	m, store := newTestModel(t, "2024-05-08", "2024-05-09", "2024-05-10")
	e := store.entries["2024-05-10"]
	e.Content = "walked by the river"
	store.entries["2024-05-10"] = e
	m = load(t, m)

	m, _ = press(m, runes("/"), runes("river"))
	m, cmd := press(m, enter)
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	m = next.(Model)

	require.Len(t, m.entries, 1)
	assert.Equal(t, "Entry 2024-05-10", m.entries[0].Title)
	assert.Equal(t, 3, m.dash.CurrentStreak)
	assert.Equal(t, 3, m.dash.LongestStreak)
	assert.Equal(t, 3, m.dash.EntriesInRange)
}

func TestWriteTodaysEntry(t *testing.T) {
	m, store := newTestModel(t, "2024-05-09")

	m, _ = press(m, runes("w"))
	require.Equal(t, viewWrite, m.view)

	m, _ = press(m, runes("Good day"), tab, runes("hap"))
	assert.Equal(t, []string{"Happy"}, m.mood.Suggestions())
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "Happy", m.mood.Value())

	m, _ = press(m, tab, runes("calm"), tab, runes("work, fam"), tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "work, family", m.tags.Value())

	m, _ = press(m, tab, runes("Wrote some code."))
	m, cmd := press(m, save)
	require.NotNil(t, cmd)

	next, cmd := m.Update(cmd())
	m = next.(Model)
	require.NoError(t, m.err)
	assert.Equal(t, viewDashboard, m.view)
	assert.Contains(t, m.status, "Saved entry for 2024-05-10")

	saved := store.entries["2024-05-10"]
	assert.Equal(t, "Good day", saved.Title)
	assert.Equal(t, journal.Happy, saved.PrimaryMood)
	assert.Equal(t, []journal.Mood{journal.Calm}, saved.SecondaryMoods)
	assert.Equal(t, []string{"work", "family"}, saved.Tags)
	assert.Equal(t, "Wrote some code.", saved.Content)

	m = func() Model { n, _ := m.Update(cmd()); return n.(Model) }()
	assert.Equal(t, 2, m.dash.CurrentStreak)
}

func TestWriteValidationErrorStaysInForm(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(m, runes("w"), tab, runes("grumpy"))
	m, cmd := press(m, save)
	next, _ := m.Update(cmd())
	m = next.(Model)

	require.Error(t, m.err)
	assert.True(t, errors.Is(m.err, journal.ErrValidation))
	assert.Equal(t, viewWrite, m.view)
	assert.Contains(t, m.View(), "Error:")
}

func TestWritePrefillsExistingEntry(t *testing.T) {
	m, _ := newTestModel(t, "2024-05-10")

	m, _ = press(m, runes("w"))
	assert.Equal(t, "Entry 2024-05-10", m.title.Value())
	assert.Equal(t, "Happy", m.mood.Value())
	assert.Equal(t, "work", m.tags.Value())

	m, _ = press(m, esc)
	assert.Equal(t, viewDashboard, m.view)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestComplete(t *testing.T) {
	c := []string{"Happy", "Hopeful", "Calm", "happy"}
	assert.Equal(t, []string{"Happy", "Hopeful"}, Complete("h", c, 2))
	assert.Equal(t, []string{"Hopeful"}, Complete("  HO", c, 5))
	assert.Empty(t, Complete("happy", c, 5))
	assert.Empty(t, Complete("", c, 5))
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, LightTheme.Title.GetForeground(), ThemeFor("light").Title.GetForeground())
	assert.Equal(t, DefaultTheme.Title.GetForeground(), ThemeFor("neon").Title.GetForeground())
	assert.True(t, strings.Contains(ThemeFor("dark").Tab.Render("x"), "x"))
}

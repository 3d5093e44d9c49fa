package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/journal/internal/encryption"
	"github.com/ramanasai/journal/internal/journal"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func openStore(t *testing.T, path string, enc *encryption.Encryptor) *Store {
	t.Helper()
	dbh, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })

	s, err := NewStore(dbh, enc)
	require.NoError(t, err)
	return s
}

func newEntry(date string, tags ...string) *journal.Entry {
	stamp := day(date).Add(20 * time.Hour)
	return &journal.Entry{
		EntryDate:      day(date),
		Title:          "Title " + date,
		Content:        "Body of " + date,
		PrimaryMood:    journal.Happy,
		SecondaryMoods: []journal.Mood{journal.Calm},
		Category:       "Personal",
		Tags:           tags,
		CreatedAt:      stamp,
		UpdatedAt:      stamp,
	}
}

func TestSaveAndGetByDate(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "j.db"), nil)

	id, err := s.Save(newEntry("2024-05-01", "work", "family"))
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	got, err := s.GetByDate(time.Date(2024, 5, 1, 23, 0, 0, 0, time.FixedZone("x", -5*3600)))
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, day("2024-05-01"), got.EntryDate)
	assert.Equal(t, "Title 2024-05-01", got.Title)
	assert.Equal(t, "Body of 2024-05-01", got.Content)
	assert.Equal(t, journal.Happy, got.PrimaryMood)
	assert.Equal(t, []journal.Mood{journal.Calm}, got.SecondaryMoods)
	assert.Equal(t, "Personal", got.Category)
	assert.Equal(t, []string{"work", "family"}, got.Tags)
	assert.True(t, got.CreatedAt.Equal(day("2024-05-01").Add(20*time.Hour)))
}

func TestGetByDateNotFound(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "j.db"), nil)

	_, err := s.GetByDate(day("2024-05-01"))
	assert.ErrorIs(t, err, journal.ErrNotFound)
}

func TestSaveConflictOnSameDate(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "j.db"), nil)

	_, err := s.Save(newEntry("2024-05-01"))
	require.NoError(t, err)

	_, err = s.Save(newEntry("2024-05-01"))
	assert.ErrorIs(t, err, journal.ErrConflict)
}

func TestSaveUpdatesExisting(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "j.db"), nil)

	e := newEntry("2024-05-01")
	id, err := s.Save(e)
	require.NoError(t, err)

	e.ID = id
	e.Title = "Edited"
	e.Tags = []string{"new"}
	id2, err := s.Save(e)
	require.NoError(t, err)
	assert.Equal(t, id, id2)

	all, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Edited", all[0].Title)

	e.ID = uuid.NewString()
	_, err = s.Save(e)
	assert.ErrorIs(t, err, journal.ErrNotFound)
}

func TestGetAllAndRangeOrdering(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "j.db"), nil)
	for _, d := range []string{"2024-05-03", "2024-05-01", "2024-05-10", "2024-04-30"} {
		_, err := s.Save(newEntry(d))
		require.NoError(t, err)
	}

	all, err := s.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, day("2024-05-10"), all[0].EntryDate)
	assert.Equal(t, day("2024-04-30"), all[3].EntryDate)

	window, err := s.Range(day("2024-05-03"), day("2024-05-01"))
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, day("2024-05-01"), window[0].EntryDate)
	assert.Equal(t, day("2024-05-03"), window[1].EntryDate)
}

func TestDelete(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "j.db"), nil)
	id, err := s.Save(newEntry("2024-05-01"))
	require.NoError(t, err)
	_, err = s.Save(newEntry("2024-05-02"))
	require.NoError(t, err)

	ok, err := s.Delete(journal.Entry{ID: id})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Delete(journal.Entry{ID: id})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Delete(journal.Entry{EntryDate: day("2024-05-02")})
	require.NoError(t, err)
	assert.True(t, ok)

	all, err := s.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTagRegistry(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "j.db"), nil)
	_, err := s.Save(newEntry("2024-05-01", "work", "Travel"))
	require.NoError(t, err)
	id, err := s.Save(newEntry("2024-05-02", "WORK", "workout"))
	require.NoError(t, err)
	_, err = s.Delete(journal.Entry{ID: id})
	require.NoError(t, err)

	tags, err := s.KnownTags()
	require.NoError(t, err)
	assert.Equal(t, []TagUsage{
		{Name: "Travel", Entries: 1},
		{Name: "work", Entries: 1},
		{Name: "workout", Entries: 0},
	}, tags)

	found, err := s.SearchTags("WORK", 5)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "work", found[0].Name)
	assert.Equal(t, "workout", found[1].Name)

	found, err = s.SearchTags("a", 1)
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestServiceOverStore(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "j.db"), nil)
	now := time.Date(2024, 5, 1, 21, 0, 0, 0, time.UTC)
	svc := journal.NewService(s, func() time.Time { return now })

	first, err := svc.SaveToday(journal.Entry{Title: " Evening ", PrimaryMood: journal.Calm, Tags: []string{"a", "A"}})
	require.NoError(t, err)

	now = now.Add(time.Hour)
	second, err := svc.SaveToday(journal.Entry{Title: "Later", PrimaryMood: journal.Happy})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := svc.Today()
	require.NoError(t, err)
	assert.Equal(t, "Later", got.Title)
	assert.True(t, got.CreatedAt.Equal(time.Date(2024, 5, 1, 21, 0, 0, 0, time.UTC)))
	assert.True(t, got.UpdatedAt.Equal(now))

	ok, err := svc.DeleteToday()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEncryptedAtRest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "j.db")
	enc, err := encryption.New("pass", filepath.Join(dir, "salt"))
	require.NoError(t, err)

	s := openStore(t, path, enc)
	assert.True(t, s.Encrypted())
	_, err = s.Save(newEntry("2024-05-01", "work"))
	require.NoError(t, err)

	var rawTitle string
	require.NoError(t, s.db.QueryRow(`SELECT title FROM entries`).Scan(&rawTitle))
	assert.NotContains(t, rawTitle, "Title")

	got, err := s.GetByDate(day("2024-05-01"))
	require.NoError(t, err)
	assert.Equal(t, "Title 2024-05-01", got.Title)
	assert.Equal(t, []string{"work"}, got.Tags)

	plain := openStore(t, path, nil)
	_, err = plain.GetAll()
	assert.ErrorIs(t, err, ErrLocked)

	wrong, err := encryption.New("nope", filepath.Join(dir, "salt"))
	require.NoError(t, err)
	dbh, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dbh.Close() })
	_, err = NewStore(dbh, wrong)
	assert.ErrorIs(t, err, encryption.ErrDecrypt)
}

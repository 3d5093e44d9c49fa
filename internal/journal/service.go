package journal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ramanasai/journal/internal/daterange"
)

// Service implements the today-centric workflow on top of a Store.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService wires a store and a clock. A nil clock means time.Now.
func NewService(store Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

// Today returns today's entry or ErrNotFound.
func (s *Service) Today() (Entry, error) {
	return s.OnDate(s.now())
}

// OnDate returns the entry written on the calendar date of t.
func (s *Service) OnDate(t time.Time) (Entry, error) {
	e, err := s.store.GetByDate(daterange.Day(t))
	if err != nil {
		return Entry{}, fmt.Errorf("load entry %s: %w", daterange.Key(t), err)
	}
	return e, nil
}

// SaveToday creates today's entry or overwrites the editable fields of the
// existing one.
func (s *Service) SaveToday(input Entry) (Entry, error) {
	now := s.now()
	today := daterange.Day(now)

	entry, err := s.store.GetByDate(today)
	switch {
	case errors.Is(err, ErrNotFound):
		entry = Entry{EntryDate: today, CreatedAt: now}
	case err != nil:
		return Entry{}, fmt.Errorf("load today's entry: %w", err)
	}

	entry.Title = strings.TrimSpace(input.Title)
	entry.Content = input.Content
	entry.PrimaryMood = input.PrimaryMood
	entry.SecondaryMoods = input.SecondaryMoods
	entry.Category = strings.TrimSpace(input.Category)
	entry.Tags = ParseTags(strings.Join(input.Tags, ","))
	entry.UpdatedAt = now

	if err := Validate(entry); err != nil {
		return Entry{}, err
	}

	id, err := s.store.Save(&entry)
	if err != nil {
		return Entry{}, fmt.Errorf("save entry: %w", err)
	}
	entry.ID = id
	return entry, nil
}

// DeleteToday removes today's entry. It reports false when there was none.
func (s *Service) DeleteToday() (bool, error) {
	entry, err := s.store.GetByDate(daterange.Day(s.now()))
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load today's entry: %w", err)
	}
	return s.store.Delete(entry)
}

// Filter narrows Search results. Zero values disable a criterion.
type Filter struct {
	Text string
	From time.Time
	To   time.Time
	Mood Mood
}

// Search returns the matching entries, newest first.
func (s *Service) Search(f Filter) ([]Entry, error) {
	all, err := s.store.GetAll()
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	q := strings.ToLower(strings.TrimSpace(f.Text))
	out := make([]Entry, 0, len(all))
	for _, e := range all {
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Title), q) &&
			!strings.Contains(strings.ToLower(e.Content), q) {
			continue
		}
		day := daterange.Day(e.EntryDate)
		if !f.From.IsZero() && day.Before(daterange.Day(f.From)) {
			continue
		}
		if !f.To.IsZero() && day.After(daterange.Day(f.To)) {
			continue
		}
		if f.Mood != "" && e.PrimaryMood != f.Mood {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EntryDate.After(out[j].EntryDate) })
	return out, nil
}

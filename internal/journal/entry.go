// Package journal holds the journal entry model, the mood table and the
// today-centric entry service.
package journal

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when no entry exists for the requested date.
	ErrNotFound = errors.New("entry not found")

	// ErrConflict is returned when a second entry is saved for a date that already has one.
	ErrConflict = errors.New("entry conflict")

	// ErrValidation wraps every entry validation failure.
	ErrValidation = errors.New("validation failed")
)

// Entry is one journal record. At most one entry exists per calendar date.
type Entry struct {
	ID             string    `json:"id"`
	EntryDate      time.Time `json:"entry_date"`
	Title          string    `json:"title"           validate:"notblank"`
	Content        string    `json:"content"`
	PrimaryMood    Mood      `json:"primary_mood"    validate:"mood"`
	SecondaryMoods []Mood    `json:"secondary_moods" validate:"max=2,dive,mood"`
	Category       string    `json:"category,omitempty"`
	Tags           []string  `json:"tags"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Store is the persistence collaborator the service and the CLI work against.
type Store interface {
	GetAll() ([]Entry, error)
	GetByDate(date time.Time) (Entry, error)
	Save(entry *Entry) (string, error)
	Delete(entry Entry) (bool, error)
}

// ParseTags splits a comma separated tag field. Tags are trimmed, blanks are
// dropped and case-insensitive duplicates collapse onto the first spelling.
func ParseTags(csv string) []string {
	return splitUnique(csv)
}

// JoinTags is the inverse of ParseTags, used when handing tags back to storage.
func JoinTags(tags []string) string {
	return strings.Join(splitUnique(strings.Join(tags, ",")), ",")
}

// ParseMoods splits a comma separated mood field. Unknown labels are kept
// verbatim so that validation can report them.
func ParseMoods(csv string) []Mood {
	parts := splitUnique(csv)
	out := make([]Mood, 0, len(parts))
	for _, p := range parts {
		if m, ok := ParseMood(p); ok {
			out = append(out, m)
			continue
		}
		out = append(out, Mood(p))
	}
	return out
}

// JoinMoods renders secondary moods in storage form.
func JoinMoods(moods []Mood) string {
	parts := make([]string, 0, len(moods))
	for _, m := range moods {
		parts = append(parts, string(m))
	}
	return strings.Join(parts, ", ")
}

func splitUnique(csv string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, raw := range strings.Split(csv, ",") {
		t := strings.TrimSpace(raw)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}

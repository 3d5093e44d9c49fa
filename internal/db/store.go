package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/ramanasai/journal/internal/daterange"
	"github.com/ramanasai/journal/internal/encryption"
	"github.com/ramanasai/journal/internal/journal"
)

// ErrLocked is returned when encrypted rows are read without a passphrase.
var ErrLocked = errors.New("journal is encrypted; set JOURNAL_PASSPHRASE")

const (
	timestampLayout = time.RFC3339Nano
	checkKey        = "encryption_check"
	checkValue      = "journal"
)

const entryColumns = `id, entry_date, title, content, primary_mood, secondary_moods, category, tags, encrypted, created_at, updated_at`

// Store implements journal.Store on SQLite. With an Encryptor, titles and
// content are sealed at rest; dates, moods and tags stay queryable.
type Store struct {
	db  *sql.DB
	enc *encryption.Encryptor
}

var _ journal.Store = (*Store)(nil)

// NewStore wraps an open database. When enc is set it is checked against
// the key the journal was first encrypted with.
func NewStore(dbh *sql.DB, enc *encryption.Encryptor) (*Store, error) {
	s := &Store{db: dbh, enc: enc}
	if enc != nil {
		if err := s.verifyKey(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Encrypted reports whether new entries are sealed.
func (s *Store) Encrypted() bool { return s.enc != nil }

func (s *Store) verifyKey() error {
	var sealed string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = ?`, checkKey).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		sealed, err = s.enc.Encrypt(checkValue)
		if err != nil {
			return err
		}
		_, err = s.db.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)`, checkKey, sealed)
		return err
	}
	if err != nil {
		return fmt.Errorf("read key check: %w", err)
	}
	plain, err := s.enc.Decrypt(sealed)
	if err != nil || plain != checkValue {
		return encryption.ErrDecrypt
	}
	return nil
}

// GetAll returns every entry, newest first.
func (s *Store) GetAll() ([]journal.Entry, error) {
	return s.query(`SELECT ` + entryColumns + ` FROM entries ORDER BY entry_date DESC`)
}

// Range returns entries dated inside the normalized window, oldest first.
func (s *Store) Range(from, to time.Time) ([]journal.Entry, error) {
	r := daterange.Normalize(from, to)
	return s.query(`SELECT `+entryColumns+` FROM entries WHERE entry_date BETWEEN ? AND ? ORDER BY entry_date ASC`,
		daterange.Key(r.Start), daterange.Key(r.End))
}

// GetByDate returns the entry for the calendar date of date.
func (s *Store) GetByDate(date time.Time) (journal.Entry, error) {
	out, err := s.query(`SELECT `+entryColumns+` FROM entries WHERE entry_date = ?`, daterange.Key(date))
	if err != nil {
		return journal.Entry{}, err
	}
	if len(out) == 0 {
		return journal.Entry{}, journal.ErrNotFound
	}
	return out[0], nil
}

// Save inserts entries without an ID and updates the rest. It returns the
// entry ID and journal.ErrConflict when the date is already taken.
func (s *Store) Save(e *journal.Entry) (string, error) {
	title, content, err := s.seal(e.Title, e.Content)
	if err != nil {
		return "", err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	id := e.ID
	args := []any{
		daterange.Key(e.EntryDate), title, content, string(e.PrimaryMood),
		journal.JoinMoods(e.SecondaryMoods), e.Category, journal.JoinTags(e.Tags),
		s.enc != nil, e.CreatedAt.UTC().Format(timestampLayout), e.UpdatedAt.UTC().Format(timestampLayout),
	}

	if id == "" {
		id = uuid.NewString()
		_, err = tx.Exec(`INSERT INTO entries (id, entry_date, title, content, primary_mood, secondary_moods, category, tags, encrypted, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, append([]any{id}, args...)...)
	} else {
		var res sql.Result
		res, err = tx.Exec(`UPDATE entries
			SET entry_date = ?, title = ?, content = ?, primary_mood = ?, secondary_moods = ?, category = ?, tags = ?, encrypted = ?, created_at = ?, updated_at = ?
			WHERE id = ?`, append(args, id)...)
		if err == nil {
			if n, _ := res.RowsAffected(); n == 0 {
				return "", fmt.Errorf("update %s: %w", id, journal.ErrNotFound)
			}
		}
	}
	if isUnique(err) {
		return "", fmt.Errorf("%s already has an entry: %w", daterange.Key(e.EntryDate), journal.ErrConflict)
	}
	if err != nil {
		return "", fmt.Errorf("write entry: %w", err)
	}

	if err := registerTags(tx, e.Tags, e.UpdatedAt); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// Delete removes the entry by ID, or by date when it has none.
func (s *Store) Delete(e journal.Entry) (bool, error) {
	var (
		res sql.Result
		err error
	)
	if e.ID != "" {
		res, err = s.db.Exec(`DELETE FROM entries WHERE id = ?`, e.ID)
	} else {
		res, err = s.db.Exec(`DELETE FROM entries WHERE entry_date = ?`, daterange.Key(e.EntryDate))
	}
	if err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) query(q string, args ...any) ([]journal.Entry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	out := []journal.Entry{}
	for rows.Next() {
		e, err := s.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) scan(rows *sql.Rows) (journal.Entry, error) {
	var (
		e                       journal.Entry
		date, mood, moods, tags string
		created, updated        string
		encrypted               bool
	)
	if err := rows.Scan(&e.ID, &date, &e.Title, &e.Content, &mood, &moods, &e.Category, &tags, &encrypted, &created, &updated); err != nil {
		return e, fmt.Errorf("scan entry: %w", err)
	}

	var err error
	if e.EntryDate, err = daterange.Parse(date); err != nil {
		return e, fmt.Errorf("entry %s: %w", e.ID, err)
	}
	if e.CreatedAt, err = time.Parse(timestampLayout, created); err != nil {
		return e, fmt.Errorf("entry %s created_at: %w", e.ID, err)
	}
	if e.UpdatedAt, err = time.Parse(timestampLayout, updated); err != nil {
		return e, fmt.Errorf("entry %s updated_at: %w", e.ID, err)
	}
	e.PrimaryMood = journal.Mood(mood)
	e.SecondaryMoods = journal.ParseMoods(moods)
	e.Tags = journal.ParseTags(tags)

	if encrypted {
		if s.enc == nil {
			return e, ErrLocked
		}
		if e.Title, err = s.enc.Decrypt(e.Title); err != nil {
			return e, fmt.Errorf("entry %s title: %w", daterange.Key(e.EntryDate), err)
		}
		if e.Content, err = s.enc.Decrypt(e.Content); err != nil {
			return e, fmt.Errorf("entry %s content: %w", daterange.Key(e.EntryDate), err)
		}
	}
	return e, nil
}

func (s *Store) seal(title, content string) (string, string, error) {
	if s.enc == nil {
		return title, content, nil
	}
	t, err := s.enc.Encrypt(title)
	if err != nil {
		return "", "", fmt.Errorf("encrypt title: %w", err)
	}
	c, err := s.enc.Encrypt(content)
	if err != nil {
		return "", "", fmt.Errorf("encrypt content: %w", err)
	}
	return t, c, nil
}

func isUnique(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

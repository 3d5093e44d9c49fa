package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

func registerTags(tx *sql.Tx, tags []string, at time.Time) error {
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, err := tx.Exec(`INSERT OR IGNORE INTO tags (name, created_at) VALUES (?, ?)`,
			t, at.UTC().Format(timestampLayout)); err != nil {
			return fmt.Errorf("register tag %q: %w", t, err)
		}
	}
	return nil
}

// TagUsage is a registered tag with the number of entries carrying it.
type TagUsage struct {
	Name    string
	Entries int
}

// KnownTags lists every tag ever saved, alphabetically, with current usage.
// Tags of deleted entries stay registered with zero usage.
func (s *Store) KnownTags() ([]TagUsage, error) {
	return s.tagQuery(`SELECT name FROM tags ORDER BY name COLLATE NOCASE`)
}

// SearchTags returns registered tags containing query, exact and prefix
// matches first.
func (s *Store) SearchTags(query string, limit int) ([]TagUsage, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	like := "%" + q + "%"
	return s.tagQuery(`
		SELECT name FROM tags
		WHERE LOWER(name) LIKE ?
		ORDER BY
			CASE WHEN LOWER(name) = ? THEN 1 WHEN LOWER(name) LIKE ? THEN 2 ELSE 3 END,
			name COLLATE NOCASE
		LIMIT ?`, like, q, q+"%", limit)
}

func (s *Store) tagQuery(q string, args ...any) ([]TagUsage, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, err
		}
		names = append(names, name)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	usage, err := s.tagUsage()
	if err != nil {
		return nil, err
	}
	out := make([]TagUsage, 0, len(names))
	for _, n := range names {
		out = append(out, TagUsage{Name: n, Entries: usage[strings.ToLower(n)]})
	}
	return out, nil
}

// tagUsage counts entries per lower-cased tag. Tags live in a comma
// separated column, so the split happens here rather than in SQL.
func (s *Store) tagUsage() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT tags FROM entries WHERE tags != ''`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usage := map[string]int{}
	for rows.Next() {
		var csv string
		if err := rows.Scan(&csv); err != nil {
			return nil, err
		}
		seen := map[string]bool{}
		for _, t := range strings.Split(csv, ",") {
			key := strings.ToLower(strings.TrimSpace(t))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			usage[key]++
		}
	}
	return usage, rows.Err()
}

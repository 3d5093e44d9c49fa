// Package analytics derives mood, tag and writing statistics from journal
// entries. Every function is a pure computation over its arguments: the
// window is normalized first, entries outside it are ignored and the input
// slice is never modified.
package analytics

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ramanasai/journal/internal/daterange"
	"github.com/ramanasai/journal/internal/journal"
)

// Count is one row of a Ranking.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Ranking is an ordered label histogram, highest count first. Equal counts
// keep the order in which the labels were first seen.
type Ranking []Count

// Get returns the count recorded for label, compared case-insensitively.
func (r Ranking) Get(label string) (int, bool) {
	for _, c := range r {
		if strings.EqualFold(c.Label, label) {
			return c.Count, true
		}
	}
	return 0, false
}

// Labels lists the labels in rank order.
func (r Ranking) Labels() []string {
	out := make([]string, 0, len(r))
	for _, c := range r {
		out = append(out, c.Label)
	}
	return out
}

// MarshalJSON renders the ranking as a JSON object whose keys keep rank order.
func (r Ranking) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(c.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DayCount is one point of the word-count series.
type DayCount struct {
	Date  time.Time `json:"date"`
	Words int       `json:"words"`
}

// InRange returns the entries whose date falls inside the normalized window,
// in input order.
func InRange(entries []journal.Entry, from, to time.Time) []journal.Entry {
	r := daterange.Normalize(from, to)
	out := make([]journal.Entry, 0, len(entries))
	for _, e := range entries {
		if r.Contains(e.EntryDate) {
			out = append(out, e)
		}
	}
	return out
}

// MoodCategoryDistribution buckets primary moods into Positive, Neutral and
// Negative. All three keys are always present.
func MoodCategoryDistribution(entries []journal.Entry, from, to time.Time) map[journal.MoodCategory]int {
	dist := make(map[journal.MoodCategory]int, len(journal.MoodCategories))
	for _, c := range journal.MoodCategories {
		dist[c] = 0
	}
	for _, e := range InRange(entries, from, to) {
		dist[journal.CategoryOf(string(e.PrimaryMood))]++
	}
	return dist
}

// MostFrequentMood returns the most common primary mood. Ties go to the mood
// seen first in entries. The second result is false when the window is empty.
func MostFrequentMood(entries []journal.Entry, from, to time.Time) (string, bool) {
	counts := MoodCounts(entries, from, to)
	if len(counts) == 0 {
		return "", false
	}
	return counts[0].Label, true
}

// MoodCounts is the full primary-mood histogram.
func MoodCounts(entries []journal.Entry, from, to time.Time) Ranking {
	h := newHistogram()
	for _, e := range InRange(entries, from, to) {
		h.add(string(e.PrimaryMood))
	}
	return h.ranking()
}

// MostUsedTags returns the top tags by the number of entries carrying them.
// A tag repeated within one entry counts once.
func MostUsedTags(entries []journal.Entry, from, to time.Time, top int) Ranking {
	if top <= 0 {
		return Ranking{}
	}
	h := newHistogram()
	for _, e := range InRange(entries, from, to) {
		seen := make(map[string]bool, len(e.Tags))
		for _, tag := range e.Tags {
			tag = strings.TrimSpace(tag)
			key := strings.ToLower(tag)
			if tag == "" || seen[key] {
				continue
			}
			seen[key] = true
			h.add(tag)
		}
	}
	r := h.ranking()
	if len(r) > top {
		r = r[:top]
	}
	return r
}

// WordCountTrend returns one point per day of the window, zero on days
// without an entry.
func WordCountTrend(entries []journal.Entry, from, to time.Time) []DayCount {
	r := daterange.Normalize(from, to)
	perDay := map[string]int{}
	for _, e := range InRange(entries, r.Start, r.End) {
		perDay[daterange.Key(e.EntryDate)] += CountWords(e.Content)
	}
	out := make([]DayCount, 0, r.Len())
	for _, d := range r.Days() {
		out = append(out, DayCount{Date: d, Words: perDay[daterange.Key(d)]})
	}
	return out
}

// CountWords counts tokens separated by runs of spaces, tabs, newlines and
// carriage returns.
func CountWords(text string) int {
	return len(strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	}))
}

// histogram counts labels case-insensitively and remembers first-seen order
// and spelling.
type histogram struct {
	index map[string]int
	rows  Ranking
}

func newHistogram() *histogram {
	return &histogram{index: map[string]int{}}
}

func (h *histogram) add(label string) {
	label = strings.TrimSpace(label)
	if label == "" {
		return
	}
	key := strings.ToLower(label)
	if i, ok := h.index[key]; ok {
		h.rows[i].Count++
		return
	}
	h.index[key] = len(h.rows)
	h.rows = append(h.rows, Count{Label: label, Count: 1})
}

func (h *histogram) ranking() Ranking {
	out := append(Ranking{}, h.rows...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

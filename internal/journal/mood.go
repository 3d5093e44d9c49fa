package journal

import "strings"

// Mood is one label from the closed mood set.
type Mood string

const (
	Happy     Mood = "Happy"
	Excited   Mood = "Excited"
	Relaxed   Mood = "Relaxed"
	Grateful  Mood = "Grateful"
	Confident Mood = "Confident"

	Calm       Mood = "Calm"
	Thoughtful Mood = "Thoughtful"
	Curious    Mood = "Curious"
	Nostalgic  Mood = "Nostalgic"
	Bored      Mood = "Bored"

	Sad      Mood = "Sad"
	Angry    Mood = "Angry"
	Stressed Mood = "Stressed"
	Lonely   Mood = "Lonely"
	Anxious  Mood = "Anxious"
)

// MoodCategory partitions the mood set into three buckets.
type MoodCategory string

const (
	Positive MoodCategory = "Positive"
	Neutral  MoodCategory = "Neutral"
	Negative MoodCategory = "Negative"
)

// MoodCategories lists the buckets in display order.
var MoodCategories = []MoodCategory{Positive, Neutral, Negative}

// moodTable is the single source of truth for the mood set. Adding a mood is
// a new row here.
var moodTable = []struct {
	mood     Mood
	category MoodCategory
}{
	{Happy, Positive},
	{Excited, Positive},
	{Relaxed, Positive},
	{Grateful, Positive},
	{Confident, Positive},

	{Calm, Neutral},
	{Thoughtful, Neutral},
	{Curious, Neutral},
	{Nostalgic, Neutral},
	{Bored, Neutral},

	{Sad, Negative},
	{Angry, Negative},
	{Stressed, Negative},
	{Lonely, Negative},
	{Anxious, Negative},
}

var (
	categoryByMood = make(map[Mood]MoodCategory, len(moodTable))
	moodByLower    = make(map[string]Mood, len(moodTable))
)

func init() {
	for _, row := range moodTable {
		categoryByMood[row.mood] = row.category
		moodByLower[strings.ToLower(string(row.mood))] = row.mood
	}
}

// Moods returns the closed mood set in declaration order.
func Moods() []Mood {
	out := make([]Mood, 0, len(moodTable))
	for _, row := range moodTable {
		out = append(out, row.mood)
	}
	return out
}

// ParseMood resolves a label case-insensitively.
func ParseMood(s string) (Mood, bool) {
	m, ok := moodByLower[strings.ToLower(strings.TrimSpace(s))]
	return m, ok
}

// Valid reports whether m belongs to the closed set.
func (m Mood) Valid() bool {
	_, ok := categoryByMood[m]
	return ok
}

// Category returns the bucket of m. See CategoryOf.
func (m Mood) Category() MoodCategory {
	return CategoryOf(string(m))
}

// CategoryOf classifies a mood label. Labels outside the closed set count as
// Negative.
func CategoryOf(label string) MoodCategory {
	if m, ok := ParseMood(label); ok {
		return categoryByMood[m]
	}
	return Negative
}

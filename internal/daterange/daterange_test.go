package daterange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramanasai/journal/internal/daterange"
)

func TestNormalize(t *testing.T) {
	early := time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC)
	late := time.Date(2024, 1, 5, 6, 15, 0, 0, time.UTC)
	want := daterange.Range{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, want, daterange.Normalize(early, late))
	assert.Equal(t, want, daterange.Normalize(late, early))
}

func TestDayKeepsWallClockDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	t1 := time.Date(2024, 7, 1, 1, 0, 0, 0, tokyo) // still June 30 in UTC

	assert.Equal(t, "2024-07-01", daterange.Key(t1))
}

func TestRangeDaysAndLen(t *testing.T) {
	r := daterange.Normalize(time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))

	days := r.Days()
	require.Len(t, days, 5)
	assert.Equal(t, 5, r.Len())
	assert.Equal(t, "2024-02-29", days[2].Format(daterange.Layout))
	assert.True(t, r.Contains(time.Date(2024, 3, 2, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-02-27..2024-03-02", r.String())
}

func TestSingleDayRange(t *testing.T) {
	d := time.Date(2024, 4, 4, 12, 0, 0, 0, time.UTC)
	r := daterange.Normalize(d, d)

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, []time.Time{daterange.Day(d)}, r.Days())
}

func TestLast(t *testing.T) {
	r := daterange.Last(7, time.Date(2024, 1, 7, 15, 0, 0, 0, time.UTC))

	assert.Equal(t, "2024-01-01..2024-01-07", r.String())
	assert.Equal(t, 7, r.Len())
}

func TestParse(t *testing.T) {
	got, err := daterange.Parse("2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), got)

	_, err = daterange.Parse("31/12/2024")
	assert.Error(t, err)
}

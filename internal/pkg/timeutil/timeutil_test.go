package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock_RoundTrip(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"00:00", "00:01", "09:00", "12:30", "17:45", "23:59"} {
		c, err := ParseClock(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, c.String())
	}
}

func TestParseClock_RejectsBadFormats(t *testing.T) {
	t.Parallel()
	bad := []string{
		"",
		"9:00",      // not zero-padded
		"24:00",     // hour out of range
		"12:60",     // minute out of range
		"12:30:00",  // seconds
		"12:30Z",    // timezone marker
		"12:30+00:00",
		"12.30",
		" 12:30",
		"12:30 ",
		"noon",
	}
	for _, s := range bad {
		_, err := ParseClock(s)
		assert.ErrorIs(t, err, ErrInvalidClock, "input %q", s)
		assert.False(t, IsValidClock(s), "input %q", s)
	}
}

func TestDurationHours(t *testing.T) {
	t.Parallel()
	start, _ := ParseClock("09:00")
	end, _ := ParseClock("17:30")
	assert.Equal(t, "8.5", DurationHours(start, end).String())
}

func TestOverlap_HalfOpenBoundary(t *testing.T) {
	t.Parallel()
	nine, _ := ParseClock("09:00")
	one, _ := ParseClock("13:00")
	five, _ := ParseClock("17:00")

	// back-to-back shifts do not conflict
	assert.False(t, Overlap(nine, one, one, five))
	assert.False(t, Overlap(one, five, nine, one))

	// real intersection does
	noon, _ := ParseClock("12:00")
	assert.True(t, Overlap(nine, one, noon, five))
	assert.True(t, Overlap(noon, five, nine, one))
}

func TestOverlap_MatchesIntervalFormula(t *testing.T) {
	t.Parallel()
	cases := []struct {
		a, b, c, d string
		want       bool
	}{
		{"09:00", "13:00", "13:00", "17:00", false},
		{"09:00", "13:00", "12:59", "17:00", true},
		{"09:00", "17:00", "09:00", "17:00", true},
		{"09:00", "10:00", "11:00", "12:00", false},
		{"10:00", "12:00", "09:00", "11:00", true},
	}
	for _, tc := range cases {
		a, _ := ParseClock(tc.a)
		b, _ := ParseClock(tc.b)
		c, _ := ParseClock(tc.c)
		d, _ := ParseClock(tc.d)
		got := Overlap(a, b, c, d)
		assert.Equal(t, tc.want, got, "[%s,%s) vs [%s,%s)", tc.a, tc.b, tc.c, tc.d)
		assert.Equal(t, a < d && c < b, got, "formula mismatch")
	}
}

func TestOverlapMinutes(t *testing.T) {
	t.Parallel()
	a, _ := ParseClock("09:00")
	b, _ := ParseClock("13:00")
	c, _ := ParseClock("11:00")
	d, _ := ParseClock("17:00")
	assert.Equal(t, 120, OverlapMinutes(a, b, c, d))
	assert.Equal(t, 0, OverlapMinutes(a, c, c, d))
}

func TestGapMinutes(t *testing.T) {
	t.Parallel()
	a, _ := ParseClock("09:00")
	b, _ := ParseClock("12:00")
	c, _ := ParseClock("12:45")
	d, _ := ParseClock("17:00")
	assert.Equal(t, 45, GapMinutes(a, b, c, d))
	assert.Equal(t, 45, GapMinutes(c, d, a, b))
	assert.Equal(t, -1, GapMinutes(a, d, b, c))
}

func TestWeekWindow_SundayThroughSaturday(t *testing.T) {
	t.Parallel()
	// 2025-08-11 is a Monday; its week starts Sunday 2025-08-10.
	date, err := ParseDate("2025-08-11")
	require.NoError(t, err)
	start, end := WeekWindow(date)
	assert.Equal(t, "2025-08-10", FormatDate(start))
	assert.Equal(t, "2025-08-17", FormatDate(end))
	assert.Equal(t, time.Sunday, start.Weekday())

	// A Sunday is its own week start.
	sunday, _ := ParseDate("2025-08-10")
	start, _ = WeekWindow(sunday)
	assert.Equal(t, "2025-08-10", FormatDate(start))
}

func TestParseDate_Strict(t *testing.T) {
	t.Parallel()
	_, err := ParseDate("2025-8-11")
	assert.Error(t, err)
	_, err = ParseDate("11-08-2025")
	assert.Error(t, err)
	d, err := ParseDate("2025-08-11")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, d.Location())
}

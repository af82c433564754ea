package timeutil

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// Clock is a wall-clock time of day in minutes since midnight, UTC.
// Shift times are stored and exchanged at HH:mm granularity only.
type Clock int

// Strict 24-hour zero-padded HH:mm. Seconds, "Z" and offset suffixes are
// format errors, not alternate spellings.
var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

var ErrInvalidClock = fmt.Errorf("time must match HH:mm (24-hour, UTC, no timezone suffix)")

// ParseClock parses a strict HH:mm string.
func ParseClock(s string) (Clock, error) {
	m := clockRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, ErrInvalidClock
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	min := int(s[3]-'0')*10 + int(s[4]-'0')
	return Clock(h*60 + min), nil
}

// IsValidClock reports whether s is a parseable HH:mm string.
func IsValidClock(s string) bool {
	return clockRegex.MatchString(s)
}

// String formats the clock back to HH:mm. Inverse of ParseClock for all
// valid inputs.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Minutes returns the minutes-since-midnight value.
func (c Clock) Minutes() int {
	return int(c)
}

// DurationHours returns end-start as fractional hours. Callers must ensure
// start < end; there is no wraparound.
func DurationHours(start, end Clock) decimal.Decimal {
	return decimal.NewFromInt(int64(end - start)).Div(decimal.NewFromInt(60))
}

// Overlap reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. A shift ending at 13:00 does not overlap one starting at 13:00.
func Overlap(s1, e1, s2, e2 Clock) bool {
	return s1 < e2 && s2 < e1
}

// OverlapMinutes returns the length of the intersection of [s1,e1) and
// [s2,e2), or 0 when they do not intersect.
func OverlapMinutes(s1, e1, s2, e2 Clock) int {
	lo := s1
	if s2 > lo {
		lo = s2
	}
	hi := e1
	if e2 < hi {
		hi = e2
	}
	if hi <= lo {
		return 0
	}
	return int(hi - lo)
}

// GapMinutes returns the minimum directional gap between two non-overlapping
// ranges, and -1 when they overlap.
func GapMinutes(s1, e1, s2, e2 Clock) int {
	if Overlap(s1, e1, s2, e2) {
		return -1
	}
	a := int(s2 - e1)
	b := int(s1 - e2)
	if a >= 0 && (b < 0 || a < b) {
		return a
	}
	return b
}

const dateLayout = "2006-01-02"

// ParseDate parses a strict YYYY-MM-DD calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must match YYYY-MM-DD: %w", err)
	}
	return d, nil
}

// FormatDate formats a calendar date as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}

// WeekWindow returns the Sunday 00:00 and the following Sunday 00:00 bounding
// the week (Sunday through Saturday) containing date.
func WeekWindow(date time.Time) (start, end time.Time) {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start = d.AddDate(0, 0, -int(d.Weekday()))
	end = start.AddDate(0, 0, 7)
	return start, end
}

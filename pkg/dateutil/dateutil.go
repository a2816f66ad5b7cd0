package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// ISODateLayout is the wire format of every calendar date (YYYY-MM-DD)
const ISODateLayout = "2006-01-02"

// Civil returns the calendar date of t as midnight UTC.
// All date arithmetic in the module works on civil dates so that DST
// transitions never shift a day boundary.
func Civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds a civil date from its components
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// StartOfMonth returns the first civil date of the month containing date
func StartOfMonth(date time.Time) time.Time {
	return Date(date.Year(), date.Month(), 1)
}

// EndOfMonth returns the last civil date of the month containing date
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return EndOfMonth(Date(year, month, 1)).Day()
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// MaxDate returns the later of two dates
func MaxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// MinDate returns the earlier of two dates
func MinDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// FormatISO formats a date as YYYY-MM-DD
func FormatISO(date time.Time) string {
	return date.Format(ISODateLayout)
}

// ParseISODate parses a strict YYYY-MM-DD date.
// Full RFC 3339 timestamps are accepted and truncated to their calendar date.
func ParseISODate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if t, err := time.Parse(ISODateLayout, s); err == nil {
		return t, nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Civil(t), nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
}

// Today returns today's civil date in the local time zone
func Today() time.Time {
	return Civil(time.Now())
}

// YearsBetween returns every calendar year touched by [start, end].
// Returns nil when end is before start.
func YearsBetween(start, end time.Time) []int {
	if end.Before(start) {
		return nil
	}

	years := make([]int, 0, end.Year()-start.Year()+1)
	for y := start.Year(); y <= end.Year(); y++ {
		years = append(years, y)
	}
	return years
}

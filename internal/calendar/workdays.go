package calendar

import (
	"time"

	"github.com/username/vacation-hub/pkg/dateutil"
)

// CountWorkingDays counts the days in [start, end], both ends inclusive,
// that are neither weekend days nor public holidays.
// Holiday tables of every year the range touches are merged first.
// Returns 0 when end is before start.
func CountWorkingDays(start, end time.Time) int {
	start, end = dateutil.Civil(start), dateutil.Civil(end)
	if end.Before(start) {
		return 0
	}

	holidays := holidaySet(dateutil.YearsBetween(start, end))

	count := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if dateutil.IsWeekend(day) {
			continue
		}
		if _, ok := holidays[day]; ok {
			continue
		}
		count++
	}

	return count
}

// WorkingDaysInMonth returns the number of working days in the month
func WorkingDaysInMonth(year int, month time.Month) int {
	first := dateutil.Date(year, month, 1)
	return CountWorkingDays(first, dateutil.EndOfMonth(first))
}

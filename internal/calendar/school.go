package calendar

import (
	"time"

	"github.com/username/vacation-hub/pkg/dateutil"
)

// SchoolHolidayYear is the only year with a school holiday table
const SchoolHolidayYear = 2026

// SchoolHoliday is a named school holiday interval, inclusive on both ends
type SchoolHoliday struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether date falls inside the interval
func (s SchoolHoliday) Contains(date time.Time) bool {
	date = dateutil.Civil(date)
	return !date.Before(s.Start) && !date.After(s.End)
}

// SchoolHolidayIntervals returns the Baden-Württemberg school holidays of year.
// Only SchoolHolidayYear is known; any other year yields an empty slice.
func SchoolHolidayIntervals(year int) []SchoolHoliday {
	if year != SchoolHolidayYear {
		return []SchoolHoliday{}
	}

	return []SchoolHoliday{
		{Name: "Osterferien", Start: dateutil.Date(2026, 3, 30), End: dateutil.Date(2026, 4, 12)},
		{Name: "Pfingstferien", Start: dateutil.Date(2026, 5, 26), End: dateutil.Date(2026, 6, 6)},
		{Name: "Sommerferien", Start: dateutil.Date(2026, 7, 30), End: dateutil.Date(2026, 9, 13)},
		{Name: "Herbstferien", Start: dateutil.Date(2026, 10, 26), End: dateutil.Date(2026, 10, 31)},
		{Name: "Weihnachtsferien", Start: dateutil.Date(2026, 12, 23), End: dateutil.Date(2027, 1, 10)},
	}
}

// SchoolHolidayOn returns the school holiday containing date.
// Intervals that start in the previous year are checked too.
func SchoolHolidayOn(date time.Time) (SchoolHoliday, bool) {
	date = dateutil.Civil(date)
	for _, year := range []int{date.Year() - 1, date.Year()} {
		for _, s := range SchoolHolidayIntervals(year) {
			if s.Contains(date) {
				return s, true
			}
		}
	}
	return SchoolHoliday{}, false
}

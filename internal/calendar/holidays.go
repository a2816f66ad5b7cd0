package calendar

import (
	"sort"
	"time"

	"github.com/username/vacation-hub/pkg/dateutil"
)

// Holiday is a named public holiday
type Holiday struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

type fixedHoliday struct {
	month time.Month
	day   int
	name  string
}

type easterOffset struct {
	days int
	name string
}

// Public holidays of Baden-Württemberg
var fixedHolidaysBW = []fixedHoliday{
	{time.January, 1, "Neujahr"},
	{time.January, 6, "Heilige Drei Könige"},
	{time.May, 1, "Tag der Arbeit"},
	{time.October, 3, "Tag der Deutschen Einheit"},
	{time.November, 1, "Allerheiligen"},
	{time.December, 25, "1. Weihnachtsfeiertag"},
	{time.December, 26, "2. Weihnachtsfeiertag"},
}

var easterHolidaysBW = []easterOffset{
	{-2, "Karfreitag"},
	{1, "Ostermontag"},
	{39, "Christi Himmelfahrt"},
	{50, "Pfingstmontag"},
	{60, "Fronleichnam"},
}

// Easter returns Easter Sunday of the given year.
// Anonymous Gregorian algorithm (Meeus/Jones/Butcher).
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return dateutil.Date(year, time.Month(month), day)
}

// HolidaysForYear returns the public holidays of the year in chronological order
func HolidaysForYear(year int) []Holiday {
	holidays := make([]Holiday, 0, len(fixedHolidaysBW)+len(easterHolidaysBW))

	for _, h := range fixedHolidaysBW {
		holidays = append(holidays, Holiday{Date: dateutil.Date(year, h.month, h.day), Name: h.name})
	}

	easter := Easter(year)
	for _, h := range easterHolidaysBW {
		holidays = append(holidays, Holiday{Date: easter.AddDate(0, 0, h.days), Name: h.name})
	}

	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})

	return holidays
}

// HolidaysForYears concatenates the holidays of each year in the given order
func HolidaysForYears(years []int) []Holiday {
	var all []Holiday
	for _, year := range years {
		all = append(all, HolidaysForYear(year)...)
	}
	return all
}

// HolidayName returns the name of the holiday falling on date
func HolidayName(date time.Time) (string, bool) {
	date = dateutil.Civil(date)
	for _, h := range HolidaysForYear(date.Year()) {
		if h.Date.Equal(date) {
			return h.Name, true
		}
	}
	return "", false
}

// IsHoliday reports whether date is a public holiday
func IsHoliday(date time.Time) bool {
	_, ok := HolidayName(date)
	return ok
}

// IsWeekend reports whether date is a Saturday or Sunday
func IsWeekend(date time.Time) bool {
	return dateutil.IsWeekend(date)
}

// holidaySet indexes the holidays of every year in years by civil date
func holidaySet(years []int) map[time.Time]string {
	set := make(map[time.Time]string, len(years)*(len(fixedHolidaysBW)+len(easterHolidaysBW)))
	for _, h := range HolidaysForYears(years) {
		set[h.Date] = h.Name
	}
	return set
}

package calendar

import (
	"time"

	"github.com/username/vacation-hub/pkg/dateutil"
)

// RegionalCalendar implements Calendar for Baden-Württemberg
type RegionalCalendar struct{}

// NewRegionalCalendar creates the Baden-Württemberg calendar
func NewRegionalCalendar() *RegionalCalendar {
	return &RegionalCalendar{}
}

// IsWorkday checks if the given date is a working day
func (c *RegionalCalendar) IsWorkday(date time.Time) bool {
	return !IsWeekend(date) && !IsHoliday(date)
}

// CountWorkingDays counts working days in [start, end]
func (c *RegionalCalendar) CountWorkingDays(start, end time.Time) int {
	return CountWorkingDays(start, end)
}

// DayInfo returns detailed info for a specific day
func (c *RegionalCalendar) DayInfo(date time.Time) DayInfo {
	date = dateutil.Civil(date)
	return c.dayInfo(date, holidaySet([]int{date.Year()}))
}

// MonthInfo returns calendar info for the entire month
func (c *RegionalCalendar) MonthInfo(year int, month time.Month) MonthInfo {
	info := MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, dateutil.DaysInMonth(year, month)),
	}

	holidays := holidaySet([]int{year})
	first := dateutil.Date(year, month, 1)
	last := dateutil.EndOfMonth(first)

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		dayInfo := c.dayInfo(day, holidays)
		info.Days = append(info.Days, dayInfo)

		switch dayInfo.Type {
		case DayTypeWorkday:
			info.WorkDays++
		case DayTypeWeekend:
			info.Weekends++
		case DayTypeHoliday:
			info.Holidays++
		}
	}

	return info
}

func (c *RegionalCalendar) dayInfo(date time.Time, holidays map[time.Time]string) DayInfo {
	info := DayInfo{Date: date}

	// A holiday on a weekend is reported as a holiday
	if name, ok := holidays[date]; ok {
		info.Type = DayTypeHoliday
		info.Note = name
	} else if IsWeekend(date) {
		info.Type = DayTypeWeekend
	} else {
		info.Type = DayTypeWorkday
		info.IsWorkday = true
	}

	if school, ok := SchoolHolidayOn(date); ok {
		info.SchoolHoliday = school.Name
	}

	return info
}

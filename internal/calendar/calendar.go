package calendar

import "time"

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
)

// String returns the lower-case name used on the wire
func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	default:
		return "unknown"
	}
}

// MarshalText encodes the day type by name
func (t DayType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date          time.Time `json:"date"`
	Type          DayType   `json:"type"`
	IsWorkday     bool      `json:"isWorkday"`
	Note          string    `json:"note,omitempty"`          // Holiday name
	SchoolHoliday string    `json:"schoolHoliday,omitempty"` // School holiday name, if any
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	WorkDays int        `json:"workDays"`
	Weekends int        `json:"weekends"`
	Holidays int        `json:"holidays"`
	Days     []DayInfo  `json:"days"`
}

// Calendar interface for checking working days
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(date time.Time) bool

	// MonthInfo returns calendar info for the entire month
	MonthInfo(year int, month time.Month) MonthInfo

	// DayInfo returns detailed info for a specific day
	DayInfo(date time.Time) DayInfo

	// CountWorkingDays counts working days in [start, end]
	CountWorkingDays(start, end time.Time) int
}

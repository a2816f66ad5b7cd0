package calendar

import (
	"reflect"
	"testing"
	"time"

	"github.com/username/vacation-hub/pkg/dateutil"
)

func TestEaster(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{2000, dateutil.Date(2000, 4, 23)},
		{2019, dateutil.Date(2019, 4, 21)},
		{2024, dateutil.Date(2024, 3, 31)},
		{2025, dateutil.Date(2025, 4, 20)},
		{2026, dateutil.Date(2026, 4, 5)},
		{2027, dateutil.Date(2027, 3, 28)},
		{2038, dateutil.Date(2038, 4, 25)},
		{1818, dateutil.Date(1818, 3, 22)},
	}

	for _, tt := range tests {
		t.Run(dateutil.FormatISO(tt.want), func(t *testing.T) {
			if got := Easter(tt.year); !got.Equal(tt.want) {
				t.Errorf("Easter(%d) = %v, want %v", tt.year, dateutil.FormatISO(got), dateutil.FormatISO(tt.want))
			}
		})
	}
}

func TestHolidaysForYear_2026(t *testing.T) {
	want := map[string]string{
		"2026-01-01": "Neujahr",
		"2026-01-06": "Heilige Drei Könige",
		"2026-04-03": "Karfreitag",
		"2026-04-06": "Ostermontag",
		"2026-05-01": "Tag der Arbeit",
		"2026-05-14": "Christi Himmelfahrt",
		"2026-05-25": "Pfingstmontag",
		"2026-06-04": "Fronleichnam",
		"2026-10-03": "Tag der Deutschen Einheit",
		"2026-11-01": "Allerheiligen",
		"2026-12-25": "1. Weihnachtsfeiertag",
		"2026-12-26": "2. Weihnachtsfeiertag",
	}

	holidays := HolidaysForYear(2026)
	if len(holidays) != len(want) {
		t.Fatalf("HolidaysForYear(2026) returned %d holidays, want %d", len(holidays), len(want))
	}

	for i, h := range holidays {
		date := dateutil.FormatISO(h.Date)
		name, ok := want[date]
		if !ok {
			t.Errorf("unexpected holiday %s %q", date, h.Name)
			continue
		}
		if name != h.Name {
			t.Errorf("holiday on %s = %q, want %q", date, h.Name, name)
		}
		if i > 0 && !holidays[i-1].Date.Before(h.Date) {
			t.Errorf("holidays not in chronological order at %s", date)
		}
	}
}

func TestHolidaysForYear_AnyYear(t *testing.T) {
	for _, year := range []int{1, 1583, 1999, 2100, 4000} {
		holidays := HolidaysForYear(year)
		if len(holidays) != 12 {
			t.Errorf("HolidaysForYear(%d) returned %d holidays, want 12", year, len(holidays))
		}
	}
}

func TestHolidaysForYears(t *testing.T) {
	holidays := HolidaysForYears([]int{2027, 2026})
	if len(holidays) != 24 {
		t.Fatalf("HolidaysForYears returned %d holidays, want 24", len(holidays))
	}
	if holidays[0].Date.Year() != 2027 || holidays[12].Date.Year() != 2026 {
		t.Errorf("HolidaysForYears did not keep the requested year order")
	}

	if got := HolidaysForYears(nil); len(got) != 0 {
		t.Errorf("HolidaysForYears(nil) = %v, want empty", got)
	}
}

func TestIsHoliday(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		wantName string
		want     bool
	}{
		{"Corpus Christi", dateutil.Date(2026, 6, 4), "Fronleichnam", true},
		{"Unity day", dateutil.Date(2026, 10, 3), "Tag der Deutschen Einheit", true},
		{"ordinary day", dateutil.Date(2026, 6, 3), "", false},
		{"non-civil time on a holiday", time.Date(2026, 12, 25, 18, 0, 0, 0, time.UTC), "1. Weihnachtsfeiertag", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHoliday(tt.date); got != tt.want {
				t.Errorf("IsHoliday(%v) = %v, want %v", tt.date, got, tt.want)
			}
			name, _ := HolidayName(tt.date)
			if name != tt.wantName {
				t.Errorf("HolidayName(%v) = %q, want %q", tt.date, name, tt.wantName)
			}
		})
	}
}

func TestSchoolHolidayIntervals(t *testing.T) {
	intervals := SchoolHolidayIntervals(2026)
	if len(intervals) != 5 {
		t.Fatalf("SchoolHolidayIntervals(2026) returned %d intervals, want 5", len(intervals))
	}

	last := intervals[len(intervals)-1]
	if last.Name != "Weihnachtsferien" || !last.End.Equal(dateutil.Date(2027, 1, 10)) {
		t.Errorf("last interval = %+v, want Weihnachtsferien ending 2027-01-10", last)
	}

	for _, year := range []int{2025, 2027} {
		got := SchoolHolidayIntervals(year)
		if got == nil || len(got) != 0 {
			t.Errorf("SchoolHolidayIntervals(%d) = %v, want empty non-nil slice", year, got)
		}
	}
}

func TestSchoolHolidayOn(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{dateutil.Date(2026, 3, 30), "Osterferien"},
		{dateutil.Date(2026, 4, 12), "Osterferien"},
		{dateutil.Date(2026, 4, 13), ""},
		{dateutil.Date(2026, 8, 15), "Sommerferien"},
		{dateutil.Date(2027, 1, 5), "Weihnachtsferien"},
		{dateutil.Date(2025, 8, 15), ""},
	}

	for _, tt := range tests {
		t.Run(dateutil.FormatISO(tt.date), func(t *testing.T) {
			s, _ := SchoolHolidayOn(tt.date)
			if s.Name != tt.want {
				t.Errorf("SchoolHolidayOn(%v) = %q, want %q", dateutil.FormatISO(tt.date), s.Name, tt.want)
			}
		})
	}
}

func TestHolidaysForYear_Deterministic(t *testing.T) {
	if !reflect.DeepEqual(HolidaysForYear(2026), HolidaysForYear(2026)) {
		t.Error("HolidaysForYear(2026) is not deterministic")
	}
}
